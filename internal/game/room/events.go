package room

import "ShengJi/internal/websocket"

// Outbound event names pushed through the hub.
const (
	EventPlayerJoined    = "player_joined"
	EventGameStarted     = "game_started"
	EventCardDealt       = "card_dealt"
	EventMainDeclared    = "main_declared"
	EventExchangeStarted = "exchange_started"
	EventBottomRevealed  = "bottom_revealed"
	EventPlayStarted     = "play_started"
	EventPlayAccepted    = "play_accepted"
	EventTrickResolved   = "trick_resolved"
	EventRoundFinished   = "round_finished"
	EventActionRejected  = "action_rejected"
	EventRestoreState    = "restore_state"
)

func outJoin(roomName string, seat int, player string, team int) websocket.OutgoingMessage {
	return websocket.OutgoingMessage{
		Event: EventPlayerJoined,
		Data: map[string]any{
			"room":   roomName,
			"seat":   seat,
			"player": player,
			"team":   team,
		},
	}
}
