package room

import (
	"ShengJi/internal/game/card"
	"ShengJi/internal/game/rules"
)

// Kind tags a player action.
type Kind string

const (
	ActJoin      Kind = "join"
	ActStart     Kind = "start_game"
	ActDeclare   Kind = "declare_main"
	ActExchange  Kind = "exchange_cards"
	ActPlay      Kind = "play_cards"
	ActNextRound Kind = "next_round"
)

// Action is the closed set of inbound player requests. Kind selects the
// handler; the remaining fields are read per kind.
type Action struct {
	Kind    Kind
	Player  string
	Seat    int // ActJoin only; -1 picks the lowest free seat
	CardIDs []string
	Suit    card.Suit // ActDeclare with jokers
}

type handler func(*Room, Action) error

// handlers is the phase-indexed dispatch table: one handler per legal
// (phase, kind) pair, everything else rejects InvalidPhase.
var handlers = map[Phase]map[Kind]handler{
	PhaseWaiting: {
		ActJoin:  (*Room).handleJoin,
		ActStart: (*Room).handleStart,
	},
	PhaseDrawing: {
		ActDeclare: (*Room).handleDeclare,
	},
	PhaseExchanging: {
		ActExchange: (*Room).handleExchange,
	},
	PhasePlaying: {
		ActPlay: (*Room).handlePlay,
	},
	PhaseFinished: {
		ActNextRound: (*Room).handleNextRound,
	},
}

// Apply runs one action under the room lock. Either the full check-and-apply
// sequence succeeds, or the action is rejected with no state effect.
func (r *Room) Apply(a Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := handlers[r.phase][a.Kind]
	if !ok {
		return rules.InvalidPhase
	}
	return h(r, a)
}

func (r *Room) handleJoin(a Action) error {
	if r.seatOf(a.Player) >= 0 {
		return rules.SeatTaken
	}
	seat := a.Seat
	if seat < 0 {
		for i, s := range r.seats {
			if s == nil {
				seat = i
				break
			}
		}
		if seat < 0 {
			return rules.RoomFull
		}
	}
	if seat >= len(r.seats) {
		return rules.InvalidSeat
	}
	if r.seatedCount() >= len(r.seats) {
		return rules.RoomFull
	}
	if r.seats[seat] != nil {
		return rules.SeatTaken
	}
	r.seats[seat] = &Seat{
		Player: a.Player,
		Team:   seat % 3,
		Hand:   make(map[string]card.Card),
	}
	r.hub.BroadcastToPlayers(r.occupants(), outJoin(r.Name, seat, a.Player, seat%3))
	return nil
}

func (r *Room) handleStart(a Action) error {
	if r.seatOf(a.Player) < 0 {
		return rules.NotSeated
	}
	if r.seatedCount() < len(r.seats) {
		return rules.Reject("NotEnoughPlayers")
	}
	return r.startRound()
}

func (r *Room) handleNextRound(a Action) error {
	if r.seatOf(a.Player) < 0 {
		return rules.NotSeated
	}
	r.rotateDealer()
	return r.startRound()
}
