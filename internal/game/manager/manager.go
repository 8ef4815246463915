package manager

import (
	"encoding/json"
	"fmt"
	"sync"

	"ShengJi/config"
	"ShengJi/internal/game/card"
	"ShengJi/internal/game/room"
	"ShengJi/internal/game/rules"
	"ShengJi/internal/storage"
	"ShengJi/internal/utils"
	"ShengJi/internal/websocket"
)

// RoomManager owns every live room. Rooms are independent: no state is
// shared between them and each applies its own actions single-writer.
type RoomManager struct {
	mu         sync.RWMutex
	rooms      map[string]*room.Room // room name -> room
	playerRoom map[string]string     // player name -> room name
	hub        websocket.HubInterface
	registry   *Registry // nil when redis is not configured
	cfg        config.GameConfig
}

func NewRoomManager(hub websocket.HubInterface, registry *Registry, cfg config.GameConfig) *RoomManager {
	return &RoomManager{
		rooms:      make(map[string]*room.Room),
		playerRoom: make(map[string]string),
		hub:        hub,
		registry:   registry,
		cfg:        cfg,
	}
}

// CreateRoom registers a new named room.
func (m *RoomManager) CreateRoom(name string) (*room.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rooms[name]; ok {
		return nil, fmt.Errorf("room %s exists", name)
	}
	r := room.New(name, m.cfg, m.hub)
	m.rooms[name] = r

	if m.registry != nil {
		if err := m.registry.SaveRoom(storage.Ctx, name, r.ID); err != nil {
			utils.Error.Printf("SaveRoom error: %v", err)
		}
	}
	return r, nil
}

// Room looks a live room up by name.
func (m *RoomManager) Room(name string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[name]
	return r, ok
}

// CloseRoom tears a room down and discards its state.
func (m *RoomManager) CloseRoom(name string) {
	m.mu.Lock()
	r, ok := m.rooms[name]
	if ok {
		delete(m.rooms, name)
		for p, rn := range m.playerRoom {
			if rn == name {
				delete(m.playerRoom, p)
			}
		}
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	snap := r.Snapshot()
	r.Close()

	if m.registry != nil {
		if err := m.registry.DeleteRoom(storage.Ctx, name); err != nil {
			utils.Error.Printf("DeleteRoom error: %v", err)
		}
		players := make([]string, 0, len(snap.Seats))
		for _, s := range snap.Seats {
			if s.Player != "" {
				players = append(players, s.Player)
			}
		}
		if err := m.registry.ClearSeat(storage.Ctx, players...); err != nil {
			utils.Error.Printf("ClearSeat error: %v", err)
		}
	}
}

// Join seats a player. The seat binding is mirrored to the registry so a
// returning identity finds its seat again.
func (m *RoomManager) Join(roomName, player string, seat int) error {
	r, ok := m.Room(roomName)
	if !ok {
		return fmt.Errorf("room %s not found", roomName)
	}
	if err := r.Apply(room.Action{Kind: room.ActJoin, Player: player, Seat: seat}); err != nil {
		return err
	}

	m.mu.Lock()
	m.playerRoom[player] = roomName
	m.mu.Unlock()

	if m.registry != nil {
		if err := m.registry.SaveSeat(storage.Ctx, player, roomName); err != nil {
			utils.Error.Printf("SaveSeat error: %v", err)
		}
	}
	return nil
}

// Start begins the round and spawns the paced dealing loop.
func (m *RoomManager) Start(roomName, player string) error {
	r, ok := m.Room(roomName)
	if !ok {
		return fmt.Errorf("room %s not found", roomName)
	}
	if err := r.Apply(room.Action{Kind: room.ActStart, Player: player}); err != nil {
		return err
	}
	go r.RunDealing()
	return nil
}

// NextRound rotates the dealer, applies leveling and starts the next deal.
func (m *RoomManager) NextRound(roomName, player string) error {
	r, ok := m.Room(roomName)
	if !ok {
		return fmt.Errorf("room %s not found", roomName)
	}
	if err := r.Apply(room.Action{Kind: room.ActNextRound, Player: player}); err != nil {
		return err
	}
	go r.RunDealing()
	return nil
}

func (m *RoomManager) roomOf(player string) (*room.Room, bool) {
	m.mu.RLock()
	name, ok := m.playerRoom[player]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return m.Room(name)
}

type cardsPayload struct {
	CardIDs []string  `json:"card_ids"`
	Suit    card.Suit `json:"suit"`
}

// HandlePlayerMessage is the single entry for websocket requests
// (Hub.OnIncoming).
func (m *RoomManager) HandlePlayerMessage(msg websocket.IncomingMessage) {
	r, ok := m.roomOf(msg.From)
	if !ok {
		m.hub.SendToPlayer(msg.From, websocket.OutgoingMessage{
			Event: room.EventActionRejected,
			Data:  map[string]any{"action": msg.Event, "reason": rules.NotSeated.Error()},
		})
		return
	}

	var p cardsPayload
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			m.hub.SendToPlayer(msg.From, websocket.OutgoingMessage{
				Event: room.EventActionRejected,
				Data:  map[string]any{"action": msg.Event, "reason": "bad payload"},
			})
			return
		}
	}

	switch room.Kind(msg.Event) {
	case room.ActDeclare:
		r.Enqueue(room.Action{Kind: room.ActDeclare, Player: msg.From, CardIDs: p.CardIDs, Suit: p.Suit})
	case room.ActExchange:
		r.Enqueue(room.Action{Kind: room.ActExchange, Player: msg.From, CardIDs: p.CardIDs})
	case room.ActPlay:
		r.Enqueue(room.Action{Kind: room.ActPlay, Player: msg.From, CardIDs: p.CardIDs})
	case room.ActStart:
		if err := m.Start(r.Name, msg.From); err != nil {
			m.rejectTo(msg.From, msg.Event, err)
		}
	case room.ActNextRound:
		if err := m.NextRound(r.Name, msg.From); err != nil {
			m.rejectTo(msg.From, msg.Event, err)
		}
	default:
		m.rejectTo(msg.From, msg.Event, fmt.Errorf("unknown action"))
	}
}

func (m *RoomManager) rejectTo(player, action string, err error) {
	m.hub.SendToPlayer(player, websocket.OutgoingMessage{
		Event: room.EventActionRejected,
		Data:  map[string]any{"action": action, "reason": err.Error()},
	})
}

// HandleAttach restores state for a (re)connecting player (Hub.OnAttach).
// Runs async so the hub loop is never blocked on its own send channel.
func (m *RoomManager) HandleAttach(player string) {
	go func() {
		r, ok := m.roomOf(player)
		if !ok {
			return
		}
		view, err := r.View(player)
		if err != nil {
			return
		}
		m.hub.SendToPlayer(player, websocket.OutgoingMessage{
			Event: room.EventRestoreState,
			Data:  view,
		})
	}()
}
