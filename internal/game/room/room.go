package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"ShengJi/config"
	"ShengJi/internal/game/card"
	"ShengJi/internal/game/rules"
	"ShengJi/internal/websocket"
)

// Phase 房间阶段
type Phase string

const (
	PhaseWaiting    Phase = "waiting"
	PhaseDrawing    Phase = "drawing"
	PhaseExchanging Phase = "exchanging"
	PhasePlaying    Phase = "playing"
	PhaseFinished   Phase = "finished"
)

// Hub is the transport boundary the room pushes events through.
type Hub interface {
	BroadcastToPlayers(addrs []string, msg websocket.OutgoingMessage)
	SendToPlayer(addr string, msg websocket.OutgoingMessage)
}

// Seat 一个座位。队伍按 seat % 3 固定：0&3、1&4、2&5 两两成队
type Seat struct {
	Player string
	Team   int
	Hand   map[string]card.Card // instance id -> card
}

// Declaration records the current winning main-suit call.
type Declaration struct {
	Seat     int
	Suit     card.Suit
	Strength int
	Count    int
}

// Room owns the authoritative state for one table. Every player action goes
// through Apply under the room lock: validation and mutation are atomic, and
// a rejection leaves state untouched. Snapshots take the read lock so they
// never observe a half-applied action.
type Room struct {
	mu sync.RWMutex

	ID   string
	Name string

	cfg config.GameConfig
	hub Hub

	phase    Phase
	seats    []*Seat
	deck     *card.Deck
	bottom   []card.Card
	mainSuit card.Suit
	level    card.Rank // level rank in play this round

	teamLevels [3]card.Rank
	champion   int // team index past Ace, -1 otherwise

	dealer   int
	turn     int
	nextDraw int

	round       int
	declaration *Declaration
	trick       []rules.Play
	captured    [3]int // points captured per team this round

	actionChan chan Action
	closed     chan struct{}
}

// New creates an empty room in the Waiting phase and starts its action loop.
func New(name string, cfg config.GameConfig, hub Hub) *Room {
	r := &Room{
		ID:         uuid.NewString(),
		Name:       name,
		cfg:        cfg,
		hub:        hub,
		phase:      PhaseWaiting,
		seats:      make([]*Seat, cfg.PlayersPerRoom),
		dealer:     -1,
		turn:       -1,
		champion:   -1,
		actionChan: make(chan Action, 32),
		closed:     make(chan struct{}),
	}
	for t := 0; t < 3; t++ {
		r.teamLevels[t] = card.Rank(cfg.StartingLevel)
	}
	go r.loop()
	return r
}

// Close tears the room down and discards its state.
func (r *Room) Close() {
	close(r.closed)
}

func (r *Room) loop() {
	for {
		select {
		case a := <-r.actionChan:
			if err := r.Apply(a); err != nil {
				r.hub.SendToPlayer(a.Player, websocket.OutgoingMessage{
					Event: EventActionRejected,
					Data:  map[string]any{"action": string(a.Kind), "reason": err.Error()},
				})
			}
		case <-r.closed:
			return
		}
	}
}

// Enqueue hands an action to the room's single-consumer loop. Rejections are
// surfaced to the submitting player only.
func (r *Room) Enqueue(a Action) {
	select {
	case r.actionChan <- a:
	case <-r.closed:
	}
}

// seatOf returns the seat index occupied by the player, or -1.
func (r *Room) seatOf(player string) int {
	for i, s := range r.seats {
		if s != nil && s.Player == player {
			return i
		}
	}
	return -1
}

// occupants lists the connected player names for broadcasting.
func (r *Room) occupants() []string {
	out := make([]string, 0, len(r.seats))
	for _, s := range r.seats {
		if s != nil {
			out = append(out, s.Player)
		}
	}
	return out
}

func (r *Room) seatedCount() int {
	n := 0
	for _, s := range r.seats {
		if s != nil {
			n++
		}
	}
	return n
}

// takeCards removes the identified cards from the seat's hand. The whole
// request fails without mutation when any id is missing or repeated.
func (s *Seat) takeCards(ids []string) ([]card.Card, error) {
	picked := make([]card.Card, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, rules.UnknownCard
		}
		c, ok := s.Hand[id]
		if !ok {
			return nil, rules.UnknownCard
		}
		seen[id] = struct{}{}
		picked = append(picked, c)
	}
	for _, id := range ids {
		delete(s.Hand, id)
	}
	return picked, nil
}

// peekCards resolves ids without removing them.
func (s *Seat) peekCards(ids []string) ([]card.Card, error) {
	picked := make([]card.Card, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, rules.UnknownCard
		}
		c, ok := s.Hand[id]
		if !ok {
			return nil, rules.UnknownCard
		}
		seen[id] = struct{}{}
		picked = append(picked, c)
	}
	return picked, nil
}

func (s *Seat) handSlice() []card.Card {
	out := make([]card.Card, 0, len(s.Hand))
	for _, c := range s.Hand {
		out = append(out, c)
	}
	return out
}

// startRound shuffles a fresh deck, sets the bottom aside and enters the
// Drawing phase. Deck corruption aborts instead of dealing an inconsistent
// round.
func (r *Room) startRound() error {
	deck, err := card.NewDeck(time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	deck.Shuffle()
	bottom, err := deck.Draw(r.cfg.BottomCards)
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}

	r.deck = deck
	r.bottom = bottom
	r.mainSuit = card.SuitNone
	r.declaration = nil
	r.trick = nil
	r.captured = [3]int{}
	for _, s := range r.seats {
		s.Hand = make(map[string]card.Card)
	}
	if r.dealer < 0 {
		r.dealer = 0
	}
	r.round++
	r.level = r.teamLevels[r.dealer%3]
	r.nextDraw = r.dealer
	r.turn = -1
	r.phase = PhaseDrawing

	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventGameStarted,
		Data: map[string]any{
			"room":        r.Name,
			"phase":       r.phase,
			"dealer":      r.dealer,
			"level":       r.level,
			"team_levels": r.teamLevels,
		},
	})
	return nil
}
