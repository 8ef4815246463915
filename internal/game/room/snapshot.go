package room

import (
	"ShengJi/internal/game/card"
	"ShengJi/internal/game/rules"
)

// SeatView is the public face of a seat.
type SeatView struct {
	Seat      int    `json:"seat"`
	Player    string `json:"player,omitempty"`
	Team      int    `json:"team"`
	HandCount int    `json:"hand_count"`
}

// TrickEntry mirrors one play of the trick in progress.
type TrickEntry struct {
	Seat  int         `json:"seat"`
	Cards []card.Card `json:"cards"`
}

// Snapshot is the public room state used for resync after reconnect.
type Snapshot struct {
	Room       string       `json:"room"`
	Phase      Phase        `json:"phase"`
	Seats      []SeatView   `json:"seats"`
	Dealer     int          `json:"dealer"`
	Turn       int          `json:"turn"`
	MainSuit   card.Suit    `json:"main_suit"`
	Level      card.Rank    `json:"level"`
	TeamLevels [3]card.Rank `json:"team_levels"`
	Scores     [3]int       `json:"scores"`
	Trick      []TrickEntry `json:"trick"`
	Round      int          `json:"round"`
	Champion   int          `json:"champion"`
}

// PrivateView adds the owning seat's secrets to the public snapshot.
type PrivateView struct {
	Snapshot
	Seat   int         `json:"seat"`
	Hand   []card.Card `json:"hand"`
	Bottom []card.Card `json:"bottom,omitempty"` // dealer during the exchange
}

// Snapshot returns a consistent public view; it never observes a
// half-applied action.
func (r *Room) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() Snapshot {
	seats := make([]SeatView, len(r.seats))
	for i, s := range r.seats {
		seats[i] = SeatView{Seat: i, Team: i % 3}
		if s != nil {
			seats[i].Player = s.Player
			seats[i].HandCount = len(s.Hand)
		}
	}
	trick := make([]TrickEntry, len(r.trick))
	for i, p := range r.trick {
		trick[i] = TrickEntry{Seat: p.Seat, Cards: p.Cards}
	}
	return Snapshot{
		Room:       r.Name,
		Phase:      r.phase,
		Seats:      seats,
		Dealer:     r.dealer,
		Turn:       r.turn,
		MainSuit:   r.mainSuit,
		Level:      r.level,
		TeamLevels: r.teamLevels,
		Scores:     r.captured,
		Trick:      trick,
		Round:      r.round,
		Champion:   r.champion,
	}
}

// View returns the player's private view, or an error when not seated.
func (r *Room) View(player string) (PrivateView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seat := r.seatOf(player)
	if seat < 0 {
		return PrivateView{}, rules.NotSeated
	}
	v := PrivateView{
		Snapshot: r.snapshotLocked(),
		Seat:     seat,
		Hand:     r.seats[seat].handSlice(),
	}
	if r.phase == PhaseExchanging && seat == r.dealer {
		v.Bottom = append([]card.Card(nil), r.bottom...)
	}
	return v, nil
}
