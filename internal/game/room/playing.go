package room

import (
	"ShengJi/internal/game/rules"
	"ShengJi/internal/websocket"
)

// handleExchange lets the dealer bury six cards back under the deck. Only the
// dealer may act in this phase.
func (r *Room) handleExchange(a Action) error {
	seat := r.seatOf(a.Player)
	if seat < 0 {
		return rules.NotSeated
	}
	if seat != r.dealer {
		return rules.NotDealer
	}
	if len(a.CardIDs) != r.cfg.BottomCards {
		return rules.WrongCardCount
	}
	buried, err := r.seats[seat].takeCards(a.CardIDs)
	if err != nil {
		return err
	}
	r.bottom = buried
	r.phase = PhasePlaying
	r.turn = r.dealer

	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventPlayStarted,
		Data:  map[string]any{"turn": r.turn, "suit": r.mainSuit, "level": r.level},
	})
	return nil
}

// handlePlay validates and applies one play. Leads need a valid structure;
// follows run the full suit/exhaustion/dead-stick check against the hand
// before any card moves.
func (r *Room) handlePlay(a Action) error {
	seat := r.seatOf(a.Player)
	if seat < 0 {
		return rules.NotSeated
	}
	if seat != r.turn {
		return rules.NotYourTurn
	}

	s := r.seats[seat]
	cards, err := s.peekCards(a.CardIDs)
	if err != nil {
		return err
	}

	if len(r.trick) == 0 {
		if err := rules.ValidateLead(cards); err != nil {
			return err
		}
	} else {
		leader := r.trick[0].Cards
		if err := rules.ValidateFollow(leader, cards, s.handSlice(), r.mainSuit, r.level); err != nil {
			return err
		}
	}

	if _, err := s.takeCards(a.CardIDs); err != nil {
		return err
	}
	r.trick = append(r.trick, rules.Play{Seat: seat, Cards: cards})
	r.turn = (r.turn + 1) % len(r.seats)

	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventPlayAccepted,
		Data:  map[string]any{"seat": seat, "cards": cards, "next_turn": r.turn},
	})

	if len(r.trick) == len(r.seats) {
		r.resolveTrick()
	}
	return nil
}

// resolveTrick settles a full trick: winner, captured points, next leader.
// Dealer-team tricks capture nothing for the catching score. The last trick
// also settles the bottom (Kou Di) and ends the round.
func (r *Room) resolveTrick() {
	winIdx := rules.TrickWinner(r.trick, r.mainSuit, r.level)
	winner := r.trick[winIdx].Seat
	winTeam := winner % 3
	dealerTeam := r.dealer % 3

	points := rules.TrickPoints(r.trick)
	if winTeam != dealerTeam {
		r.captured[winTeam] += points
	}

	lastTrick := len(r.seats[winner].Hand) == 0
	kouDi := 0
	if lastTrick && winTeam != dealerTeam {
		// Catching team takes the last trick: the buried cards count against
		// the dealer at the configured multiplier. A dealer-team win buries
		// them for good.
		for _, c := range r.bottom {
			kouDi += c.Points()
		}
		kouDi *= r.cfg.KouDiMultiplier
		r.captured[winTeam] += kouDi
	}

	r.trick = nil
	r.turn = winner

	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventTrickResolved,
		Data: map[string]any{
			"winner":    winner,
			"points":    points,
			"kou_di":    kouDi,
			"scores":    r.captured,
			"next_turn": r.turn,
		},
	})

	if lastTrick {
		r.finishRound(winner)
	}
}

// finishRound freezes scores and reveals the bottom to everyone.
func (r *Room) finishRound(lastWinner int) {
	r.phase = PhaseFinished
	r.turn = -1

	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventBottomRevealed,
		Data:  map[string]any{"cards": r.bottom, "suit": r.mainSuit},
	})
	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventRoundFinished,
		Data: map[string]any{
			"scores":      r.captured,
			"team_levels": r.teamLevels,
			"last_winner": lastWinner,
			"dealer":      r.dealer,
		},
	})
}
