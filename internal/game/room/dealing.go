package room

import (
	"time"

	"ShengJi/internal/game/card"
	"ShengJi/internal/game/rules"
	"ShengJi/internal/websocket"
)

// RunDealing paces the one-card-at-a-time deal so declarations can interleave,
// then closes the drawing phase. Intended to run on its own goroutine.
func (r *Room) RunDealing() {
	interval := time.Duration(r.cfg.DealIntervalMs) * time.Millisecond
	for {
		select {
		case <-r.closed:
			return
		default:
		}
		if !r.DealNext() {
			break
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}
	r.FinishDrawing()
}

// DealNext deals a single card to the next seat in rotation and reports
// whether cards remain. The receiving seat alone learns the card.
func (r *Room) DealNext() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseDrawing {
		return false
	}
	c, ok := r.deck.DrawOne()
	if !ok {
		return false
	}
	seat := r.nextDraw
	r.seats[seat].Hand[c.ID] = c
	r.nextDraw = (r.nextDraw + 1) % len(r.seats)

	r.hub.SendToPlayer(r.seats[seat].Player, websocket.OutgoingMessage{
		Event: EventCardDealt,
		Data:  map[string]any{"seat": seat, "card": c},
	})
	return r.deck.Remaining() > 0
}

// handleDeclare processes a main-suit call during the draw. The caller must
// still hold the presented cards; a later call sticks only when strictly
// stronger. The first declarer of the round becomes dealer and keeps it.
func (r *Room) handleDeclare(a Action) error {
	seat := r.seatOf(a.Player)
	if seat < 0 {
		return rules.NotSeated
	}
	cards, err := r.seats[seat].peekCards(a.CardIDs)
	if err != nil {
		return err
	}
	strength := rules.DeclarationStrength(cards, r.level)
	if strength == 0 {
		return rules.InvalidStructure
	}
	suit, err := rules.DeclaredSuit(cards, a.Suit)
	if err != nil {
		return err
	}

	if r.declaration == nil {
		// In the opening round the first caller takes the deal and keeps it
		// even if outbid later. From the second round on the dealer comes
		// from the previous result and a call only fixes the suit.
		if r.round == 1 {
			r.dealer = seat
		}
	} else if strength <= r.declaration.Strength {
		return rules.TooWeak
	}

	r.declaration = &Declaration{Seat: seat, Suit: suit, Strength: strength, Count: len(cards)}
	r.mainSuit = suit

	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventMainDeclared,
		Data: map[string]any{
			"seat":     seat,
			"suit":     suit,
			"strength": strength,
			"count":    len(cards),
			"dealer":   r.dealer,
		},
	})
	return nil
}

// FinishDrawing closes the draw: resolves an undeclared main suit from the
// bottom cards, hands the bottom to the dealer and enters Exchanging.
func (r *Room) FinishDrawing() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseDrawing {
		return
	}

	if r.declaration == nil {
		// Nobody called: flip the bottom, highest non-joker rank names the
		// suit. An all-joker bottom leaves the round without a main suit.
		r.mainSuit = card.SuitNone
		best := card.Card{}
		for _, c := range r.bottom {
			if c.Suit != card.Joker && c.Rank > best.Rank {
				best = c
			}
		}
		if best.Rank != 0 {
			r.mainSuit = best.Suit
		}
		if r.dealer < 0 {
			r.dealer = 0
		}
		r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
			Event: EventBottomRevealed,
			Data:  map[string]any{"cards": r.bottom, "suit": r.mainSuit},
		})
	}

	// The bottom joins the dealer's hand but stays recorded until the
	// exchange replaces it, so the dealer's private view can show it.
	dealerSeat := r.seats[r.dealer]
	for _, c := range r.bottom {
		dealerSeat.Hand[c.ID] = c
	}
	handed := r.bottom
	r.phase = PhaseExchanging
	r.turn = r.dealer

	r.hub.BroadcastToPlayers(r.occupants(), websocket.OutgoingMessage{
		Event: EventExchangeStarted,
		Data:  map[string]any{"dealer": r.dealer, "suit": r.mainSuit, "level": r.level},
	})
	// Only the dealer sees which cards came off the deck.
	r.hub.SendToPlayer(dealerSeat.Player, websocket.OutgoingMessage{
		Event: EventBottomRevealed,
		Data:  map[string]any{"cards": handed, "suit": r.mainSuit},
	})
}
