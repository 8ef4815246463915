package rules

import "ShengJi/internal/game/card"

// DeclarationStrength scores a main-suit declaration. Zero means the cards
// do not qualify. The order is a strict total order: more copies always beat
// fewer, red level cards edge out black ones at equal count, and triple or
// quad jokers top the table (big over small). A later declaration overrides
// an earlier one only when strictly stronger.
func DeclarationStrength(cards []card.Card, level card.Rank) int {
	if len(cards) == 0 {
		return 0
	}
	first := cards[0]
	for _, c := range cards[1:] {
		if !c.SameFace(first) {
			return 0
		}
	}
	n := len(cards)

	if first.Rank == level {
		strength := n * 10
		if first.Suit.Red() {
			strength += 5
		}
		return strength
	}
	if first.Rank == card.SmallJoker && n >= 3 {
		return 50 + (n-3)*20 // 3 -> 50, 4 -> 70
	}
	if first.Rank == card.BigJoker && n >= 3 {
		return 60 + (n-3)*20 // 3 -> 60, 4 -> 80
	}
	return 0
}

// DeclaredSuit resolves the suit a declaration fixes as main. Level-card
// declarations carry their own suit; joker declarations must name one.
func DeclaredSuit(cards []card.Card, named card.Suit) (card.Suit, error) {
	if len(cards) == 0 {
		return card.SuitNone, InvalidStructure
	}
	if cards[0].Suit == card.Joker {
		switch named {
		case card.Spade, card.Heart, card.Club, card.Diamond:
			return named, nil
		default:
			return card.SuitNone, InvalidStructure
		}
	}
	if named != card.SuitNone && named != cards[0].Suit {
		return card.SuitNone, InvalidStructure
	}
	return cards[0].Suit, nil
}
