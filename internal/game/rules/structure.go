package rules

import "ShengJi/internal/game/card"

// Structure is the shape of a play. With four identical decks the only legal
// shapes are 1-4 exact copies of the same (suit, rank); there are no
// sequences in this ruleset.
type Structure int

const (
	Invalid Structure = iota
	Single
	Pair
	Triple
	Quad
)

func (s Structure) String() string {
	switch s {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Quad:
		return "quad"
	default:
		return "invalid"
	}
}

// Size returns the card count of the structure, 0 for Invalid.
func (s Structure) Size() int {
	if s == Invalid {
		return 0
	}
	return int(s)
}

// Classify reports the structure formed by the cards. Valid only when every
// card shares the exact same suit and rank; same effective suit is not
// enough.
func Classify(cards []card.Card) Structure {
	if len(cards) == 0 || len(cards) > 4 {
		return Invalid
	}
	first := cards[0]
	for _, c := range cards[1:] {
		if !c.SameFace(first) {
			return Invalid
		}
	}
	return Structure(len(cards))
}

// faceCounts groups cards by (suit, rank) and returns copy counts.
func faceCounts(cards []card.Card) map[card.Face]int {
	counts := make(map[card.Face]int, len(cards))
	for _, c := range cards {
		counts[c.Face()]++
	}
	return counts
}

// maxStructureSize returns the largest copy count within the group map.
func maxStructureSize(counts map[card.Face]int) int {
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	return max
}

// hasStructureOfSize reports whether any face in the group reaches n copies.
func hasStructureOfSize(counts map[card.Face]int, n int) bool {
	for _, cnt := range counts {
		if cnt >= n {
			return true
		}
	}
	return false
}
