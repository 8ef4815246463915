package rules

import "ShengJi/internal/game/card"

// Play is one seat's contribution to a trick.
type Play struct {
	Seat  int
	Cards []card.Card
}

// PowerScore maps a card onto the strict comparison ladder:
// BigJoker > SmallJoker > main level > sub level > main 2 > sub 2 >
// main-suit card > off-suit card.
func PowerScore(c card.Card, mainSuit card.Suit, level card.Rank) int {
	switch c.EffectiveType(mainSuit, level) {
	case card.TypeBigJoker:
		return 900
	case card.TypeSmallJoker:
		return 800
	case card.MainLevel:
		return 700
	case card.SubLevel:
		return 600
	case card.MainTwo:
		return 500
	case card.SubTwo:
		return 400
	case card.MainSuitCard:
		return 200 + int(c.Rank)
	default:
		return int(c.Rank)
	}
}

// TrickWinner returns the index within plays of the winning entry. The first
// entry is the leader. A challenger can only win by matching the leader's
// structure and either following the leader's effective suit or trumping a
// non-main lead with main cards. Ties keep the earlier play.
func TrickWinner(plays []Play, mainSuit card.Suit, level card.Rank) int {
	if len(plays) == 0 {
		return -1
	}

	leader := plays[0]
	leaderType := Classify(leader.Cards)
	leaderSuit := leader.Cards[0].EffectiveSuit(mainSuit, level)

	winning := 0
	best := leader.Cards

	for i := 1; i < len(plays); i++ {
		challenger := plays[i].Cards
		if Classify(challenger) != leaderType {
			continue // mixed discards and broken structures never win
		}
		challengerSuit := challenger[0].EffectiveSuit(mainSuit, level)

		kill := leaderSuit != card.EffectiveSuitMain && challengerSuit == card.EffectiveSuitMain
		follow := challengerSuit == leaderSuit
		if !kill && !follow {
			continue
		}

		// Structures are copies of one face, so the first card decides.
		if PowerScore(challenger[0], mainSuit, level) > PowerScore(best[0], mainSuit, level) {
			winning = i
			best = challenger
		}
	}
	return winning
}

// TrickPoints sums the scoring cards across every play in the trick.
func TrickPoints(plays []Play) int {
	total := 0
	for _, p := range plays {
		for _, c := range p.Cards {
			total += c.Points()
		}
	}
	return total
}
