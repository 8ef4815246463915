package rules

import "ShengJi/internal/game/card"

// ValidateLead checks a trick-opening play: any Single/Pair/Triple/Quad.
func ValidateLead(cards []card.Card) error {
	if Classify(cards) == Invalid {
		return InvalidStructure
	}
	return nil
}

// ValidateFollow enforces the follow rules for a non-leading seat.
//
// hand is the seat's full hand before the submission is removed. The checks
// run in order: card count, suit exhaustion, then the dead-stick rule when
// the seat follows suit completely.
func ValidateFollow(leaderCards, played, hand []card.Card, mainSuit card.Suit, level card.Rank) error {
	if len(played) != len(leaderCards) {
		return WrongCardCount
	}

	leaderType := Classify(leaderCards)
	if leaderType == Invalid {
		// The leader's play was validated on entry; an invalid one here is a
		// bug upstream, but rejecting is still safe.
		return InvalidStructure
	}

	targetSuit := leaderCards[0].EffectiveSuit(mainSuit, level)

	var handSuit []card.Card
	for _, c := range hand {
		if c.EffectiveSuit(mainSuit, level) == targetSuit {
			handSuit = append(handSuit, c)
		}
	}
	playedMatching := 0
	for _, c := range played {
		if c.EffectiveSuit(mainSuit, level) == targetSuit {
			playedMatching++
		}
	}

	required := len(leaderCards)
	if len(handSuit) >= required {
		// Enough of the suit in hand: the whole play must follow it.
		if playedMatching < required {
			return MustFollowSuit
		}
	} else {
		// Short of the suit: every matching card held must be on the table.
		if playedMatching < len(handSuit) {
			return MustExhaustSuit
		}
	}

	// Dead stick applies only when the seat follows suit completely: the
	// largest qualifying structure in the suit must not be broken up.
	if playedMatching == required {
		handStructures := faceCounts(handSuit)
		requiredSize := 1
		for size := leaderType.Size(); size >= 2; size-- {
			if hasStructureOfSize(handStructures, size) {
				requiredSize = size
				break
			}
		}
		if maxStructureSize(faceCounts(played)) < requiredSize {
			return DeadStick
		}
	}

	return nil
}
