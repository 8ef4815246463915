package room

import "ShengJi/internal/game/card"

// rotateDealer settles the finished round: level movement and the next deal.
//
// If no catching team reached the defend threshold the dealer's team held:
// its level rises one rank and the deal passes to the dealer's teammate.
// Otherwise the strongest catching team takes over: the deal goes to its
// first member clockwise of the old dealer and its own level is played next.
func (r *Room) rotateDealer() {
	dealerTeam := r.dealer % 3

	bestTeam, bestScore := -1, 0
	for t := 0; t < 3; t++ {
		if t == dealerTeam {
			continue
		}
		if r.captured[t] > bestScore {
			bestTeam, bestScore = t, r.captured[t]
		}
	}

	if bestScore < r.cfg.DefendThreshold {
		r.advanceLevel(dealerTeam)
		r.dealer = r.nextSeatOnTeam(r.dealer, dealerTeam)
		return
	}
	r.dealer = r.nextSeatOnTeam(r.dealer, bestTeam)
}

// advanceLevel bumps a team one rank; going past Ace crowns it champion.
func (r *Room) advanceLevel(team int) {
	if r.teamLevels[team] >= card.Ace {
		r.champion = team
		return
	}
	r.teamLevels[team]++
}

// nextSeatOnTeam walks clockwise from the given seat to the next seat
// belonging to the team.
func (r *Room) nextSeatOnTeam(from, team int) int {
	n := len(r.seats)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if seat%3 == team {
			return seat
		}
	}
	return from
}
