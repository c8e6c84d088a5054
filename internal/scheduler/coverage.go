package scheduler

import "math"

// PartnerCoverage reports how many of the N*(N-1)/2 possible partnerships have
// happened at least once. Repeats do not count twice; this is an existence
// metric, not a frequency one. A roster of one (or none) is trivially
// complete.
func PartnerCoverage(roster []Player, history []Round) Coverage {
	n := len(roster)
	total := n * (n - 1) / 2
	if total <= 0 {
		return Coverage{Complete: true, Percent: 100}
	}

	seen := make(map[string]struct{})
	for _, round := range history {
		for _, m := range round.Matches {
			seen[PairKey(m.TeamA[0].ID, m.TeamA[1].ID)] = struct{}{}
			seen[PairKey(m.TeamB[0].ID, m.TeamB[1].ID)] = struct{}{}
		}
	}

	percent := int(math.Round(float64(len(seen)) / float64(total) * 100))
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	missing := total - len(seen)
	if missing < 0 {
		missing = 0
	}

	return Coverage{
		TotalPairs:   total,
		SeenPairs:    len(seen),
		MissingPairs: missing,
		Percent:      percent,
		Complete:     len(seen) >= total,
	}
}

// RecommendRounds estimates how many rounds are needed to give every pair of
// players at least one game as partners. It assumes every round produces only
// new partnerships, so it is a lower bound; real tournaments usually need a
// few more. Returns 0 when the roster cannot fill a single court.
func RecommendRounds(rosterSize, courts int) int {
	if rosterSize < 4 {
		return 0
	}

	usable := courts
	if max := rosterSize / 4; usable > max {
		usable = max
	}
	if usable < 1 {
		usable = 1
	}

	// Each court covers 4 ordered pair slots per round.
	slotsPerRound := 4 * usable
	rounds := (rosterSize*(rosterSize-1) + slotsPerRound - 1) / slotsPerRound
	if rounds < 1 {
		rounds = 1
	}
	return rounds
}
