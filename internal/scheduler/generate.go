package scheduler

import (
	"math/rand"
	"sort"
	"time"
)

// Cost weights for evaluating a candidate team split. A single repeated
// partnership (14) always outweighs anything the opponent (3) and playtime
// (0.25) terms can add up to, so partner novelty wins first, then opponent
// novelty, then balanced playtime.
const (
	partnerWeight  = 14
	opponentWeight = 3
	playtimeBonus  = 0.25
)

// GenerateFairRound builds the next round: it picks who sits out, fills each
// court with four players, and splits every four into the two teams that
// repeat the fewest partnerships. rnd breaks ties among players with equal
// games played; pass a seeded source for deterministic output, or nil for a
// time-seeded one.
//
// A roster smaller than four is not an error: the result is simply no matches
// and everyone on the bench.
func GenerateFairRound(roster []Player, courtsWanted int, history []Round, rnd *rand.Rand) Plan {
	courts := courtsWanted
	if max := len(roster) / 4; courts > max {
		courts = max
	}
	if courts <= 0 {
		return Plan{Matches: []Match{}, Bench: append([]Player(nil), roster...)}
	}

	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	stats := AggregateStats(roster, history)

	// Rank by ascending games played. Shuffle first so that players tied on
	// games played are ordered randomly; otherwise the same sub-group would
	// ride the bench round after round whenever many players are tied.
	ranked := make([]Player, len(roster))
	copy(ranked, roster)
	rnd.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats.GamesPlayed[ranked[i].ID] < stats.GamesPlayed[ranked[j].ID]
	})

	active := ranked[:courts*4]
	bench := append([]Player(nil), ranked[courts*4:]...)

	pool := append([]Player(nil), active...)
	matches := make([]Match, 0, courts)
	for court := 1; court <= courts && len(pool) >= 4; court++ {
		teamA, teamB, picked := bestFoursome(pool, stats)
		matches = append(matches, Match{Court: court, TeamA: teamA, TeamB: teamB})

		remaining := pool[:0]
		for idx, p := range pool {
			if !picked[idx] {
				remaining = append(remaining, p)
			}
		}
		pool = remaining
	}

	// Should be empty when courts*4 players were taken, but any stragglers
	// sit out with the bench rather than disappearing.
	bench = append(bench, pool...)

	return Plan{Matches: matches, Bench: bench}
}

// splits are the three ways to divide four players into two unordered teams
// of two, as index pairs into the foursome.
var splits = [3][2][2]int{
	{{0, 1}, {2, 3}},
	{{0, 2}, {1, 3}},
	{{0, 3}, {1, 2}},
}

// bestFoursome exhaustively scores every combination of four players from the
// pool together with all three team splits, and returns the cheapest one.
// Ties keep the first candidate found, so iteration order makes the result
// deterministic for a given pool. picked marks the pool indices of the chosen
// four.
func bestFoursome(pool []Player, stats Stats) (teamA, teamB [2]Player, picked map[int]bool) {
	bestCost := 0.0
	found := false
	var bestIdx [4]int

	for i := 0; i < len(pool)-3; i++ {
		for j := i + 1; j < len(pool)-2; j++ {
			for k := j + 1; k < len(pool)-1; k++ {
				for l := k + 1; l < len(pool); l++ {
					four := [4]Player{pool[i], pool[j], pool[k], pool[l]}
					for _, split := range splits {
						a := [2]Player{four[split[0][0]], four[split[0][1]]}
						b := [2]Player{four[split[1][0]], four[split[1][1]]}
						cost := splitCost(a, b, stats)
						if !found || cost < bestCost {
							found = true
							bestCost = cost
							teamA, teamB = a, b
							bestIdx = [4]int{i, j, k, l}
						}
					}
				}
			}
		}
	}

	picked = map[int]bool{bestIdx[0]: true, bestIdx[1]: true, bestIdx[2]: true, bestIdx[3]: true}
	return teamA, teamB, picked
}

func splitCost(teamA, teamB [2]Player, stats Stats) float64 {
	partner := stats.PartnerCount[PairKey(teamA[0].ID, teamA[1].ID)] +
		stats.PartnerCount[PairKey(teamB[0].ID, teamB[1].ID)]

	opponents := 0
	games := 0
	for _, a := range teamA {
		games += stats.GamesPlayed[a.ID]
		for _, b := range teamB {
			opponents += stats.OpponentCount[PairKey(a.ID, b.ID)]
		}
	}
	for _, b := range teamB {
		games += stats.GamesPlayed[b.ID]
	}

	return partnerWeight*float64(partner) +
		opponentWeight*float64(opponents) -
		playtimeBonus*float64(games)
}
