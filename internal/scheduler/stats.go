package scheduler

// AggregateStats recomputes all counters from scratch over the full history.
// Every roster player gets a games-played entry, so players who have not
// played yet still show up with zero. Pure function: same inputs, same
// counters, no mutation of history.
func AggregateStats(roster []Player, history []Round) Stats {
	stats := Stats{
		GamesPlayed:   make(map[string]int, len(roster)),
		PartnerCount:  make(map[string]int),
		OpponentCount: make(map[string]int),
	}
	for _, p := range roster {
		stats.GamesPlayed[p.ID] = 0
	}

	for _, round := range history {
		for _, m := range round.Matches {
			for _, p := range [4]Player{m.TeamA[0], m.TeamA[1], m.TeamB[0], m.TeamB[1]} {
				// Players removed from the roster may still appear in old
				// rounds; only roster players are counted.
				if _, ok := stats.GamesPlayed[p.ID]; ok {
					stats.GamesPlayed[p.ID]++
				}
			}
			stats.PartnerCount[PairKey(m.TeamA[0].ID, m.TeamA[1].ID)]++
			stats.PartnerCount[PairKey(m.TeamB[0].ID, m.TeamB[1].ID)]++
			for _, a := range m.TeamA {
				for _, b := range m.TeamB {
					stats.OpponentCount[PairKey(a.ID, b.ID)]++
				}
			}
		}
	}

	return stats
}
