package scheduler

import "sort"

// StandingsEntry is one row of the Americano points table.
type StandingsEntry struct {
	Player      Player `json:"player"`
	Points      int    `json:"points"`
	GamesPlayed int    `json:"gamesPlayed"`
	Diff        int    `json:"diff"`
}

// Standings computes the cumulative points table over all scored matches in
// history. In Americano scoring every player banks their own team's points
// each match, so the table is a straight sum. Matches without a recorded
// score contribute nothing. Sorted by points, then point differential, then
// name.
func Standings(roster []Player, history []Round) []StandingsEntry {
	points := make(map[string]int, len(roster))
	diff := make(map[string]int, len(roster))
	games := make(map[string]int, len(roster))

	for _, round := range history {
		for _, m := range round.Matches {
			score, ok := round.Scores[m.Court]
			if !ok {
				continue
			}
			for _, p := range m.TeamA {
				points[p.ID] += score.TeamA
				diff[p.ID] += score.TeamA - score.TeamB
				games[p.ID]++
			}
			for _, p := range m.TeamB {
				points[p.ID] += score.TeamB
				diff[p.ID] += score.TeamB - score.TeamA
				games[p.ID]++
			}
		}
	}

	entries := make([]StandingsEntry, 0, len(roster))
	for _, p := range roster {
		entries = append(entries, StandingsEntry{
			Player:      p,
			Points:      points[p.ID],
			GamesPlayed: games[p.ID],
			Diff:        diff[p.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		if entries[i].Diff != entries[j].Diff {
			return entries[i].Diff > entries[j].Diff
		}
		return entries[i].Player.Name < entries[j].Player.Name
	})

	return entries
}
