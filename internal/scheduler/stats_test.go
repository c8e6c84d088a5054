package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(n int) []Player {
	names := []string{"Anna", "Bo", "Carl", "Dina", "Elin", "Finn", "Greta", "Hugo", "Ida", "Jon", "Klara", "Leo"}
	roster := make([]Player, n)
	for i := range roster {
		roster[i] = Player{ID: names[i], Name: names[i]}
	}
	return roster
}

func match(court int, a1, a2, b1, b2 Player) Match {
	return Match{Court: court, TeamA: [2]Player{a1, a2}, TeamB: [2]Player{b1, b2}}
}

func TestAggregateStatsEmptyHistory(t *testing.T) {
	roster := testRoster(6)
	stats := AggregateStats(roster, nil)

	require.Len(t, stats.GamesPlayed, 6)
	for _, p := range roster {
		assert.Equal(t, 0, stats.GamesPlayed[p.ID])
	}
	assert.Empty(t, stats.PartnerCount)
	assert.Empty(t, stats.OpponentCount)
}

func TestAggregateStatsCounts(t *testing.T) {
	roster := testRoster(4)
	a, b, c, d := roster[0], roster[1], roster[2], roster[3]

	history := []Round{
		{Matches: []Match{match(1, a, b, c, d)}},
		{Matches: []Match{match(1, a, c, b, d)}},
	}

	stats := AggregateStats(roster, history)

	for _, p := range roster {
		assert.Equal(t, 2, stats.GamesPlayed[p.ID], "games for %s", p.Name)
	}

	assert.Equal(t, 1, stats.PartnerCount[PairKey(a.ID, b.ID)])
	assert.Equal(t, 1, stats.PartnerCount[PairKey(a.ID, c.ID)])
	assert.Equal(t, 0, stats.PartnerCount[PairKey(a.ID, d.ID)])

	// a and d were on opposite teams in both rounds.
	assert.Equal(t, 2, stats.OpponentCount[PairKey(a.ID, d.ID)])
	assert.Equal(t, 1, stats.OpponentCount[PairKey(a.ID, c.ID)])
	assert.Equal(t, 1, stats.OpponentCount[PairKey(b.ID, c.ID)])
}

func TestAggregateStatsIdempotent(t *testing.T) {
	roster := testRoster(8)
	history := []Round{
		{Matches: []Match{
			match(1, roster[0], roster[1], roster[2], roster[3]),
			match(2, roster[4], roster[5], roster[6], roster[7]),
		}},
	}

	first := AggregateStats(roster, history)
	second := AggregateStats(roster, history)

	assert.Equal(t, first.GamesPlayed, second.GamesPlayed)
	assert.Equal(t, first.PartnerCount, second.PartnerCount)
	assert.Equal(t, first.OpponentCount, second.OpponentCount)
}

func TestAggregateStatsIgnoresRemovedPlayers(t *testing.T) {
	full := testRoster(4)
	history := []Round{
		{Matches: []Match{match(1, full[0], full[1], full[2], full[3])}},
	}

	// Drop the last player from the roster; the old round still references them.
	stats := AggregateStats(full[:3], history)

	require.Len(t, stats.GamesPlayed, 3)
	assert.NotContains(t, stats.GamesPlayed, full[3].ID)
	assert.Equal(t, 1, stats.GamesPlayed[full[0].ID])
}
