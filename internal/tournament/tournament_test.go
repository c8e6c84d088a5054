package tournament

import (
	"context"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvart/padel-americano/internal/scheduler"
)

func newTestTournament(t *testing.T) *Tournament {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	tour := New(log, rand.New(rand.NewSource(1)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go tour.Run(ctx)
	return tour
}

func send(t *testing.T, tour *Tournament, build func(chan error) Command) error {
	t.Helper()
	resp := make(chan error, 1)
	tour.Send(build(resp))
	select {
	case err := <-resp:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("command timed out")
		return nil
	}
}

func addPlayer(t *testing.T, tour *Tournament, name string) error {
	return send(t, tour, func(resp chan error) Command {
		return AddPlayer{Name: name, Response: resp}
	})
}

func addPlayers(t *testing.T, tour *Tournament, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, addPlayer(t, tour, name))
	}
}

func generate(t *testing.T, tour *Tournament) error {
	return send(t, tour, func(resp chan error) Command {
		return GenerateRound{Response: resp}
	})
}

func saveWithScore(t *testing.T, tour *Tournament, scores map[int]scheduler.Score) error {
	return send(t, tour, func(resp chan error) Command {
		return SaveRound{Scores: scores, Response: resp}
	})
}

// saveAll saves the pending round with a fixed score on every court.
func saveAll(t *testing.T, tour *Tournament) {
	t.Helper()
	snap := tour.GetState()
	require.NotNil(t, snap.Pending)

	scores := make(map[int]scheduler.Score)
	for _, m := range snap.Pending.Matches {
		scores[m.Court] = scheduler.Score{TeamA: 21, TeamB: 15}
	}
	require.NoError(t, saveWithScore(t, tour, scores))
}

func TestAddPlayer(t *testing.T) {
	tour := newTestTournament(t)

	require.NoError(t, addPlayer(t, tour, "Anna"))

	snap := tour.GetState()
	require.Len(t, snap.Roster, 1)
	assert.Equal(t, "Anna", snap.Roster[0].Name)
	assert.NotEmpty(t, snap.Roster[0].ID)
}

func TestAddPlayerRejectsDuplicateName(t *testing.T) {
	tour := newTestTournament(t)

	require.NoError(t, addPlayer(t, tour, "Anna"))
	assert.Error(t, addPlayer(t, tour, "Anna"))
}

func TestAddPlayerRejectsEmptyName(t *testing.T) {
	tour := newTestTournament(t)
	assert.Error(t, addPlayer(t, tour, "   "))
}

func TestRenamePlayer(t *testing.T) {
	tour := newTestTournament(t)
	addPlayers(t, tour, "Anna", "Bo")
	snap := tour.GetState()

	err := send(t, tour, func(resp chan error) Command {
		return RenamePlayer{PlayerID: snap.Roster[0].ID, Name: "Annika", Response: resp}
	})
	require.NoError(t, err)
	assert.Equal(t, "Annika", tour.GetState().Roster[0].Name)

	// Renaming onto another player's name is rejected.
	err = send(t, tour, func(resp chan error) Command {
		return RenamePlayer{PlayerID: snap.Roster[0].ID, Name: "Bo", Response: resp}
	})
	assert.Error(t, err)
}

func TestRemovePlayer(t *testing.T) {
	tour := newTestTournament(t)
	addPlayers(t, tour, "Anna", "Bo")
	snap := tour.GetState()

	err := send(t, tour, func(resp chan error) Command {
		return RemovePlayer{PlayerID: snap.Roster[1].ID, Response: resp}
	})
	require.NoError(t, err)
	assert.Len(t, tour.GetState().Roster, 1)

	err = send(t, tour, func(resp chan error) Command {
		return RemovePlayer{PlayerID: "missing", Response: resp}
	})
	assert.Error(t, err)
}

func TestRemovePlayerWithHistoryRejected(t *testing.T) {
	tour := newTestTournament(t)
	addPlayers(t, tour, "Anna", "Bo", "Carl", "Dina")

	require.NoError(t, generate(t, tour))
	saveAll(t, tour)

	snap := tour.GetState()
	err := send(t, tour, func(resp chan error) Command {
		return RemovePlayer{PlayerID: snap.Roster[0].ID, Response: resp}
	})
	assert.Error(t, err)
}

func TestGenerateRoundNeedsFourPlayers(t *testing.T) {
	tour := newTestTournament(t)
	addPlayers(t, tour, "Anna", "Bo", "Carl")
	assert.Error(t, generate(t, tour))
}

func TestGenerateAndSaveRound(t *testing.T) {
	tour := newTestTournament(t)
	addPlayers(t, tour, "Anna", "Bo", "Carl", "Dina")

	require.NoError(t, generate(t, tour))
	snap := tour.GetState()
	require.NotNil(t, snap.Pending)
	require.Len(t, snap.Pending.Matches, 1)
	assert.Empty(t, snap.Pending.Bench)

	saveAll(t, tour)

	snap = tour.GetState()
	assert.Nil(t, snap.Pending)
	require.Len(t, snap.History, 1)
	assert.Equal(t, scheduler.Score{TeamA: 21, TeamB: 15}, snap.History[0].Scores[1])
}

func TestSaveRoundWithoutPending(t *testing.T) {
	tour := newTestTournament(t)
	err := saveWithScore(t, tour, map[int]scheduler.Score{1: {TeamA: 21, TeamB: 15}})
	assert.Error(t, err)
}

func TestSaveRoundScoreValidation(t *testing.T) {
	tour := newTestTournament(t)
	addPlayers(t, tour, "Anna", "Bo", "Carl", "Dina")
	require.NoError(t, generate(t, tour))

	// Missing score for court 1.
	assert.Error(t, saveWithScore(t, tour, map[int]scheduler.Score{}))

	// Score for a court that does not exist.
	assert.Error(t, saveWithScore(t, tour, map[int]scheduler.Score{
		1: {TeamA: 21, TeamB: 15},
		2: {TeamA: 21, TeamB: 15},
	}))

	// Pending round survives failed saves.
	require.NotNil(t, tour.GetState().Pending)
}

func TestDeleteLastRound(t *testing.T) {
	tour := newTestTournament(t)

	err := send(t, tour, func(resp chan error) Command {
		return DeleteLastRound{Response: resp}
	})
	assert.Error(t, err, "empty history")

	addPlayers(t, tour, "Anna", "Bo", "Carl", "Dina")
	require.NoError(t, generate(t, tour))
	saveAll(t, tour)
	require.NoError(t, generate(t, tour))
	saveAll(t, tour)
	require.Len(t, tour.GetState().History, 2)

	err = send(t, tour, func(resp chan error) Command {
		return DeleteLastRound{Response: resp}
	})
	require.NoError(t, err)
	assert.Len(t, tour.GetState().History, 1)
}

func TestSetCourts(t *testing.T) {
	tour := newTestTournament(t)

	err := send(t, tour, func(resp chan error) Command {
		return SetCourts{Courts: 0, Response: resp}
	})
	assert.Error(t, err)

	err = send(t, tour, func(resp chan error) Command {
		return SetCourts{Courts: 3, Response: resp}
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tour.GetState().Courts)
}

func TestSeed(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	tour := New(log, rand.New(rand.NewSource(1)))

	roster := []scheduler.Player{
		{ID: "p1", Name: "Anna"}, {ID: "p2", Name: "Bo"},
		{ID: "p3", Name: "Carl"}, {ID: "p4", Name: "Dina"},
	}
	history := []scheduler.Round{
		{
			Matches: []scheduler.Match{{
				Court: 1,
				TeamA: [2]scheduler.Player{roster[0], roster[1]},
				TeamB: [2]scheduler.Player{roster[2], roster[3]},
			}},
			Scores: map[int]scheduler.Score{1: {TeamA: 21, TeamB: 10}},
		},
	}
	tour.Seed(roster, history, 2)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go tour.Run(ctx)

	snap := tour.GetState()
	assert.Len(t, snap.Roster, 4)
	assert.Len(t, snap.History, 1)
	assert.Equal(t, 2, snap.Courts)
}

func TestEventsEmitted(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	tour := New(log, rand.New(rand.NewSource(1)))
	events := tour.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go tour.Run(ctx)

	resp := make(chan error, 1)
	tour.Send(AddPlayer{Name: "Anna", Response: resp})
	require.NoError(t, <-resp)

	select {
	case e := <-events:
		added, ok := e.(PlayerAdded)
		require.True(t, ok, "expected PlayerAdded, got %T", e)
		assert.Equal(t, "Anna", added.Player.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}
