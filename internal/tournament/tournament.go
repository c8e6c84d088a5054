package tournament

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/edvart/padel-americano/internal/scheduler"
)

// Tournament owns all mutable state and processes commands sequentially, so
// generate/save/delete can never interleave. All scheduling math is delegated
// to the scheduler package.
type Tournament struct {
	commands    chan Command
	events      chan Event
	subscribers []chan Event
	state       *State
	rnd         *rand.Rand
	log         *logrus.Logger
}

// New creates a new Tournament. rnd seeds the scheduler's tie-breaking; pass
// nil outside of tests.
func New(log *logrus.Logger, rnd *rand.Rand) *Tournament {
	return &Tournament{
		commands: make(chan Command, 100),
		events:   make(chan Event, 100),
		state:    NewState(),
		rnd:      rnd,
		log:      log,
	}
}

// Seed loads persisted state. Must be called before Run.
func (t *Tournament) Seed(roster []scheduler.Player, history []scheduler.Round, courts int) {
	t.state.Roster = append([]scheduler.Player{}, roster...)
	t.state.History = append([]scheduler.Round{}, history...)
	if courts >= 1 {
		t.state.Courts = courts
	}
}

// Send submits a command to the tournament.
func (t *Tournament) Send(cmd Command) {
	t.commands <- cmd
}

// Events returns the main event channel for consumers.
func (t *Tournament) Events() <-chan Event {
	return t.events
}

// Subscribe creates a new event channel that receives all emitted events.
// Must be called before Run.
func (t *Tournament) Subscribe() <-chan Event {
	ch := make(chan Event, 100)
	t.subscribers = append(t.subscribers, ch)
	return ch
}

// Run starts the command loop. It blocks until ctx is cancelled.
func (t *Tournament) Run(ctx context.Context) {
	t.log.Info("Tournament coordinator started")
	for {
		select {
		case <-ctx.Done():
			t.log.Info("Tournament coordinator shutting down")
			return
		case cmd := <-t.commands:
			t.handleCommand(cmd)
		}
	}
}

func (t *Tournament) emit(e Event) {
	select {
	case t.events <- e:
	default:
		t.log.Warn("Main event channel full, dropping event")
	}

	for _, ch := range t.subscribers {
		select {
		case ch <- e:
		default:
			t.log.Warn("Subscriber event channel full, dropping event")
		}
	}
}

func (t *Tournament) handleCommand(cmd Command) {
	switch cmd := cmd.(type) {
	case AddPlayer:
		cmd.Response <- t.handleAddPlayer(cmd)
	case RenamePlayer:
		cmd.Response <- t.handleRenamePlayer(cmd)
	case RemovePlayer:
		cmd.Response <- t.handleRemovePlayer(cmd)
	case SetCourts:
		cmd.Response <- t.handleSetCourts(cmd)
	case GenerateRound:
		cmd.Response <- t.handleGenerateRound(cmd)
	case SaveRound:
		cmd.Response <- t.handleSaveRound(cmd)
	case DeleteLastRound:
		cmd.Response <- t.handleDeleteLastRound(cmd)
	case getStateCmd:
		cmd.Response <- t.state.snapshot()
	}
}

func (t *Tournament) handleAddPlayer(cmd AddPlayer) error {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return errors.New("player name required")
	}
	if t.state.HasPlayerName(name) {
		return fmt.Errorf("player %q already exists", name)
	}

	player := scheduler.Player{ID: uuid.New().String(), Name: name}
	t.state.Roster = append(t.state.Roster, player)
	t.log.WithFields(logrus.Fields{"player": player.Name, "roster": len(t.state.Roster)}).Info("Player added")

	t.emit(PlayerAdded{Player: player})
	return nil
}

func (t *Tournament) handleRenamePlayer(cmd RenamePlayer) error {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return errors.New("player name required")
	}

	player := t.state.FindPlayer(cmd.PlayerID)
	if player == nil {
		return errors.New("player not found")
	}
	if player.Name != name && t.state.HasPlayerName(name) {
		return fmt.Errorf("player %q already exists", name)
	}

	player.Name = name
	t.log.WithField("player", player.Name).Info("Player renamed")

	t.emit(PlayerRenamed{Player: *player})
	return nil
}

func (t *Tournament) handleRemovePlayer(cmd RemovePlayer) error {
	player := t.state.FindPlayer(cmd.PlayerID)
	if player == nil {
		return errors.New("player not found")
	}
	if t.state.PlayerInHistory(cmd.PlayerID) {
		return errors.New("player has recorded rounds and cannot be removed")
	}
	if t.state.PlayerInPending(cmd.PlayerID) {
		return errors.New("player is part of the current round")
	}

	name := player.Name
	t.state.RemoveFromRoster(cmd.PlayerID)
	t.log.WithFields(logrus.Fields{"player": name, "roster": len(t.state.Roster)}).Info("Player removed")

	t.emit(PlayerRemoved{PlayerID: cmd.PlayerID})
	return nil
}

func (t *Tournament) handleSetCourts(cmd SetCourts) error {
	if cmd.Courts < 1 {
		return errors.New("at least one court required")
	}

	t.state.Courts = cmd.Courts
	t.log.WithField("courts", cmd.Courts).Info("Court count updated")

	t.emit(CourtsChanged{Courts: cmd.Courts})
	return nil
}

func (t *Tournament) handleGenerateRound(cmd GenerateRound) error {
	if len(t.state.Roster) < 4 {
		return errors.New("at least 4 players required to generate a round")
	}

	plan := scheduler.GenerateFairRound(t.state.Roster, t.state.Courts, t.state.History, t.rnd)
	t.state.Pending = &plan
	t.log.WithFields(logrus.Fields{
		"matches": len(plan.Matches),
		"bench":   len(plan.Bench),
	}).Info("Round generated")

	t.emit(RoundGenerated{Plan: plan})
	return nil
}

func (t *Tournament) handleSaveRound(cmd SaveRound) error {
	pending := t.state.Pending
	if pending == nil {
		return errors.New("no generated round to save")
	}

	for _, m := range pending.Matches {
		if _, ok := cmd.Scores[m.Court]; !ok {
			return fmt.Errorf("missing score for court %d", m.Court)
		}
	}
	if len(cmd.Scores) != len(pending.Matches) {
		return errors.New("scores given for unknown courts")
	}

	scores := make(map[int]scheduler.Score, len(cmd.Scores))
	for court, score := range cmd.Scores {
		scores[court] = score
	}

	round := scheduler.Round{
		Matches: append([]scheduler.Match(nil), pending.Matches...),
		Scores:  scores,
	}
	t.state.History = append(t.state.History, round)
	t.state.Pending = nil

	seq := len(t.state.History)
	t.log.WithField("round", seq).Info("Round saved")

	t.emit(RoundSaved{Seq: seq, Round: round})
	return nil
}

func (t *Tournament) handleDeleteLastRound(cmd DeleteLastRound) error {
	if len(t.state.History) == 0 {
		return errors.New("no rounds to delete")
	}

	seq := len(t.state.History)
	t.state.History = t.state.History[:seq-1]
	// The pending round was generated against the old history; discard it so
	// the next generation uses fresh counters.
	t.state.Pending = nil
	t.log.WithField("round", seq).Info("Round deleted")

	t.emit(RoundDeleted{Seq: seq})
	return nil
}

// GetState returns a copy of the current state.
func (t *Tournament) GetState() Snapshot {
	resp := make(chan Snapshot, 1)
	t.commands <- getStateCmd{Response: resp}
	return <-resp
}
