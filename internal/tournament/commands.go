package tournament

import "github.com/edvart/padel-americano/internal/scheduler"

// Command is the interface for all commands sent to the tournament actor.
type Command interface {
	command() // marker method
}

// AddPlayer adds a new player to the roster.
type AddPlayer struct {
	Name     string
	Response chan error
}

func (AddPlayer) command() {}

// RenamePlayer changes a player's display name. The ID never changes.
type RenamePlayer struct {
	PlayerID string
	Name     string
	Response chan error
}

func (RenamePlayer) command() {}

// RemovePlayer removes a player from the roster. Players referenced by saved
// rounds cannot be removed; their history would become meaningless.
type RemovePlayer struct {
	PlayerID string
	Response chan error
}

func (RemovePlayer) command() {}

// SetCourts sets the number of courts to schedule on.
type SetCourts struct {
	Courts   int
	Response chan error
}

func (SetCourts) command() {}

// GenerateRound produces a new pending round from the current roster and
// history, replacing any previously generated round that was never saved.
type GenerateRound struct {
	Response chan error
}

func (GenerateRound) command() {}

// SaveRound records the final scores for the pending round and appends it to
// history. Every court of the pending round needs a score.
type SaveRound struct {
	Scores   map[int]scheduler.Score
	Response chan error
}

func (SaveRound) command() {}

// DeleteLastRound drops the most recently saved round.
type DeleteLastRound struct {
	Response chan error
}

func (DeleteLastRound) command() {}

// getStateCmd is an internal command to safely get a state snapshot.
type getStateCmd struct {
	Response chan Snapshot
}

func (getStateCmd) command() {}
