package tournament

import "github.com/edvart/padel-americano/internal/scheduler"

// Event is the interface for all events emitted by the tournament actor.
type Event interface {
	event() // marker method
}

type PlayerAdded struct {
	Player scheduler.Player
}

func (PlayerAdded) event() {}

type PlayerRenamed struct {
	Player scheduler.Player
}

func (PlayerRenamed) event() {}

type PlayerRemoved struct {
	PlayerID string
}

func (PlayerRemoved) event() {}

type CourtsChanged struct {
	Courts int
}

func (CourtsChanged) event() {}

// RoundGenerated carries a freshly generated pending round.
type RoundGenerated struct {
	Plan scheduler.Plan
}

func (RoundGenerated) event() {}

// RoundSaved carries a completed round. Seq is the 1-based position of the
// round in history.
type RoundSaved struct {
	Seq   int
	Round scheduler.Round
}

func (RoundSaved) event() {}

type RoundDeleted struct {
	Seq int
}

func (RoundDeleted) event() {}
