package tournament

import "github.com/edvart/padel-americano/internal/scheduler"

// DefaultCourts is used until the organizer configures a court count.
const DefaultCourts = 1

// State holds everything the tournament actor owns: the roster, the saved
// round history (oldest first) and the generated-but-unsaved round, if any.
type State struct {
	Roster  []scheduler.Player
	History []scheduler.Round
	Pending *scheduler.Plan
	Courts  int
}

func NewState() *State {
	return &State{
		Roster:  []scheduler.Player{},
		History: []scheduler.Round{},
		Courts:  DefaultCourts,
	}
}

func (s *State) FindPlayer(id string) *scheduler.Player {
	for i := range s.Roster {
		if s.Roster[i].ID == id {
			return &s.Roster[i]
		}
	}
	return nil
}

func (s *State) HasPlayerName(name string) bool {
	for _, p := range s.Roster {
		if p.Name == name {
			return true
		}
	}
	return false
}

// PlayerInHistory reports whether the player appears in any saved round.
func (s *State) PlayerInHistory(id string) bool {
	for _, round := range s.History {
		for _, m := range round.Matches {
			for _, p := range [4]scheduler.Player{m.TeamA[0], m.TeamA[1], m.TeamB[0], m.TeamB[1]} {
				if p.ID == id {
					return true
				}
			}
		}
	}
	return false
}

// PlayerInPending reports whether the player is part of the pending round's
// matches.
func (s *State) PlayerInPending(id string) bool {
	if s.Pending == nil {
		return false
	}
	for _, m := range s.Pending.Matches {
		for _, p := range [4]scheduler.Player{m.TeamA[0], m.TeamA[1], m.TeamB[0], m.TeamB[1]} {
			if p.ID == id {
				return true
			}
		}
	}
	return false
}

func (s *State) RemoveFromRoster(id string) bool {
	for i, p := range s.Roster {
		if p.ID == id {
			s.Roster = append(s.Roster[:i], s.Roster[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot is a copy of the state safe to hand to other goroutines.
type Snapshot struct {
	Roster  []scheduler.Player
	History []scheduler.Round
	Pending *scheduler.Plan
	Courts  int
}

func (s *State) snapshot() Snapshot {
	snap := Snapshot{
		Roster:  append([]scheduler.Player(nil), s.Roster...),
		History: append([]scheduler.Round(nil), s.History...),
		Courts:  s.Courts,
	}
	if s.Pending != nil {
		pending := *s.Pending
		snap.Pending = &pending
	}
	return snap
}
