package scheduler

// Player is a roster member. The ID is assigned once when the player is added
// and never reused; scheduling only ever looks at IDs, never names.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is one court's doubles pairing. Court numbers are 1-based and unique
// within a round. Team order within a pair carries no meaning.
type Match struct {
	Court int       `json:"court"`
	TeamA [2]Player `json:"teamA"`
	TeamB [2]Player `json:"teamB"`
}

// Score is the final score of one match.
type Score struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

// Round is an immutable record of a completed round: the matches played and
// the final score per court. Rounds are only ever appended to history or
// dropped wholesale.
type Round struct {
	Matches []Match       `json:"matches"`
	Scores  map[int]Score `json:"scores"`
}

// Stats is a transient snapshot of counters derived from history. Keys of
// PartnerCount and OpponentCount are pair keys (see PairKey).
type Stats struct {
	GamesPlayed   map[string]int
	PartnerCount  map[string]int
	OpponentCount map[string]int
}

// Coverage reports how much of the partnership space has been visited.
type Coverage struct {
	TotalPairs   int  `json:"totalPairs"`
	SeenPairs    int  `json:"seenPairs"`
	MissingPairs int  `json:"missingPairs"`
	Percent      int  `json:"percent"`
	Complete     bool `json:"complete"`
}

// Plan is the output of GenerateFairRound: the matches for the next round and
// the players sitting out.
type Plan struct {
	Matches []Match  `json:"matches"`
	Bench   []Player `json:"bench"`
}
