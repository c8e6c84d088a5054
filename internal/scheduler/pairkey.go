package scheduler

// pairSep never occurs inside a player ID (IDs are UUIDs).
const pairSep = "|"

// PairKey returns a canonical key for the unordered pair {a, b}:
// PairKey(a, b) == PairKey(b, a). Calling it with a == b is a caller bug;
// a player is never paired with themself.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + pairSep + b
}
