package game

// State represents the lifecycle of a session
type State int

const (
	NotStarted State = iota
	Active
	// Exhausted means the deck is too small to refill the tableau.
	// Play continues on the shrinking tableau.
	Exhausted
)

var stateNames = map[State]string{
	NotStarted: "NotStarted",
	Active:     "Active",
	Exhausted:  "Exhausted",
}

func (s State) String() string {
	return stateNames[s]
}
