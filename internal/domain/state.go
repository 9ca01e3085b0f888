package domain

import "fmt"

// State is the state filter or lifecycle state of an issue.
type State string

const (
	StateOpen   State = "open"   // Issue is open
	StateClosed State = "closed" // Issue is closed
	StateAll    State = "all"    // Filter only: open and closed
)

// DefaultState is used when no state filter is given.
const DefaultState = StateOpen

// stateAliases maps every accepted spelling to its state.
var stateAliases = map[string]State{
	"o":      StateOpen,
	"open":   StateOpen,
	"c":      StateClosed,
	"closed": StateClosed,
	"a":      StateAll,
	"all":    StateAll,
}

// ParseState parses a state filter, expanding the single-letter aliases o, c and a.
func ParseState(s string) (State, error) {
	if s == "" {
		return DefaultState, nil
	}
	state, ok := stateAliases[s]
	if !ok {
		return "", UsageError(fmt.Sprintf("invalid state %q (choose from o, open, c, closed, a, all)", s))
	}
	return state, nil
}

// Expand returns the concrete states covered by this filter, in listing order.
func (s State) Expand() []State {
	if s == StateAll {
		return []State{StateOpen, StateClosed}
	}
	return []State{s}
}

// IsConcrete reports whether s is a state an issue can be in (open or closed).
func (s State) IsConcrete() bool {
	return s == StateOpen || s == StateClosed
}

// String returns the state name.
func (s State) String() string {
	return string(s)
}
