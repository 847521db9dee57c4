package navenv

import "errors"

var (
	// ErrNodeOutOfRange indicates a start, waypoint, or destination
	// node ID outside the graph's range.
	ErrNodeOutOfRange = errors.New("navenv: node ID out of range")

	// ErrActionOutOfRange indicates Step was called with an action
	// index outside [0, len(NeighborIDs(current))), which may be
	// narrower than [0, ActionCount()).
	ErrActionOutOfRange = errors.New("navenv: action out of range")

	// ErrNotReset indicates Step was called before Reset.
	ErrNotReset = errors.New("navenv: Step called before Reset")
)
