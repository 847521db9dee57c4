package distance

import "errors"

var (
	// ErrNodeOutOfRange indicates a node ID outside the graph's range
	// was passed to Distance or WarmBatch.
	ErrNodeOutOfRange = errors.New("distance: node ID out of range")

	// ErrNegativeWeight indicates the graph carries an edge with a
	// negative resolved weight under the oracle's weight scheme;
	// Dijkstra and A* both require non-negative weights.
	ErrNegativeWeight = errors.New("distance: negative edge weight")

	// ErrUnknownAlgorithm indicates an Algorithm value other than the
	// ones this package defines was supplied to NewOracle.
	ErrUnknownAlgorithm = errors.New("distance: unknown search algorithm")

	// ErrClosed indicates an operation was attempted on a SQLiteTable
	// after Close.
	ErrClosed = errors.New("distance: table is closed")
)
