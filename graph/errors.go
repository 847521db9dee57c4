package graph

import "errors"

// Sentinel errors returned during graph construction and lookup.
var (
	// ErrInvalidNodeCount indicates NewBuilder was called with N <= 0.
	ErrInvalidNodeCount = errors.New("graph: node count must be positive")

	// ErrNodeOutOfRange indicates a node ID outside [0, N) was referenced.
	ErrNodeOutOfRange = errors.New("graph: node ID out of range")

	// ErrMissingCoordinates indicates Build was called before every node
	// received coordinates via SetCoords.
	ErrMissingCoordinates = errors.New("graph: node missing coordinates")

	// ErrNegativeLength indicates AddEdge received a negative Length.
	ErrNegativeLength = errors.New("graph: edge length must be non-negative")

	// ErrEmptyGraph indicates an operation requires at least one node.
	ErrEmptyGraph = errors.New("graph: graph has no nodes")
)
