package geoexport

import "errors"

var (
	// ErrEmptyPath indicates Path was called with fewer than two nodes,
	// too short to form a LineString.
	ErrEmptyPath = errors.New("geoexport: path must have at least two nodes")

	// ErrNodeOutOfRange indicates a node in the path does not exist in
	// the supplied graph.
	ErrNodeOutOfRange = errors.New("geoexport: node ID out of range")
)
