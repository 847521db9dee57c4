package graph

import (
	"fmt"
	"math"

	"github.com/gotidy/ptr"
)

// EdgeOption configures optional road attributes on an edge added via
// Builder.AddEdge. Options are applied in the order given.
type EdgeOption func(*Edge)

// WithTravelTime sets an edge's explicit travel time in seconds,
// taking precedence over any derived figure.
func WithTravelTime(seconds float64) EdgeOption {
	return func(e *Edge) { e.TravelTime = ptr.Of(seconds) }
}

// WithSpeedKPH sets an edge's free-flow speed in kilometers per hour.
func WithSpeedKPH(kph float64) EdgeOption {
	return func(e *Edge) { e.SpeedKPH = ptr.Of(kph) }
}

// WithMaxspeed sets an edge's posted speed limit in kilometers per
// hour, as parsed from a source maxspeed tag.
func WithMaxspeed(kph float64) EdgeOption {
	return func(e *Edge) { e.Maxspeed = ptr.Of(kph) }
}

// WithLanes sets an edge's lane count.
func WithLanes(lanes float64) EdgeOption {
	return func(e *Edge) { e.Lanes = ptr.Of(lanes) }
}

// WithHighway sets an edge's highway classification (e.g. "motorway",
// "residential"), as used by the road-hierarchy ordinal table in
// package embed.
func WithHighway(class string) EdgeOption {
	return func(e *Edge) { e.Highway = ptr.Of(class) }
}

// WithSurface sets an edge's surface type (e.g. "paved", "gravel").
func WithSurface(surface string) EdgeOption {
	return func(e *Edge) { e.Surface = ptr.Of(surface) }
}

// WithOneway marks an edge as one-way (true) or bidirectional-source
// (false); the graph itself always stores directed edges, this flag is
// carried through only as a feature for the embedding builder.
func WithOneway(oneway bool) EdgeOption {
	return func(e *Edge) { e.Oneway = ptr.Of(oneway) }
}

// Builder assembles a Graph. Create one with NewBuilder, set every
// node's coordinates with SetCoords, add edges with AddEdge, and call
// Build to freeze the result.
//
// A Builder is not safe for concurrent use; graphs are constructed by
// a single goroutine before being handed to readers.
type Builder struct {
	nodes    []Node
	haveCoor []bool
	edges    []Edge
}

// NewBuilder creates a Builder for a graph with n nodes, IDs 0..n-1.
func NewBuilder(n int) (*Builder, error) {
	if n <= 0 {
		return nil, ErrInvalidNodeCount
	}
	b := &Builder{
		nodes:    make([]Node, n),
		haveCoor: make([]bool, n),
	}
	for i := range b.nodes {
		b.nodes[i].ID = i
	}
	return b, nil
}

// SetCoords assigns geographic coordinates to node id.
func (b *Builder) SetCoords(id int, x, y float64) error {
	if id < 0 || id >= len(b.nodes) {
		return fmt.Errorf("graph: SetCoords: %w", ErrNodeOutOfRange)
	}
	b.nodes[id].X = x
	b.nodes[id].Y = y
	b.haveCoor[id] = true
	return nil
}

// AddEdge adds a directed edge from -> to with the given length and
// optional road attributes, returning the new edge's ID. Parallel
// edges between the same pair of nodes are permitted.
func (b *Builder) AddEdge(from, to int, length float64, opts ...EdgeOption) (int, error) {
	if from < 0 || from >= len(b.nodes) || to < 0 || to >= len(b.nodes) {
		return 0, fmt.Errorf("graph: AddEdge: %w", ErrNodeOutOfRange)
	}
	if length < 0 || math.IsNaN(length) {
		return 0, fmt.Errorf("graph: AddEdge: %w", ErrNegativeLength)
	}
	e := Edge{
		ID:     len(b.edges),
		From:   from,
		To:     to,
		Length: length,
	}
	for _, opt := range opts {
		opt(&e)
	}
	b.edges = append(b.edges, e)
	return e.ID, nil
}

// Build validates and freezes the graph. Every node must have received
// coordinates via SetCoords; Build returns ErrMissingCoordinates
// otherwise.
func (b *Builder) Build() (*Graph, error) {
	for id, ok := range b.haveCoor {
		if !ok {
			return nil, fmt.Errorf("graph: Build: node %d: %w", id, ErrMissingCoordinates)
		}
	}

	n := len(b.nodes)
	g := &Graph{
		nodes:       append([]Node(nil), b.nodes...),
		edges:       append([]Edge(nil), b.edges...),
		out:         make([][]int, n),
		inDegree:    make([]int, n),
		neighborIDs: make([][]int, n),
	}

	seen := make([]map[int]bool, n)
	for i := range seen {
		seen[i] = make(map[int]bool)
	}

	for idx, e := range g.edges {
		g.out[e.From] = append(g.out[e.From], idx)
		g.inDegree[e.To]++
		if !seen[e.From][e.To] {
			seen[e.From][e.To] = true
			g.neighborIDs[e.From] = append(g.neighborIDs[e.From], e.To)
		}
	}

	if n > 0 {
		g.minX, g.maxX = g.nodes[0].X, g.nodes[0].X
		g.minY, g.maxY = g.nodes[0].Y, g.nodes[0].Y
		for _, node := range g.nodes[1:] {
			g.minX = math.Min(g.minX, node.X)
			g.maxX = math.Max(g.maxX, node.X)
			g.minY = math.Min(g.minY, node.Y)
			g.maxY = math.Max(g.maxY, node.Y)
		}
	}

	return g, nil
}
