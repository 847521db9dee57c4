package graph

// Node is a point in the road network. Coordinates are in whatever
// projected or geographic unit the caller's graph source uses; the
// module treats them as opaque planar coordinates for heuristics and
// embeddings.
type Node struct {
	ID   int
	X, Y float64
}

// Edge is one directed road segment from From to To. Length is the
// only required attribute; every other field is optional and carried
// as a typed pointer so "absent" is distinguishable from "zero".
type Edge struct {
	ID       int
	From, To int
	Length   float64

	TravelTime *float64 // seconds, explicit
	SpeedKPH   *float64 // kilometers per hour
	Maxspeed   *float64 // kilometers per hour, parsed from a maxspeed tag
	Lanes      *float64

	Highway *string
	Surface *string
	Oneway  *bool
}

// defaultSpeedKPH is used by TravelTimeSeconds when an edge carries no
// speed information at all.
const defaultSpeedKPH = 50.0

// TravelTimeSeconds resolves an edge's travel time under the
// precedence rule: an explicit TravelTime wins outright; otherwise
// Length is divided by whichever speed figure is available, checked in
// order SpeedKPH, then Maxspeed, then the 50 km/h default.
func (e Edge) TravelTimeSeconds() float64 {
	if e.TravelTime != nil {
		return *e.TravelTime
	}
	speed := defaultSpeedKPH
	switch {
	case e.SpeedKPH != nil && *e.SpeedKPH > 0:
		speed = *e.SpeedKPH
	case e.Maxspeed != nil && *e.Maxspeed > 0:
		speed = *e.Maxspeed
	}
	metersPerSecond := speed * 1000.0 / 3600.0
	if metersPerSecond <= 0 {
		return e.Length
	}
	return e.Length / metersPerSecond
}

// WeightFor resolves the scalar cost of an edge for a named weighting
// scheme. "travel_time" and "length" are recognized; any other name
// falls back to a uniform hop cost of 1.0, matching the environment's
// documented weight_name fallback chain.
func (e Edge) WeightFor(name string) float64 {
	switch name {
	case "travel_time":
		return e.TravelTimeSeconds()
	case "length":
		return e.Length
	default:
		return 1.0
	}
}

// Graph is an immutable, integer-keyed directed road multigraph. Build
// it with a Builder; once Build returns, no method on Graph mutates
// state, so concurrent readers need no synchronization.
type Graph struct {
	nodes []Node
	edges []Edge

	// out[u] holds the indices into edges of every edge with From == u,
	// in construction order. This is the canonical neighbor order used
	// throughout the module (action indexing, embeddings, masking).
	out [][]int

	// inDegree[u] is the number of edges with To == u, precomputed at
	// Build time since nothing else needs a reverse adjacency list.
	inDegree []int

	// neighborIDs[u] is the de-duplicated, order-preserving list of
	// distinct destination nodes reachable from u by one edge. Parallel
	// edges to the same destination collapse to a single neighbor slot,
	// positioned at the first occurrence.
	neighborIDs [][]int

	minX, minY, maxX, maxY float64
}

// NumNodes returns the number of nodes in the graph, N. Node IDs span
// [0, N).
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the total number of directed edges, including
// parallel edges.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Bounds returns the coordinate bounding box of every node in the
// graph. Callers use this to normalize coordinates in feature vectors.
func (g *Graph) Bounds() (minX, minY, maxX, maxY float64) {
	return g.minX, g.minY, g.maxX, g.maxY
}
