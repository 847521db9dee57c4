package embed

import "github.com/routewise/navmdp/graph"

// edgeFeature holds an edge's resolved and range-normalized road
// attributes, keyed by edge ID in normalizeEdgeFeatures' result.
type edgeFeature struct {
	length         float64
	maxspeedNorm   float64
	lanesNorm      float64
	highwayCode    float64
	surfaceScore   float64
	onewayFlag     float64
	travelTime     float64
	travelTimeNorm float64
}

// normalizeEdgeFeatures resolves every edge's road attributes and
// range-normalizes length, maxspeed, lanes, and travel time against
// the graph-wide maximum of each, in two passes: collect maxima,
// then normalize.
func normalizeEdgeFeatures(g *graph.Graph) map[int]edgeFeature {
	var maxLength, maxMaxspeed, maxLanes, maxTravelTime float64 = 1, 1, 1, 1

	all := allEdges(g)
	for _, e := range all {
		if e.Length > maxLength {
			maxLength = e.Length
		}
		if e.Maxspeed != nil && *e.Maxspeed > maxMaxspeed {
			maxMaxspeed = *e.Maxspeed
		}
		if e.Lanes != nil && *e.Lanes > maxLanes {
			maxLanes = *e.Lanes
		}
		if tt := e.TravelTimeSeconds(); tt > maxTravelTime {
			maxTravelTime = tt
		}
	}

	out := make(map[int]edgeFeature, len(all))
	for _, e := range all {
		maxspeedNorm := 0.0
		if e.Maxspeed != nil {
			maxspeedNorm = *e.Maxspeed / maxMaxspeed
		}
		lanesNorm := 0.0
		if e.Lanes != nil {
			lanesNorm = *e.Lanes / maxLanes
		}
		tt := e.TravelTimeSeconds()
		out[e.ID] = edgeFeature{
			length:         e.Length,
			maxspeedNorm:   maxspeedNorm,
			lanesNorm:      lanesNorm,
			highwayCode:    highwayCode(e),
			surfaceScore:   surfaceScore(e),
			onewayFlag:     onewayFlag(e),
			travelTime:     tt,
			travelTimeNorm: tt / maxTravelTime,
		}
	}
	return out
}

// allEdges collects every edge in the graph, in node-then-insertion
// order.
func allEdges(g *graph.Graph) []graph.Edge {
	var all []graph.Edge
	for u := 0; u < g.NumNodes(); u++ {
		all = append(all, g.Edges(u)...)
	}
	return all
}
