package geoexport

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/routewise/navmdp/graph"
)

// Path renders history (a navenv.Info.Path / mask-wrapped episode's
// path_history) as a GeoJSON LineString Feature over g's node
// coordinates. Properties carry the node ID sequence and the episode's
// total travel cost, when known, so a consumer can correlate the
// geometry back to the step trace without re-deriving it.
func Path(g *graph.Graph, history []int, totalTravelCost float64) (*geojson.Feature, error) {
	if len(history) < 2 {
		return nil, ErrEmptyPath
	}

	coords := make([][]float64, len(history))
	for i, id := range history {
		node, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("geoexport: Path: %w", ErrNodeOutOfRange)
		}
		coords[i] = []float64{node.X, node.Y}
	}

	feature := geojson.NewLineStringFeature(coords)
	feature.SetProperty("node_ids", append([]int(nil), history...))
	feature.SetProperty("total_travel_cost", totalTravelCost)
	feature.SetProperty("step_count", len(history)-1)
	return feature, nil
}

// PathCollection wraps one or more rendered paths (e.g. every worker's
// episode from an envpool.Pool run) into a single FeatureCollection,
// suited to loading into a single GIS layer.
func PathCollection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		if f != nil {
			fc.AddFeature(f)
		}
	}
	return fc
}
