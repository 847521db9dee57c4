package graph

import (
	"fmt"
	"math"

	geojson "github.com/paulmach/go.geojson"
)

// LoadGeoJSON builds a Graph from a FeatureCollection of the shape the
// upstream graph-download pipeline emits: one Point feature per node,
// carrying an integer "id" property and the node's coordinates, and
// one LineString feature per directed edge, carrying "from"/"to" node
// ids plus the road attributes consumed elsewhere in this module
// (length, travel_time, speed_kph, maxspeed, lanes, highway, surface,
// oneway). Only the LineString's endpoints are read; intermediate
// vertices are geometry detail this module has no use for.
//
// LoadGeoJSON is the in-module analogue of the relabeled-graph
// artifact the out-of-scope download/cache pipeline produces; it
// exists so a precomputed graph can be handed to this module without
// a bespoke binary format.
func LoadGeoJSON(data []byte) (*Graph, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("graph: LoadGeoJSON: %w", err)
	}

	maxID := -1
	for _, f := range fc.Features {
		if f.Geometry == nil || !f.Geometry.IsPoint() {
			continue
		}
		id, ok := intProperty(f.Properties, "id")
		if !ok {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	if maxID < 0 {
		return nil, fmt.Errorf("graph: LoadGeoJSON: %w", ErrEmptyGraph)
	}

	b, err := NewBuilder(maxID + 1)
	if err != nil {
		return nil, fmt.Errorf("graph: LoadGeoJSON: %w", err)
	}

	for _, f := range fc.Features {
		if f.Geometry == nil || !f.Geometry.IsPoint() {
			continue
		}
		id, ok := intProperty(f.Properties, "id")
		if !ok {
			continue
		}
		coords := f.Geometry.Point
		if len(coords) < 2 {
			continue
		}
		if err := b.SetCoords(id, coords[0], coords[1]); err != nil {
			return nil, fmt.Errorf("graph: LoadGeoJSON: %w", err)
		}
	}

	for _, f := range fc.Features {
		if f.Geometry == nil || !f.Geometry.IsLineString() {
			continue
		}
		from, ok1 := intProperty(f.Properties, "from")
		to, ok2 := intProperty(f.Properties, "to")
		if !ok1 || !ok2 {
			continue
		}
		length, ok := floatProperty(f.Properties, "length")
		if !ok {
			length = lineStringLength(f.Geometry.LineString)
		}

		var opts []EdgeOption
		if v, ok := floatProperty(f.Properties, "travel_time"); ok {
			opts = append(opts, WithTravelTime(v))
		}
		if v, ok := floatProperty(f.Properties, "speed_kph"); ok {
			opts = append(opts, WithSpeedKPH(v))
		}
		if v, ok := floatProperty(f.Properties, "maxspeed"); ok {
			opts = append(opts, WithMaxspeed(v))
		} else if s, ok := stringProperty(f.Properties, "maxspeed"); ok {
			if v, ok := ParseMaxspeed(s); ok {
				opts = append(opts, WithMaxspeed(v))
			}
		}
		if v, ok := floatProperty(f.Properties, "lanes"); ok {
			opts = append(opts, WithLanes(v))
		}
		if v, ok := stringProperty(f.Properties, "highway"); ok {
			opts = append(opts, WithHighway(v))
		}
		if v, ok := stringProperty(f.Properties, "surface"); ok {
			opts = append(opts, WithSurface(v))
		}
		if v, ok := boolProperty(f.Properties, "oneway"); ok {
			opts = append(opts, WithOneway(v))
		}

		if _, err := b.AddEdge(from, to, length, opts...); err != nil {
			return nil, fmt.Errorf("graph: LoadGeoJSON: %w", err)
		}
	}

	return b.Build()
}

func lineStringLength(points [][]float64) float64 {
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(points); i++ {
		dx := points[i][0] - points[i-1][0]
		dy := points[i][1] - points[i-1][1]
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}

func intProperty(props map[string]interface{}, key string) (int, bool) {
	v, ok := props[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

func floatProperty(props map[string]interface{}, key string) (float64, bool) {
	v, ok := props[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringProperty(props map[string]interface{}, key string) (string, bool) {
	v, ok := props[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func boolProperty(props map[string]interface{}, key string) (bool, bool) {
	v, ok := props[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
