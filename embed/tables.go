package embed

import (
	"strings"

	"github.com/routewise/navmdp/graph"
)

// highwayHierarchy maps a highway classification to an ordinal code,
// higher meaning a more significant road. Unknown classes resolve to 0
// via the map's zero value.
var highwayHierarchy = map[string]float64{
	"motorway": 6, "motorway_link": 5,
	"trunk": 5, "trunk_link": 4,
	"primary": 4, "primary_link": 3,
	"secondary": 3, "secondary_link": 2,
	"tertiary": 2, "tertiary_link": 1,
	"residential": 1, "living_street": 1,
	"unclassified": 0, "service": 0,
}

// maxHighwayCode normalizes highwayCode's raw ordinal to [0, 1].
const maxHighwayCode = 6.0

// surfaceScores maps a surface type to a quality score in [0, 1],
// higher meaning better travel quality. Unknown or absent surfaces
// default to 0.5, a medium-quality assumption.
var surfaceScores = map[string]float64{
	"paved": 1.0, "asphalt": 1.0, "concrete": 1.0,
	"paving_stones": 0.9, "cobblestone": 0.8,
	"compacted": 0.7, "gravel": 0.6,
	"dirt": 0.4, "sand": 0.3, "unpaved": 0.5,
	"grass": 0.2, "ground": 0.3,
}

const defaultSurfaceScore = 0.5

func highwayCode(e graph.Edge) float64 {
	if e.Highway == nil {
		return 0
	}
	return highwayHierarchy[strings.ToLower(*e.Highway)] / maxHighwayCode
}

func surfaceScore(e graph.Edge) float64 {
	if e.Surface == nil {
		return defaultSurfaceScore
	}
	if v, ok := surfaceScores[strings.ToLower(*e.Surface)]; ok {
		return v
	}
	return defaultSurfaceScore
}

func onewayFlag(e graph.Edge) float64 {
	if e.Oneway != nil && *e.Oneway {
		return 1
	}
	return 0
}
