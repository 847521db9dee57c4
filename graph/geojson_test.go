package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineFeatureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {"id": 0}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 0]}, "properties": {"id": 1}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [2, 0]}, "properties": {"id": 2}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 0]]},
     "properties": {"from": 0, "to": 1, "length": 100.0, "highway": "residential", "surface": "asphalt", "oneway": true}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[1, 0], [2, 0]]},
     "properties": {"from": 1, "to": 2, "length": 50.0, "travel_time": 12.5}}
  ]
}`

func TestLoadGeoJSONBuildsGraph(t *testing.T) {
	g, err := LoadGeoJSON([]byte(lineFeatureCollection))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, []int{1}, g.NeighborIDs(0))

	edges := g.Edges(0)
	require.Len(t, edges, 1)
	assert.Equal(t, 100.0, edges[0].Length)
	require.NotNil(t, edges[0].Highway)
	assert.Equal(t, "residential", *edges[0].Highway)
	require.NotNil(t, edges[0].Oneway)
	assert.True(t, *edges[0].Oneway)

	edges1 := g.Edges(1)
	require.Len(t, edges1, 1)
	require.NotNil(t, edges1[0].TravelTime)
	assert.Equal(t, 12.5, *edges1[0].TravelTime)
}

func TestLoadGeoJSONRejectsEmptyCollection(t *testing.T) {
	_, err := LoadGeoJSON([]byte(`{"type": "FeatureCollection", "features": []}`))
	assert.ErrorIs(t, err, ErrEmptyGraph)
}
