package geoexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routewise/navmdp/graph"
)

func lineGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	b, err := graph.NewBuilder(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, b.SetCoords(i, float64(i), 0))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestPathRendersLineString(t *testing.T) {
	g := lineGraph(t, 5)
	feature, err := Path(g, []int{0, 1, 2, 3}, 300.0)
	require.NoError(t, err)

	assert.True(t, feature.Geometry.IsLineString())
	require.Len(t, feature.Geometry.LineString, 4)
	assert.Equal(t, []float64{0, 0}, feature.Geometry.LineString[0])
	assert.Equal(t, []float64{3, 0}, feature.Geometry.LineString[3])
	assert.Equal(t, 300.0, feature.Properties["total_travel_cost"])
	assert.Equal(t, 3, feature.Properties["step_count"])
}

func TestPathRejectsShortHistory(t *testing.T) {
	g := lineGraph(t, 5)
	_, err := Path(g, []int{0}, 0)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestPathRejectsOutOfRangeNode(t *testing.T) {
	g := lineGraph(t, 3)
	_, err := Path(g, []int{0, 99}, 0)
	assert.ErrorIs(t, err, ErrNodeOutOfRange)
}

func TestPathCollectionSkipsNilFeatures(t *testing.T) {
	g := lineGraph(t, 3)
	f, err := Path(g, []int{0, 1}, 10)
	require.NoError(t, err)

	fc := PathCollection(f, nil)
	assert.Len(t, fc.Features, 1)
}
