package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routewise/navmdp/graph"
)

func triangleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	b, err := graph.NewBuilder(3)
	require.NoError(t, err)
	coords := [][2]float64{{0, 0}, {10, 0}, {10, 10}}
	for id, c := range coords {
		require.NoError(t, b.SetCoords(id, c[0], c[1]))
	}
	highway := "primary"
	surface := "asphalt"
	_, err = b.AddEdge(0, 1, 10, graph.WithHighway(highway), graph.WithSurface(surface), graph.WithMaxspeed(50))
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2, 10)
	require.NoError(t, err)
	_, err = b.AddEdge(2, 0, 14.1)
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestBuildNodeEmbeddingsShape(t *testing.T) {
	g := triangleGraph(t)
	embeddings := BuildNodeEmbeddings(g)
	require.Len(t, embeddings, 3)
	for _, e := range embeddings {
		assert.Len(t, e, Dim)
	}
}

func TestBuildNodeEmbeddingsCoordinatesNormalized(t *testing.T) {
	g := triangleGraph(t)
	embeddings := BuildNodeEmbeddings(g)
	// node 0 is at the coordinate minimum on both axes.
	assert.InDelta(t, 0.0, embeddings[0][0], 1e-9)
	assert.InDelta(t, 0.0, embeddings[0][1], 1e-9)
	// node 2 is at the coordinate maximum on both axes.
	assert.InDelta(t, 1.0, embeddings[2][0], 1e-9)
	assert.InDelta(t, 1.0, embeddings[2][1], 1e-9)
}

func TestHighwayCodeNormalizesToUnitInterval(t *testing.T) {
	motorway := "motorway"
	e := graph.Edge{Highway: &motorway}
	assert.InDelta(t, 1.0, highwayCode(e), 1e-9)

	e2 := graph.Edge{}
	assert.Equal(t, 0.0, highwayCode(e2))
}

func TestSurfaceScoreDefaultsToMediumQuality(t *testing.T) {
	e := graph.Edge{}
	assert.Equal(t, defaultSurfaceScore, surfaceScore(e))

	gravel := "gravel"
	e2 := graph.Edge{Surface: &gravel}
	assert.Equal(t, 0.6, surfaceScore(e2))
}

func TestIntersectionDensityOfIsolatedNode(t *testing.T) {
	b, err := graph.NewBuilder(1)
	require.NoError(t, err)
	require.NoError(t, b.SetCoords(0, 0, 0))
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 0.0, intersectionDensityOf(g, 0, 2))
}
