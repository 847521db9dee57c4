package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuilder(t *testing.T, n int) *Builder {
	t.Helper()
	b, err := NewBuilder(n)
	require.NoError(t, err)
	return b
}

func TestNewBuilderValidatesCount(t *testing.T) {
	cases := []struct {
		name string
		n    int
		ok   bool
	}{
		{"zero", 0, false},
		{"negative", -3, false},
		{"positive", 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBuilder(tc.n)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidNodeCount)
			}
		})
	}
}

func TestBuildRequiresCoordinates(t *testing.T) {
	b := mustBuilder(t, 2)
	require.NoError(t, b.SetCoords(0, 0, 0))
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrMissingCoordinates)

	require.NoError(t, b.SetCoords(1, 1, 1))
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumNodes())
}

func TestAddEdgeRejectsOutOfRangeNodes(t *testing.T) {
	b := mustBuilder(t, 2)
	_, err := b.AddEdge(0, 5, 1.0)
	assert.ErrorIs(t, err, ErrNodeOutOfRange)
}

func TestAddEdgeRejectsNegativeLength(t *testing.T) {
	b := mustBuilder(t, 2)
	_, err := b.AddEdge(0, 1, -1.0)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestNeighborOrderIsInsertionOrder(t *testing.T) {
	b := mustBuilder(t, 4)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.SetCoords(i, float64(i), 0))
	}
	_, err := b.AddEdge(0, 3, 1.0)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 1, 1.0)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 2, 1.0)
	require.NoError(t, err)

	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1, 2}, g.NeighborIDs(0))
	assert.Equal(t, 3, g.OutDegree(0))
}

func TestParallelEdgesCollapseToOneNeighborSlot(t *testing.T) {
	b := mustBuilder(t, 2)
	require.NoError(t, b.SetCoords(0, 0, 0))
	require.NoError(t, b.SetCoords(1, 1, 0))
	_, err := b.AddEdge(0, 1, 10.0)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 1, 4.0)
	require.NoError(t, err)

	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []int{1}, g.NeighborIDs(0))
	w, ok := g.MinParallelWeight(0, 1, "length")
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
}

func TestMinParallelWeightMissingEdge(t *testing.T) {
	b := mustBuilder(t, 2)
	require.NoError(t, b.SetCoords(0, 0, 0))
	require.NoError(t, b.SetCoords(1, 1, 0))
	g, err := b.Build()
	require.NoError(t, err)

	_, ok := g.MinParallelWeight(0, 1, "length")
	assert.False(t, ok)
}

func TestInDegreeCountsAllParallelEdges(t *testing.T) {
	b := mustBuilder(t, 3)
	for i := 0; i < 3; i++ {
		require.NoError(t, b.SetCoords(i, float64(i), 0))
	}
	_, err := b.AddEdge(0, 2, 1.0)
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2, 1.0)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 2, 1.0)
	require.NoError(t, err)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.InDegree(2))
	assert.Equal(t, 1, g.OutDegree(0))
}

func TestTravelTimeSecondsPrecedence(t *testing.T) {
	cases := []struct {
		name string
		edge Edge
		want float64
	}{
		{
			name: "explicit travel time wins",
			edge: Edge{Length: 100, TravelTime: f64p(42)},
			want: 42,
		},
		{
			name: "falls back to speed kph",
			edge: Edge{Length: 1000, SpeedKPH: f64p(36)},
			want: 100, // 1000m / (36kph -> 10 m/s)
		},
		{
			name: "falls back to maxspeed",
			edge: Edge{Length: 1000, Maxspeed: f64p(36)},
			want: 100,
		},
		{
			name: "falls back to default 50kph",
			edge: Edge{Length: 1000},
			want: 1000 / (50.0 * 1000.0 / 3600.0),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.edge.TravelTimeSeconds(), 1e-9)
		})
	}
}

func TestWeightForUnknownNameDefaultsToUniformHop(t *testing.T) {
	e := Edge{Length: 50}
	assert.Equal(t, 1.0, e.WeightFor("does_not_exist"))
}

func f64p(v float64) *float64 { return &v }
