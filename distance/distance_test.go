package distance

import (
	"context"
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
	for i := 0; i+1 < n; i++ {
		_, err := b.AddEdge(i, i+1, 1.0)
		require.NoError(t, err)
		_, err = b.AddEdge(i+1, i, 1.0)
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestOracleDistanceOnLineGraph(t *testing.T) {
	g := lineGraph(t, 5)
	o, err := NewOracle(g)
	require.NoError(t, err)

	d, err := o.Distance(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	d, err = o.Distance(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestOracleDistanceCachesResult(t *testing.T) {
	g := lineGraph(t, 3)
	o, err := NewOracle(g)
	require.NoError(t, err)

	_, err = o.Distance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, o.CacheLen())
}

func TestOracleDistanceUsesTableBeforeSearch(t *testing.T) {
	g := lineGraph(t, 3)
	table := NewMemoryTable(map[int]map[int]float64{
		0: {2: 99.0},
	})
	o, err := NewOracle(g, WithTable(table))
	require.NoError(t, err)

	d, err := o.Distance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 99.0, d)
}

func TestOracleDistanceUnreachableResolvesToSentinel(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.SetCoords(0, 0, 0))
	require.NoError(t, b.SetCoords(1, 1, 0))
	g, err := b.Build()
	require.NoError(t, err)

	o, err := NewOracle(g)
	require.NoError(t, err)
	d, err := o.Distance(0, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(g.NumNodes()), d)
}

func TestOracleDistanceRejectsOutOfRangeNode(t *testing.T) {
	g := lineGraph(t, 2)
	o, err := NewOracle(g)
	require.NoError(t, err)
	_, err = o.Distance(0, 99)
	assert.ErrorIs(t, err, ErrNodeOutOfRange)
}

func TestOracleWithAStarMatchesDijkstra(t *testing.T) {
	g := lineGraph(t, 6)
	dOracle, err := NewOracle(g, WithAlgorithm(AlgorithmDijkstra))
	require.NoError(t, err)
	aOracle, err := NewOracle(g, WithAlgorithm(AlgorithmAStar))
	require.NoError(t, err)

	dd, err := dOracle.Distance(0, 5)
	require.NoError(t, err)
	ad, err := aOracle.Distance(0, 5)
	require.NoError(t, err)
	assert.Equal(t, dd, ad)
}

func TestOracleWarmBatchPopulatesCache(t *testing.T) {
	g := lineGraph(t, 10)
	o, err := NewOracle(g)
	require.NoError(t, err)

	pairs := []Pair{{0, 1}, {0, 2}, {3, 9}, {5, 5}}
	err = o.WarmBatch(context.Background(), pairs)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, o.CacheLen(), 3) // (5,5) short-circuits before caching
}

func TestNewOracleRejectsUnknownAlgorithm(t *testing.T) {
	g := lineGraph(t, 2)
	_, err := NewOracle(g, WithAlgorithm(Algorithm(99)))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestMemoryTableSetAndLen(t *testing.T) {
	mt := NewMemoryTable(nil)
	mt.Set(1, 2, 5.0)
	mt.Set(1, 3, 6.0)
	assert.Equal(t, 2, mt.Len())
	d, ok := mt.Get(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 5.0, d)
}
