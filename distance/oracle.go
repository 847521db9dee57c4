package distance

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/routewise/navmdp/graph"
)

const defaultCacheCapacity = 50_000

// Pair is a source/destination node pair, used by WarmBatch.
type Pair struct {
	U, V int
}

// OracleOption configures an Oracle at construction time.
type OracleOption func(*Oracle)

// WithTable supplies a precomputed (possibly partial) distance Table,
// consulted before falling back to on-demand search.
func WithTable(t Table) OracleOption {
	return func(o *Oracle) { o.table = t }
}

// WithCacheCapacity overrides the LRU's default capacity of 50,000
// entries.
func WithCacheCapacity(capacity int) OracleOption {
	return func(o *Oracle) { o.cache = newLRU(capacity) }
}

// WithAlgorithm selects the on-demand search algorithm; the default is
// AlgorithmDijkstra.
func WithAlgorithm(alg Algorithm) OracleOption {
	return func(o *Oracle) { o.algorithm = alg }
}

// WithWeightName selects which edge attribute distances are computed
// over ("length" or "travel_time"); the default is "length".
func WithWeightName(name string) OracleOption {
	return func(o *Oracle) { o.weightName = name }
}

// Oracle answers
// shortest-distance queries over a fixed graph.Graph, layering a
// bounded LRU cache, an optional precomputed Table, and an on-demand
// graph search, in that order of preference.
type Oracle struct {
	g          *graph.Graph
	table      Table
	cache      *lru
	algorithm  Algorithm
	weightName string

	// sentinel is the distance reported for pairs proven unreachable:
	// the node count, so disconnected pairs compare as effectively
	// infinite without introducing non-finite values.
	sentinel float64
}

// NewOracle builds an Oracle over g. By default it has no precomputed
// table, a 50,000-entry LRU, Dijkstra search, and weighs edges by
// Length.
func NewOracle(g *graph.Graph, opts ...OracleOption) (*Oracle, error) {
	if g == nil {
		return nil, fmt.Errorf("distance: NewOracle: %w", ErrNodeOutOfRange)
	}
	o := &Oracle{
		g:          g,
		cache:      newLRU(defaultCacheCapacity),
		algorithm:  AlgorithmDijkstra,
		weightName: "length",
		sentinel:   float64(g.NumNodes()),
	}
	for _, opt := range opts {
		opt(o)
	}
	switch o.algorithm {
	case AlgorithmDijkstra, AlgorithmAStar:
	default:
		return nil, fmt.Errorf("distance: NewOracle: %w", ErrUnknownAlgorithm)
	}
	return o, nil
}

// Distance returns the shortest distance from u to v, checking the
// cache, then the precomputed table, then running the configured
// search as a last resort. Unreachable pairs resolve to the sentinel
// distance (the graph's node count), which is itself cached.
func (o *Oracle) Distance(u, v int) (float64, error) {
	if u < 0 || u >= o.g.NumNodes() || v < 0 || v >= o.g.NumNodes() {
		return 0, fmt.Errorf("distance: Distance: %w", ErrNodeOutOfRange)
	}
	if u == v {
		return 0, nil
	}
	if d, ok := o.cache.get(u, v); ok {
		return d, nil
	}
	if o.table != nil {
		if d, ok := o.table.Get(u, v); ok {
			o.cache.put(u, v, d)
			return d, nil
		}
	}

	d, reachable, err := search(o.g, u, v, o.weightName, o.algorithm == AlgorithmAStar)
	if err != nil {
		return 0, fmt.Errorf("distance: Distance: %w", err)
	}
	if !reachable {
		d = o.sentinel
	}
	o.cache.put(u, v, d)
	return d, nil
}

// WarmBatch resolves every pair concurrently, populating the cache,
// using up to runtime.GOMAXPROCS(0) workers via errgroup. It returns
// the first error encountered, if any; successfully resolved pairs
// remain cached regardless.
func (o *Oracle) WarmBatch(ctx context.Context, pairs []Pair) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers <= 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan Pair)

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for p := range jobs {
				if _, err := o.Distance(p.U, p.V); err != nil {
					return err
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for _, p := range pairs {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}

// CacheLen reports the number of entries currently held in the LRU,
// primarily useful for tests and diagnostics.
func (o *Oracle) CacheLen() int {
	return o.cache.len()
}

// MaxFiniteDistance returns the largest finite distance in the
// oracle's precomputed table when that table is a MemoryTable holding
// a positive entry; otherwise (no table, a SQLiteTable, or no positive
// entry) it returns the Euclidean bounding-box diagonal — an
// approximation documented as such, since computing the true graph
// diameter requires an all-pairs search this package does not run
// eagerly.
func (o *Oracle) MaxFiniteDistance() float64 {
	if mt, ok := o.table.(*MemoryTable); ok {
		max := 0.0
		for _, row := range mt.rows {
			for _, d := range row {
				if d > max && d < o.sentinel {
					max = d
				}
			}
		}
		if max > 0 {
			return max
		}
	}
	minX, minY, maxX, maxY := o.g.Bounds()
	dx := maxX - minX
	dy := maxY - minY
	return math.Sqrt(dx*dx + dy*dy)
}
