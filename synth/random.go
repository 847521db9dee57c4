package synth

import (
	"fmt"
	"math"

	"github.com/routewise/navmdp/graph"
)

const minRandomNodes = 1

// Random builds an Erdos-Renyi-like directed graph over n nodes:
// every ordered pair (i, j) with i != j becomes an edge independently
// with probability p. Nodes are scattered uniformly at random inside
// a square sized to keep node density roughly constant as n grows.
// WithSeed/WithRand must be supplied when 0 < p < 1, since the result
// is otherwise nondeterministic; Random returns ErrNeedRandSource if
// it is not.
func Random(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("synth: Random: n=%d: %w", n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("synth: Random: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("synth: Random: %w", ErrNeedRandSource)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("synth: Random: %w", err)
	}

	side := math.Max(1, math.Sqrt(float64(n)))
	for i := 0; i < n; i++ {
		var x, y float64
		if cfg.rng != nil {
			x = cfg.rng.Float64() * side
			y = cfg.rng.Float64() * side
		} else {
			// Deterministic fallback layout when no RNG is configured
			// (only reachable when p is 0 or 1, so topology is fixed).
			x = float64(i % int(side+1))
			y = float64(i / int(side+1))
		}
		if err := b.SetCoords(i, x, y); err != nil {
			return nil, fmt.Errorf("synth: Random: %w", err)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			include := p == 1
			if cfg.rng != nil && p > 0 && p < 1 {
				include = cfg.rng.Float64() < p
			}
			if !include {
				continue
			}
			if _, err := b.AddEdge(i, j, cfg.length()); err != nil {
				return nil, fmt.Errorf("synth: Random: %w", err)
			}
		}
	}

	return b.Build()
}
