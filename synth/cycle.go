package synth

import (
	"fmt"
	"math"

	"github.com/routewise/navmdp/graph"
)

const minCycleNodes = 3

// Cycle builds an n-node ring, nodes placed evenly around a unit
// circle, node i connected to node (i+1)%n in both directions unless
// WithOnewayProbability thins the reverse arc.
func Cycle(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("synth: Cycle: n=%d: %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("synth: Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		if err := b.SetCoords(i, math.Cos(theta), math.Sin(theta)); err != nil {
			return nil, fmt.Errorf("synth: Cycle: %w", err)
		}
	}
	for i := 0; i < n; i++ {
		if err := addBidirectional(b, cfg, i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("synth: Cycle: %w", err)
		}
	}
	return b.Build()
}
