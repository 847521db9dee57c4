package synth

import (
	"fmt"

	"github.com/routewise/navmdp/graph"
)

const minLineNodes = 2

// Line builds a simple path of n nodes laid out along the X axis at
// unit spacing, node i at (i, 0). Edges connect consecutive nodes in
// both directions unless WithOnewayProbability thins the reverse arc.
func Line(n int, opts ...Option) (*graph.Graph, error) {
	if n < minLineNodes {
		return nil, fmt.Errorf("synth: Line: n=%d: %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("synth: Line: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := b.SetCoords(i, float64(i), 0); err != nil {
			return nil, fmt.Errorf("synth: Line: %w", err)
		}
	}
	for i := 0; i+1 < n; i++ {
		if err := addBidirectional(b, cfg, i, i+1); err != nil {
			return nil, fmt.Errorf("synth: Line: %w", err)
		}
	}
	return b.Build()
}

// addBidirectional adds a forward edge u->v, and the reverse edge v->u
// unless cfg thins it via WithOnewayProbability, in which case the
// surviving direction is marked Oneway.
func addBidirectional(b *graph.Builder, cfg *config, u, v int) error {
	length := cfg.length()
	if cfg.keepReverse() {
		if _, err := b.AddEdge(u, v, length); err != nil {
			return err
		}
		if _, err := b.AddEdge(v, u, length); err != nil {
			return err
		}
		return nil
	}
	_, err := b.AddEdge(u, v, length, graph.WithOneway(true))
	return err
}
