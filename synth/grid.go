package synth

import (
	"fmt"

	"github.com/routewise/navmdp/graph"
)

const minGridDim = 1

// Grid builds a rows x cols orthogonal grid with 4-neighborhood
// connectivity. Node (r, c) is assigned ID r*cols+c and placed at
// coordinates (c, r). Each cell connects to its right and bottom
// neighbor, in both directions unless WithOnewayProbability thins the
// reverse arc.
func Grid(rows, cols int, opts ...Option) (*graph.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("synth: Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	n := rows * cols
	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("synth: Grid: %w", err)
	}

	id := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := b.SetCoords(id(r, c), float64(c), float64(r)); err != nil {
				return nil, fmt.Errorf("synth: Grid: %w", err)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				if err := addBidirectional(b, cfg, u, id(r, c+1)); err != nil {
					return nil, fmt.Errorf("synth: Grid: %w", err)
				}
			}
			if r+1 < rows {
				if err := addBidirectional(b, cfg, u, id(r+1, c)); err != nil {
					return nil, fmt.Errorf("synth: Grid: %w", err)
				}
			}
		}
	}

	return b.Build()
}
