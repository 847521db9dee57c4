package graph_test

import (
	"fmt"

	"github.com/routewise/navmdp/graph"
)

// Example builds a four-node diamond graph and inspects the canonical
// neighbor order action indexing relies on.
func Example() {
	b, err := graph.NewBuilder(4)
	if err != nil {
		panic(err)
	}
	coords := [][2]float64{{0, 0}, {1, 1}, {1, -1}, {2, 0}}
	for id, c := range coords {
		if err := b.SetCoords(id, c[0], c[1]); err != nil {
			panic(err)
		}
	}
	if _, err := b.AddEdge(0, 1, 1.4, graph.WithHighway("residential")); err != nil {
		panic(err)
	}
	if _, err := b.AddEdge(0, 2, 1.4, graph.WithHighway("residential")); err != nil {
		panic(err)
	}
	if _, err := b.AddEdge(1, 3, 1.4); err != nil {
		panic(err)
	}
	if _, err := b.AddEdge(2, 3, 1.4); err != nil {
		panic(err)
	}

	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(g.NeighborIDs(0))
	fmt.Println(g.NumNodes(), g.NumEdges())
	// Output:
	// [1 2]
	// 4 4
}
