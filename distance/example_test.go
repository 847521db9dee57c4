package distance_test

import (
	"fmt"

	"github.com/routewise/navmdp/distance"
	"github.com/routewise/navmdp/graph"
)

// Example builds a tiny triangle graph and queries the shortest
// distance between two of its nodes.
func Example() {
	b, err := graph.NewBuilder(3)
	if err != nil {
		panic(err)
	}
	coords := [][2]float64{{0, 0}, {1, 0}, {2, 0}}
	for id, c := range coords {
		if err := b.SetCoords(id, c[0], c[1]); err != nil {
			panic(err)
		}
	}
	if _, err := b.AddEdge(0, 1, 1.0); err != nil {
		panic(err)
	}
	if _, err := b.AddEdge(1, 2, 1.0); err != nil {
		panic(err)
	}
	if _, err := b.AddEdge(0, 2, 5.0); err != nil {
		panic(err)
	}

	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	oracle, err := distance.NewOracle(g)
	if err != nil {
		panic(err)
	}
	d, err := oracle.Distance(0, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 2
}
