package distance

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/routewise/navmdp/graph"
)

// Algorithm selects the on-demand graph search an Oracle falls back to
// when neither the LRU nor the precomputed Table has an answer.
type Algorithm int

const (
	// AlgorithmDijkstra runs single-source Dijkstra with early exit at
	// the target.
	AlgorithmDijkstra Algorithm = iota
	// AlgorithmAStar runs A* with a Euclidean heuristic, admissible
	// when the weighting scheme is "length" and degrading gracefully
	// (heuristic 0, equivalent to Dijkstra) otherwise.
	AlgorithmAStar
)

// searchItem is one entry in the priority queue driving both Dijkstra
// and A*: id is the node, dist is the best known cost-from-source, and
// priority is dist (Dijkstra) or dist+heuristic (A*).
type searchItem struct {
	id       int
	dist     float64
	priority float64
	index    int
}

type searchPQ []*searchItem

func (pq searchPQ) Len() int            { return len(pq) }
func (pq searchPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq searchPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].index = i; pq[j].index = j }
func (pq *searchPQ) Push(x interface{}) {
	item := x.(*searchItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// euclidean returns the straight-line distance between two nodes'
// coordinates.
func euclidean(g *graph.Graph, a, b int) float64 {
	na, errA := g.Node(a)
	nb, errB := g.Node(b)
	if errA != nil || errB != nil {
		return 0
	}
	dx := na.X - nb.X
	dy := na.Y - nb.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// search runs a single-source, single-target lazy-decrease-key search
// from source to target over g under the named weighting scheme. When
// useHeuristic is true and the weighting scheme is "length" it behaves
// as A*; otherwise it behaves as plain Dijkstra. It stops as soon as
// target is popped with a finalized distance.
func search(g *graph.Graph, source, target int, weightName string, useHeuristic bool) (float64, bool, error) {
	n := g.NumNodes()
	if source < 0 || source >= n || target < 0 || target >= n {
		return 0, false, fmt.Errorf("search: %w", ErrNodeOutOfRange)
	}
	if source == target {
		return 0, true, nil
	}

	heuristicOf := func(int) float64 { return 0 }
	if useHeuristic && weightName == "length" {
		heuristicOf = func(u int) float64 { return euclidean(g, u, target) }
	}

	dist := make(map[int]float64, n)
	visited := make(map[int]bool, n)
	dist[source] = 0

	pq := make(searchPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &searchItem{id: source, dist: 0, priority: heuristicOf(source)})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*searchItem)
		u := item.id
		if visited[u] {
			continue
		}
		if item.dist > dist[u] {
			continue
		}
		visited[u] = true

		if u == target {
			return dist[u], true, nil
		}

		for _, v := range g.NeighborIDs(u) {
			w, ok := g.MinParallelWeight(u, v, weightName)
			if !ok {
				continue
			}
			if w < 0 {
				return 0, false, fmt.Errorf("search: edge %d->%d: %w", u, v, ErrNegativeWeight)
			}
			newDist := dist[u] + w
			if old, seen := dist[v]; seen && newDist >= old {
				continue
			}
			dist[v] = newDist
			heap.Push(&pq, &searchItem{id: v, dist: newDist, priority: newDist + heuristicOf(v)})
		}
	}

	return 0, false, nil
}
