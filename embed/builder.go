package embed

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/routewise/navmdp/graph"
)

// Dim is the length of every embedding vector this package produces.
const Dim = 22

const intersectionRadiusNodes = 2

// BuildNodeEmbeddings computes the 22-dimensional feature vector for
// every node in g, indexed by node ID. The vector layout is:
//
//	 0: x_norm                11: betweenness_approx
//	 1: y_norm                12: network_density
//	 2: deg_norm              13: length_avg
//	 3: in_degree             14: maxspeed_norm_avg
//	 4: out_degree            15: lanes_norm_avg
//	 5: neighbor_count        16: highway_code_avg
//	 6: avg_neighbor_deg      17: surface_score_avg
//	 7: max_neighbor_deg      18: oneway_flag_avg
//	 8: min_neighbor_deg      19: travel_time_norm_avg
//	 9: neighbor_deg_std      20: intersection_density
//	10: degree_centrality     21: road_hierarchy
func BuildNodeEmbeddings(g *graph.Graph) [][]float64 {
	n := g.NumNodes()
	if n == 0 {
		return nil
	}

	minX, minY, maxX, maxY := g.Bounds()
	xRange := maxX - minX
	if xRange == 0 {
		xRange = 1
	}
	yRange := maxY - minY
	if yRange == 0 {
		yRange = 1
	}

	totalDegree := make([]float64, n)
	for u := 0; u < n; u++ {
		totalDegree[u] = float64(g.InDegree(u) + g.OutDegree(u))
	}
	maxDegree := floats.Max(totalDegree)
	if maxDegree == 0 {
		maxDegree = 1
	}

	networkDensity := 0.0
	if denom := n * (n - 1); denom > 0 {
		networkDensity = float64(g.NumEdges()) / float64(denom)
	}

	edgeFeatures := normalizeEdgeFeatures(g)
	maxLength := 1.0
	for _, f := range edgeFeatures {
		if f.length > maxLength {
			maxLength = f.length
		}
	}

	embeddings := make([][]float64, n)
	for u := 0; u < n; u++ {
		node, _ := g.Node(u)

		xNorm := (node.X - minX) / xRange
		yNorm := (node.Y - minY) / yRange
		degNorm := totalDegree[u] / maxDegree
		inDeg := float64(g.InDegree(u))
		outDeg := float64(g.OutDegree(u))

		neighborIDs := g.NeighborIDs(u)
		neighborCount := float64(len(neighborIDs))
		neighborDegs := make([]float64, 0, len(neighborIDs))
		for _, v := range neighborIDs {
			neighborDegs = append(neighborDegs, totalDegree[v])
		}
		var avgNeighborDeg, maxNeighborDeg, minNeighborDeg, neighborDegStd float64
		if len(neighborDegs) > 0 {
			avgNeighborDeg = stat.Mean(neighborDegs, nil)
			maxNeighborDeg = floats.Max(neighborDegs)
			minNeighborDeg = floats.Min(neighborDegs)
			neighborDegStd = stat.StdDev(neighborDegs, nil)
		}

		degreeCentrality := 0.0
		if n > 1 {
			degreeCentrality = totalDegree[u] / float64(n-1)
		}
		betweennessApprox := neighborCount / float64(n)

		outEdges := g.Edges(u)
		var lengthAvg, maxspeedNormAvg, lanesNormAvg, highwayCodeAvg,
			surfaceScoreAvg, onewayFlagAvg, travelTimeNormAvg float64
		if len(outEdges) > 0 {
			lengths := make([]float64, len(outEdges))
			maxspeedNorms := make([]float64, len(outEdges))
			lanesNorms := make([]float64, len(outEdges))
			highwayCodes := make([]float64, len(outEdges))
			surfaceScoresOut := make([]float64, len(outEdges))
			onewayFlags := make([]float64, len(outEdges))
			travelTimeNorms := make([]float64, len(outEdges))
			for i, e := range outEdges {
				f := edgeFeatures[e.ID]
				lengths[i] = f.length
				maxspeedNorms[i] = f.maxspeedNorm
				lanesNorms[i] = f.lanesNorm
				highwayCodes[i] = f.highwayCode
				surfaceScoresOut[i] = f.surfaceScore
				onewayFlags[i] = f.onewayFlag
				travelTimeNorms[i] = f.travelTimeNorm
			}
			lengthAvg = stat.Mean(lengths, nil) / maxLength
			maxspeedNormAvg = stat.Mean(maxspeedNorms, nil)
			lanesNormAvg = stat.Mean(lanesNorms, nil)
			highwayCodeAvg = stat.Mean(highwayCodes, nil)
			surfaceScoreAvg = stat.Mean(surfaceScoresOut, nil)
			onewayFlagAvg = stat.Mean(onewayFlags, nil)
			travelTimeNormAvg = stat.Mean(travelTimeNorms, nil)
		}

		intersectionDensity := intersectionDensityOf(g, u, intersectionRadiusNodes)
		roadHierarchy := highwayCodeAvg

		embeddings[u] = []float64{
			xNorm, yNorm, degNorm, inDeg, outDeg,
			neighborCount, avgNeighborDeg, maxNeighborDeg, minNeighborDeg, neighborDegStd,
			degreeCentrality, betweennessApprox, networkDensity,
			lengthAvg, maxspeedNormAvg, lanesNormAvg, highwayCodeAvg,
			surfaceScoreAvg, onewayFlagAvg, travelTimeNormAvg,
			intersectionDensity, roadHierarchy,
		}
	}

	return embeddings
}

// intersectionDensityOf counts distinct nodes reachable from u within
// radius hops along outgoing edges, normalized by radius*10 — a
// coarse scale choice, not a tight bound.
func intersectionDensityOf(g *graph.Graph, u, radius int) float64 {
	if radius <= 0 {
		return 0
	}
	visited := map[int]bool{u: true}
	frontier := []int{u}
	for i := 0; i < radius; i++ {
		var next []int
		for _, n := range frontier {
			for _, v := range g.NeighborIDs(n) {
				if !visited[v] {
					visited[v] = true
					next = append(next, v)
				}
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return float64(len(visited)-1) / (float64(radius) * 10.0)
}
