// Package synth builds synthetic road-network graph.Graph instances for
// tests, benchmarks, and command-line demonstrations. It has no
// dependency on any real map source: every generator lays out node
// coordinates and edge weights procedurally from a small set of
// parameters and an optional deterministic RNG seed.
//
// Generators are plain functions (Line, Grid, Cycle, Random) rather
// than a builder object: each returns a ready *graph.Graph or an error.
// Shared knobs — the RNG source and the edge-length distribution — are
// configured through the same functional-option pattern the rest of
// this module uses, via Option and the With* constructors.
package synth
