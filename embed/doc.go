// Package embed builds per-node feature vectors for the navigation
// environment's observation. Each node's 22-dimensional
// embedding combines normalized coordinates, structural degree
// statistics, averaged incident-edge road attributes, and two
// neighborhood-context scalars.
//
// Mean/standard-deviation reductions over small per-node slices use
// gonum.org/v1/gonum/stat rather than hand-rolled accumulation loops.
package embed
