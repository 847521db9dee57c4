// Package graph defines the immutable, integer-keyed directed road
// multigraph consumed by every other package in this module.
//
// A Graph is built once via NewBuilder, populated with SetCoords/AddEdge,
// and frozen with Build(). After Build() returns, a Graph never changes:
// no method mutates node or edge state, so concurrent readers across
// goroutines need no locking (this is the boundary the rest of the
// module relies on — see the concurrency notes in package distance and
// package navenv).
//
// Node identifiers are integers in [0, N). Each node carries geographic
// coordinates (X, Y). Each edge carries a required Length and a set of
// optional road attributes (TravelTime, SpeedKPH, Maxspeed, Lanes,
// Highway, Surface, Oneway), represented as typed pointers rather than
// a dynamic attribute map so optionality is explicit at compile time.
//
// Parallel edges between the same (From, To) are permitted; callers
// that need a single cost for a traversal should use MinParallelWeight.
package graph
