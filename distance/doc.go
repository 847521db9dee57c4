// Package distance computes and caches shortest-path distances over a
// graph.Graph.
//
// An Oracle layers three sources, cheapest first: a bounded in-memory
// LRU of recently resolved pairs, a precomputed distance.Table (which
// may be partial — built out of process and loaded whole, or backed by
// SQLite for tables too large to hold in memory), and an on-demand
// graph search (Dijkstra or A*, selected at construction) as the final
// fallback. A pair absent from every source after search is recorded
// as unreachable, the sentinel distance equal to the graph's node
// count, so disconnected pairs compare as effectively infinite without
// introducing non-finite values.
//
// Concurrency: Oracle.Distance and Oracle.WarmBatch are safe for
// concurrent use by multiple goroutines; both synchronize access to
// the shared LRU with a single sync.RWMutex, while the graph and any
// precomputed table stay read-only and unlocked.
package distance
