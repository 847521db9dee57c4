// Package envpool runs K environments in parallel
// worker goroutines: a Pool owns K independent workers, each pairing one
// navenv.StepEnv (typically a *mask.MaskedEnv wrapping a *navenv.Env)
// with its own *vc2.Normalizer and its own private discounted-return
// accumulator. Workers share nothing mutable except the read-only
// graph.Graph and distance.Oracle each StepEnv was built over, so
// RunEpisodes drives them concurrently with golang.org/x/sync/errgroup
// and no additional locking — the same bounded-worker-pool shape
// distance.Oracle.WarmBatch uses for cache warm-up, applied here to
// whole episodes instead of single distance lookups.
//
// This package is an episode runner, not a policy-gradient trainer:
// Policy is any function from an observation
// and mask to an action, so a caller can plug in anything from a
// greedy distance-descent heuristic (see cmd/navsim) to a trained
// policy's forward pass.
package envpool
