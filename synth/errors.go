package synth

import "errors"

var (
	// ErrTooFewNodes indicates a generator was asked for fewer nodes
	// than its topology requires.
	ErrTooFewNodes = errors.New("synth: too few nodes for requested topology")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("synth: probability must be in [0, 1]")

	// ErrNeedRandSource indicates a stochastic generator was invoked
	// without WithSeed or WithRand and needs randomness to proceed.
	ErrNeedRandSource = errors.New("synth: random source required")
)
