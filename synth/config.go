package synth

import "math/rand"

// LengthFn produces an edge length given an optional RNG source. It
// must be deterministic for a fixed RNG seed.
type LengthFn func(rng *rand.Rand) float64

// DefaultEdgeLength is used when no LengthFn is configured.
const DefaultEdgeLength = 1.0

// DefaultLengthFn always returns DefaultEdgeLength.
func DefaultLengthFn(_ *rand.Rand) float64 {
	return DefaultEdgeLength
}

// UniformLengthFn samples edge lengths uniformly from [min, max].
func UniformLengthFn(min, max float64) LengthFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// Option customizes a generator's RNG source, edge-length distribution,
// and one-way edge probability. Apply any number of Options in order;
// later options override earlier ones.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	lengthFn   LengthFn
	onewayProb float64
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:      nil,
		lengthFn: DefaultLengthFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a deterministic RNG for the generator to draw lengths
// and (where applicable) topology decisions from.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithLengthFn overrides the edge-length distribution. A nil fn is a
// no-op.
func WithLengthFn(fn LengthFn) Option {
	return func(c *config) {
		if fn != nil {
			c.lengthFn = fn
		}
	}
}

// WithConstantLength sets every edge's length to a fixed value.
func WithConstantLength(length float64) Option {
	return WithLengthFn(func(_ *rand.Rand) float64 { return length })
}

// WithUniformLength sets edge lengths to be drawn uniformly from
// [min, max]; requires WithSeed or WithRand to vary, otherwise every
// edge takes length min.
func WithUniformLength(min, max float64) Option {
	return WithLengthFn(UniformLengthFn(min, max))
}

// WithOnewayProbability marks each generated edge's reverse direction
// as absent with probability p, and sets Oneway on the surviving
// direction. p == 0 (the default) keeps every road bidirectional.
// Panics if p is outside [0, 1] — a malformed literal argument from the
// caller, not a runtime condition.
func WithOnewayProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("synth: WithOnewayProbability(p outside [0,1])")
	}
	return func(c *config) { c.onewayProb = p }
}

func (c *config) length() float64 {
	return c.lengthFn(c.rng)
}

// keepReverse reports whether the reverse edge of a just-added forward
// edge should also be added, consuming one RNG draw when onewayProb > 0.
func (c *config) keepReverse() bool {
	if c.onewayProb <= 0 {
		return true
	}
	if c.rng == nil {
		return true
	}
	return c.rng.Float64() >= c.onewayProb
}
