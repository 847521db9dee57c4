package vc2

// Option configures a Normalizer at construction time.
type Option func(*config)

type config struct {
	gamma     float64
	clipRange float64
	scale     float64
	epsilon   float64
}

func defaultConfig() config {
	return config{
		gamma:     0.99,
		clipRange: 10.0,
		scale:     1.0,
		epsilon:   1e-4,
	}
}

// WithGamma overrides the discount factor used to accumulate the
// per-episode return; the default is 0.99.
func WithGamma(v float64) Option {
	return func(c *config) { c.gamma = v }
}

// WithClipRange overrides the symmetric clamp applied to the
// normalized per-step reward; the default is 10.0.
func WithClipRange(v float64) Option {
	return func(c *config) { c.clipRange = v }
}

// WithScale overrides the multiplier applied to the raw reward before
// normalization; the default is 1.0.
func WithScale(v float64) Option {
	return func(c *config) { c.scale = v }
}

// WithEpsilon overrides the numerical-stability floor added to every
// variance before taking its square root; the default is 1e-4.
func WithEpsilon(v float64) Option {
	return func(c *config) { c.epsilon = v }
}
