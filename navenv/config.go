package navenv

// Option configures an Env's step budget and reward coefficients at
// construction time.
type Option func(*envConfig)

type envConfig struct {
	maxSteps     int
	maxWaitSteps int
	weightName   string

	moveCostCoef      float64
	progressCoef      float64
	waypointBonus     float64
	destinationBonus  float64
	noProgressPenalty float64
}

func defaultEnvConfig(numNodes int) envConfig {
	maxSteps := numNodes
	if maxSteps > 1000 {
		maxSteps = 1000
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return envConfig{
		maxSteps:          maxSteps,
		maxWaitSteps:      0,
		weightName:        "travel_time",
		moveCostCoef:      0.01,
		progressCoef:      5.0,
		waypointBonus:     50.0,
		destinationBonus:  200.0,
		noProgressPenalty: 2.0,
	}
}

// WithMaxSteps overrides the step budget; the default is the graph's
// node count, capped at 1000.
func WithMaxSteps(n int) Option {
	return func(c *envConfig) { c.maxSteps = n }
}

// WithMaxWaitSteps overrides the wait-step budget independently of
// WithMaxSteps; the default mirrors whatever max_steps resolves to: it
// is left unset (0), so the max_steps check, which runs first, ends the
// episode at the same step.
func WithMaxWaitSteps(n int) Option {
	return func(c *envConfig) { c.maxWaitSteps = n }
}

// WithWeightName selects which edge attribute travel cost is computed
// over ("travel_time" or "length"); the default is "travel_time".
func WithWeightName(name string) Option {
	return func(c *envConfig) { c.weightName = name }
}

// WithMoveCostCoef overrides the per-step travel-time cost coefficient.
func WithMoveCostCoef(v float64) Option {
	return func(c *envConfig) { c.moveCostCoef = v }
}

// WithProgressCoef overrides the progress-toward-target reward
// coefficient.
func WithProgressCoef(v float64) Option {
	return func(c *envConfig) { c.progressCoef = v }
}

// WithWaypointBonus overrides the one-time bonus for reaching a
// pending waypoint.
func WithWaypointBonus(v float64) Option {
	return func(c *envConfig) { c.waypointBonus = v }
}

// WithDestinationBonus overrides the one-time bonus for reaching the
// destination with no waypoints remaining.
func WithDestinationBonus(v float64) Option {
	return func(c *envConfig) { c.destinationBonus = v }
}

// WithNoProgressPenalty overrides the flat penalty applied when a step
// does not reduce distance to the current target.
func WithNoProgressPenalty(v float64) Option {
	return func(c *envConfig) { c.noProgressPenalty = v }
}

// ResetOption overrides the episode's start node, waypoints, or
// destination for a single Reset call, letting a long-lived Env (as
// used by package envpool) be reused across episodes with different
// scenarios without reconstruction.
type ResetOption func(*resetConfig)

type resetConfig struct {
	start       *int
	waypoints   []int
	destination *int
}

// WithStart overrides the episode's start node.
func WithStart(node int) ResetOption {
	return func(c *resetConfig) { c.start = &node }
}

// WithWaypoints overrides the episode's ordered waypoint set.
func WithWaypoints(waypoints []int) ResetOption {
	return func(c *resetConfig) { c.waypoints = append([]int(nil), waypoints...) }
}

// WithDestination overrides the episode's destination node.
func WithDestination(node int) ResetOption {
	return func(c *resetConfig) { c.destination = &node }
}
