package config

import "fmt"

// autoStepBudgetCap is the clamp applied when Resolve expands an
// "auto" step budget against a graph's node count.
const autoStepBudgetCap = 1000

// StepBudget is max_steps/max_wait_steps: either a fixed integer or
// the sentinel AutoStepBudget, unmarshaled from either a YAML integer
// or the string "auto".
type StepBudget int

// AutoStepBudget marshals from/to the YAML string "auto".
const AutoStepBudget StepBudget = -1

// UnmarshalYAML accepts either an integer scalar or the string "auto".
func (b *StepBudget) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var asString string
	if err := unmarshal(&asString); err == nil {
		if asString == "auto" {
			*b = AutoStepBudget
			return nil
		}
		return fmt.Errorf("config: StepBudget: %q: %w", asString, ErrInvalidStepBudget)
	}

	var asInt int
	if err := unmarshal(&asInt); err != nil {
		return fmt.Errorf("config: StepBudget: %w", ErrInvalidStepBudget)
	}
	if asInt < 0 {
		return fmt.Errorf("config: StepBudget: %d: %w", asInt, ErrInvalidStepBudget)
	}
	*b = StepBudget(asInt)
	return nil
}

// MarshalYAML renders AutoStepBudget as "auto" and every other value
// as its plain integer.
func (b StepBudget) MarshalYAML() (interface{}, error) {
	if b == AutoStepBudget {
		return "auto", nil
	}
	return int(b), nil
}

// Resolve expands StepBudget against a graph's node count, clamping
// "auto" to at most autoStepBudgetCap.
func (b StepBudget) Resolve(numNodes int) int {
	if b != AutoStepBudget {
		return int(b)
	}
	if numNodes > autoStepBudgetCap {
		return autoStepBudgetCap
	}
	if numNodes < 1 {
		return 1
	}
	return numNodes
}

// Env is the environment configuration: the step budget, search
// algorithm, and cost-weighting scheme. Environment topology (graph,
// start, waypoints, destination) is never part of this config; it is
// fixed at navenv.Env construction time.
type Env struct {
	MaxSteps              StepBudget `yaml:"max_steps"`
	MaxWaitSteps          StepBudget `yaml:"max_wait_steps"`
	ShortestPathAlgorithm string     `yaml:"shortest_path_algorithm"`
	WeightName            string     `yaml:"weight_name"`
}

// Validate reports ErrUnknownAlgorithm if ShortestPathAlgorithm is set
// to anything other than "astar" or "dijkstra".
func (e Env) Validate() error {
	switch e.ShortestPathAlgorithm {
	case "astar", "dijkstra":
		return nil
	default:
		return fmt.Errorf("config: Env.Validate: %q: %w", e.ShortestPathAlgorithm, ErrUnknownAlgorithm)
	}
}

// DefaultEnv mirrors navenv's own defaults: an "auto" step budget and
// travel-time weighting with Dijkstra search.
func DefaultEnv() Env {
	return Env{
		MaxSteps:              AutoStepBudget,
		MaxWaitSteps:          AutoStepBudget,
		ShortestPathAlgorithm: "dijkstra",
		WeightName:            "travel_time",
	}
}

// Reward is the reward-shaping configuration, covering
// both the per-step shaping coefficients (navenv), the loop-prevention
// coefficients (mask), and the VC2 normalizer's parameters. This is
// the section config.Watch hot-reloads.
type Reward struct {
	MoveCostCoef      float64 `yaml:"move_cost_coef"`
	ProgressCoef      float64 `yaml:"progress_coef"`
	WaypointBonus     float64 `yaml:"waypoint_bonus"`
	DestinationBonus  float64 `yaml:"destination_bonus"`
	NoProgressPenalty float64 `yaml:"no_progress_penalty"`
	AntiLoopPenalty   float64 `yaml:"anti_loop_penalty"`
	NormGamma         float64 `yaml:"norm_gamma"`
	NormClip          float64 `yaml:"norm_clip"`
	NormScale         float64 `yaml:"norm_scale"`
}

// DefaultReward mirrors the defaults independently chosen by navenv,
// mask, and vc2, collected here as the single source of truth a
// deployment's config.yaml overrides.
func DefaultReward() Reward {
	return Reward{
		MoveCostCoef:      0.01,
		ProgressCoef:      5.0,
		WaypointBonus:     50.0,
		DestinationBonus:  200.0,
		NoProgressPenalty: 2.0,
		AntiLoopPenalty:   20.0,
		NormGamma:         0.99,
		NormClip:          10.0,
		NormScale:         1.0,
	}
}
