// Package mask implements the action-masking and cycle-prevention
// wrapper: it wraps any navenv.StepEnv, filtering the
// inner action space down to neighbors that make measurable progress
// toward the current target, substituting a masked-out chosen action
// with a fallback, and layering a cycle penalty onto the reward when
// the agent keeps revisiting the same node.
//
// MaskedEnv itself satisfies navenv.StepEnv, so it composes: an
// envpool worker can hold a *mask.MaskedEnv wrapping a *navenv.Env
// exactly as it would hold the bare *navenv.Env.
package mask
