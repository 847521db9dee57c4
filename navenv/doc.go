// Package navenv implements the waypoint navigation environment:
// a single-agent episodic MDP over a graph.Graph in
// which the agent must visit an ordered set of waypoints before
// reaching a fixed destination.
//
// Env implements the StepEnv interface directly; package mask wraps
// any StepEnv (including an already-wrapped one) to add action
// masking and cycle prevention, so the two compose without either
// depending on the other's internals.
//
// Observations combine three node embeddings (current, destination,
// next pending waypoint), seven scalar progress/efficiency features,
// and two per-neighbor distance-to-target arrays, sized to the
// graph's maximum out-degree.
package navenv
