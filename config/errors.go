package config

import "errors"

var (
	// ErrUnknownAlgorithm indicates ShortestPathAlgorithm named
	// something other than "astar" or "dijkstra".
	ErrUnknownAlgorithm = errors.New("config: unknown shortest_path_algorithm")

	// ErrInvalidStepBudget indicates a max_steps/max_wait_steps value
	// was neither a non-negative integer nor the string "auto".
	ErrInvalidStepBudget = errors.New("config: max_steps/max_wait_steps must be a non-negative integer or \"auto\"")
)
