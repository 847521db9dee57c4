// Package config loads the environment and reward configuration from
// YAML, and supports hot-reloading the reward coefficients (but never
// the environment topology, which is fixed at construction) via
// fsnotify.
package config
