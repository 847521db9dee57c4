package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFillsDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, `
reward:
  waypoint_bonus: 75
`)
	env, reward, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, AutoStepBudget, env.MaxSteps)
	assert.Equal(t, "dijkstra", env.ShortestPathAlgorithm)
	assert.Equal(t, "travel_time", env.WeightName)

	assert.Equal(t, 75.0, reward.WaypointBonus)
	assert.Equal(t, 200.0, reward.DestinationBonus) // untouched default
	assert.Equal(t, 2.0, reward.NoProgressPenalty)
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	path := writeConfig(t, `
env:
  shortest_path_algorithm: astral_projection
`)
	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStepBudgetResolve(t *testing.T) {
	assert.Equal(t, 500, StepBudget(500).Resolve(10_000))
	assert.Equal(t, 1000, AutoStepBudget.Resolve(5_000))
	assert.Equal(t, 200, AutoStepBudget.Resolve(200))
	assert.Equal(t, 1, AutoStepBudget.Resolve(0))
}
