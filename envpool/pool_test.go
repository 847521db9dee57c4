package envpool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routewise/navmdp/distance"
	"github.com/routewise/navmdp/mask"
	"github.com/routewise/navmdp/navenv"
	"github.com/routewise/navmdp/synth"
)

func greedyPolicy(obs navenv.Observation, maskInfo mask.Info) int {
	neighborDist := obs.NeighborDistWaypoint
	if allZero(neighborDist) {
		neighborDist = obs.NeighborDistDest
	}
	best := -1
	bestDist := 0.0
	for i, d := range neighborDist {
		if len(maskInfo.ActionMask) > i && !maskInfo.ActionMask[i] {
			continue
		}
		if d <= 0 {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

func allZero(xs []float64) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

func TestPoolRunsWorkersConcurrentlyToTermination(t *testing.T) {
	g, err := synth.Line(6)
	require.NoError(t, err)
	oracle, err := distance.NewOracle(g, distance.WithWeightName("length"))
	require.NoError(t, err)

	factory := func(workerID int) (navenv.StepEnv, error) {
		env, err := navenv.New(g, oracle, 0, nil, 5, navenv.WithWeightName("length"))
		if err != nil {
			return nil, err
		}
		return mask.New(env, g, oracle)
	}

	pool, err := New(3, factory)
	require.NoError(t, err)

	results, err := pool.RunEpisodes(context.Background(), 1, 50, greedyPolicy)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		assert.Equal(t, "destination_reached", r.TerminatedReason)
		assert.Equal(t, 5, r.Steps)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, r.Path)
	}
}

func TestNewRejectsInvalidArgs(t *testing.T) {
	_, err := New(0, func(int) (navenv.StepEnv, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrNoWorkers)

	_, err = New(1, nil)
	assert.ErrorIs(t, err, ErrNilFactory)
}

func TestRunEpisodesRejectsNilPolicy(t *testing.T) {
	g, err := synth.Line(3)
	require.NoError(t, err)
	oracle, err := distance.NewOracle(g)
	require.NoError(t, err)

	factory := func(int) (navenv.StepEnv, error) {
		return navenv.New(g, oracle, 0, nil, 2)
	}
	pool, err := New(1, factory)
	require.NoError(t, err)

	_, err = pool.RunEpisodes(context.Background(), 0, 10, nil)
	assert.ErrorIs(t, err, ErrNilPolicy)
}
