package envpool

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/routewise/navmdp/mask"
	"github.com/routewise/navmdp/navenv"
	"github.com/routewise/navmdp/vc2"
)

// Factory constructs the worker-owned StepEnv for worker id. Each call
// must return an independent instance — Pool never shares a StepEnv or
// its wrapper state across workers.
type Factory func(workerID int) (navenv.StepEnv, error)

// Policy chooses an action from an observation and the wrapping
// mask's current decision. A bare *navenv.Env worker (no masking
// layer) always sees a zero mask.Info.
type Policy func(obs navenv.Observation, maskInfo mask.Info) int

// Result summarizes one worker's completed episode.
type Result struct {
	WorkerID         int
	Steps            int
	RawReturn        float64
	NormalizedReturn float64
	TerminatedReason string
	Path             []int
}

// worker pairs one StepEnv with its own VC2 normalizer, so no mutable
// state is shared across workers.
type worker struct {
	id   int
	env  navenv.StepEnv
	norm *vc2.Normalizer
}

// Pool owns K independent workers and drives them concurrently.
type Pool struct {
	workers []*worker
}

// New builds a Pool of k workers, each constructed by factory and each
// given its own *vc2.Normalizer configured by normOpts.
func New(k int, factory Factory, normOpts ...vc2.Option) (*Pool, error) {
	if k <= 0 {
		return nil, ErrNoWorkers
	}
	if factory == nil {
		return nil, ErrNilFactory
	}

	workers := make([]*worker, k)
	for i := 0; i < k; i++ {
		env, err := factory(i)
		if err != nil {
			return nil, fmt.Errorf("envpool: New: worker %d: %w", i, err)
		}
		workers[i] = &worker{id: i, env: env, norm: vc2.New(normOpts...)}
	}
	return &Pool{workers: workers}, nil
}

// RunEpisodes resets every worker with seed+workerID and drives each
// to termination (done or truncated) under policy, or until maxSteps
// is exhausted, whichever comes first. Workers run concurrently via
// errgroup; a policy or environment error on one worker fails the
// whole run. The other workers are not interrupted: ctx is not
// consulted during an episode, so they run their episodes to the end
// before RunEpisodes returns the first error.
func (p *Pool) RunEpisodes(ctx context.Context, seed int64, maxSteps int, policy Policy) ([]Result, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}

	results := make([]Result, len(p.workers))
	g, _ := errgroup.WithContext(ctx)

	for i, w := range p.workers {
		i, w := i, w
		g.Go(func() error {
			r, err := runOne(w, seed+int64(w.id), maxSteps, policy)
			if err != nil {
				return fmt.Errorf("envpool: RunEpisodes: worker %d: %w", w.id, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(w *worker, seed int64, maxSteps int, policy Policy) (Result, error) {
	obs, info, err := w.env.Reset(seed)
	if err != nil {
		return Result{}, err
	}

	var maskInfo mask.Info
	if me, ok := w.env.(*mask.MaskedEnv); ok {
		maskInfo = me.LastMaskInfo()
	}

	rawReturn := 0.0
	normReturn := 0.0
	steps := 0
	reason := ""

	for steps < maxSteps {
		action := policy(obs, maskInfo)
		nextObs, reward, done, truncated, nextInfo, err := w.env.Step(action)
		if err != nil {
			return Result{}, err
		}
		steps++
		rawReturn += reward
		episodeEnded := done || truncated
		normReturn += w.norm.Step(reward, episodeEnded)

		obs, info = nextObs, nextInfo
		if me, ok := w.env.(*mask.MaskedEnv); ok {
			maskInfo = me.LastMaskInfo()
		}

		if episodeEnded {
			reason = nextInfo.TerminatedReason
			break
		}
	}

	return Result{
		WorkerID:         w.id,
		Steps:            steps,
		RawReturn:        rawReturn,
		NormalizedReturn: normReturn,
		TerminatedReason: reason,
		Path:             append([]int(nil), info.Path...),
	}, nil
}
