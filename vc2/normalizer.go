package vc2

import (
	"fmt"
	"math"
	"sync"
)

// Normalizer is the VC2 reward/value normalizer: a per-step reward
// normalizer backed by a running estimator of the discounted return,
// plus a separate running estimator of critic value predictions used
// for batch return/value normalization. A Normalizer is safe for
// concurrent use; package envpool nonetheless gives each worker its
// own instance, so the lock is only exercised when a caller chooses
// to share one across workers.
type Normalizer struct {
	mu  sync.Mutex
	cfg config

	returnStat    runningStat
	valueStat     runningStat
	episodeReturn float64
}

// New builds a Normalizer with the given options applied over the
// defaults: gamma=0.99, clipRange=10.0, scale=1.0, epsilon=1e-4.
func New(opts ...Option) *Normalizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Normalizer{
		cfg:        cfg,
		returnStat: newRunningStat(),
		valueStat:  newRunningStat(),
	}
}

// Step folds reward into the per-episode discounted return, updates
// the return estimator with it, and returns the normalized reward
// clip(reward*scale/sqrt(var_return+epsilon), +-clipRange). When
// episodeEnded is true (done or truncated), the discounted return
// accumulator resets to zero for the next episode.
func (n *Normalizer) Step(reward float64, episodeEnded bool) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.episodeReturn = n.episodeReturn*n.cfg.gamma + reward
	n.returnStat.update([]float64{n.episodeReturn})

	std := math.Sqrt(n.returnStat.variance + n.cfg.epsilon)
	norm := reward * n.cfg.scale / std
	norm = clip(norm, -n.cfg.clipRange, n.cfg.clipRange)

	if episodeEnded {
		n.episodeReturn = 0
	}
	return norm
}

// PushValues updates the value estimator with a batch of raw critic
// predictions. Callers typically invoke this once per rollout, ahead
// of Normalize.
func (n *Normalizer) PushValues(values []float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.valueStat.update(values)
}

// Normalize updates both estimators with the given batch, then
// returns standardized returns, standardized values, and their
// difference (the normalized advantage).
func (n *Normalizer) Normalize(returns, values []float64) (returnsNorm, valuesNorm, advantagesNorm []float64, err error) {
	if len(returns) != len(values) {
		return nil, nil, nil, fmt.Errorf("vc2: Normalize: %w", ErrLengthMismatch)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.returnStat.update(returns)
	n.valueStat.update(values)

	stdR := math.Sqrt(n.returnStat.variance + n.cfg.epsilon)
	stdV := math.Sqrt(n.valueStat.variance + n.cfg.epsilon)

	returnsNorm = make([]float64, len(returns))
	valuesNorm = make([]float64, len(values))
	advantagesNorm = make([]float64, len(returns))
	for i := range returns {
		returnsNorm[i] = (returns[i] - n.returnStat.mean) / stdR
		valuesNorm[i] = (values[i] - n.valueStat.mean) / stdV
		advantagesNorm[i] = returnsNorm[i] - valuesNorm[i]
	}
	return returnsNorm, valuesNorm, advantagesNorm, nil
}

// DenormalizeValue maps a normalized value back to raw scale using the
// value estimator's current mean and variance.
func (n *Normalizer) DenormalizeValue(vNorm float64) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	std := math.Sqrt(n.valueStat.variance + n.cfg.epsilon)
	return vNorm*std + n.valueStat.mean
}

// GetReturnStats reports the return estimator's current mean,
// variance, and observation count.
func (n *Normalizer) GetReturnStats() Stats {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.returnStat.stats()
}

// GetValueStats reports the value estimator's current mean, variance,
// and observation count.
func (n *Normalizer) GetValueStats() Stats {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.valueStat.stats()
}

func clip(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
