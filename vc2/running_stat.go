package vc2

import "gonum.org/v1/gonum/stat"

// runningStat is a Welford batched-update running estimator of a
// scalar's mean and variance, initialized at mean=0, variance=1,
// count=0. The initial variance only applies before the first update:
// the merge weights it by the zero count, so it does not carry over.
type runningStat struct {
	mean     float64
	variance float64
	count    float64
}

func newRunningStat() runningStat {
	return runningStat{mean: 0, variance: 1, count: 0}
}

// update merges a batch of observations into the estimator using
// gonum's population mean/variance for the batch's own statistics,
// then Welford's parallel-merge formula to fold them into the running
// estimate. An empty batch is a no-op.
func (rs *runningStat) update(values []float64) {
	if len(values) == 0 {
		return
	}
	batchMean, batchVar := stat.PopMeanVariance(values, nil)
	batchCount := float64(len(values))

	delta := batchMean - rs.mean
	totalCount := rs.count + batchCount
	newMean := rs.mean + delta*(batchCount/totalCount)
	m2 := rs.variance*rs.count + batchVar*batchCount + delta*delta*(rs.count*batchCount/totalCount)

	rs.mean = newMean
	rs.variance = m2 / totalCount
	rs.count = totalCount
}

func (rs runningStat) stats() Stats {
	return Stats{Mean: rs.mean, Variance: rs.variance, Count: rs.count}
}
