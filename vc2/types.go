package vc2

// Stats is a snapshot of a running estimator's mean, variance, and
// total observation count, returned for logging by GetReturnStats and
// GetValueStats.
type Stats struct {
	Mean     float64
	Variance float64
	Count    float64
}
