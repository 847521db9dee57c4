package mask

import "errors"

var (
	// ErrNilEnv indicates New was called with a nil wrapped StepEnv.
	ErrNilEnv = errors.New("mask: wrapped StepEnv is nil")

	// ErrNotReset indicates Step was called before Reset.
	ErrNotReset = errors.New("mask: Step called before Reset")
)
