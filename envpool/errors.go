package envpool

import "errors"

var (
	// ErrNoWorkers indicates New was called with a non-positive worker
	// count.
	ErrNoWorkers = errors.New("envpool: worker count must be positive")

	// ErrNilFactory indicates New was called with a nil env factory.
	ErrNilFactory = errors.New("envpool: factory must not be nil")

	// ErrNilPolicy indicates RunEpisodes was called with a nil policy.
	ErrNilPolicy = errors.New("envpool: policy must not be nil")
)
