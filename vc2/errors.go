package vc2

import "errors"

// ErrLengthMismatch indicates Normalize was called with returns and
// values batches of different lengths.
var ErrLengthMismatch = errors.New("vc2: returns and values batches have different lengths")
