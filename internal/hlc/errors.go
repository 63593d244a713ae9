package hlc

import "errors"

var (
	// ErrOffsetTooGreat reports a remote observation further ahead of
	// the local physical clock than the configured maximum offset.
	ErrOffsetTooGreat = errors.New("offset greater than limit")

	// ErrTimeOutOfRange reports an instant that cannot be represented
	// in the fixed-width tick resolution.
	ErrTimeOutOfRange = errors.New("outside supported time range")
)
