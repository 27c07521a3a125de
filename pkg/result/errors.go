package result

import "errors"

var (
	// ErrPanic is the cause attached to failures recovered from a panic.
	ErrPanic = errors.New("result: computation panicked")

	// ErrTimeout is the cause attached when AwaitTimeout gives up waiting.
	ErrTimeout = errors.New("result: timed out waiting for computation")
)
