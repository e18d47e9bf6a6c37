package lifecycle

import "errors"

var (
	ErrListen        = errors.New("failed to start listener")
	ErrDrainDeadline = errors.New("drain deadline exceeded")
	ErrPanic         = errors.New("recovered panic")
)
