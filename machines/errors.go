package machines

import "errors"

var (
	ErrUnknownMachine   = errors.New("unknown machine")
	ErrDuplicateMachine = errors.New("machine already registered")
	ErrInvalidMachine   = errors.New("invalid machine registration")
)
