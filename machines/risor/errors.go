package risor

import "errors"

var (
	ErrInvalidTree = errors.New("risor tree is invalid")
	ErrExecution   = errors.New("risor execution error")
)
