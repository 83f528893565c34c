package starlark

import "errors"

var (
	ErrInvalidTree = errors.New("starlark tree is invalid")
	ErrExecution   = errors.New("starlark execution error")
)
