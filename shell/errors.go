package shell

import "errors"

var (
	ErrConfigNil   = errors.New("shell config is nil")
	ErrRunnerNil   = errors.New("shell runner is nil")
	ErrReporterNil = errors.New("shell reporter is nil")
	ErrReadInput   = errors.New("cannot read input")
)
