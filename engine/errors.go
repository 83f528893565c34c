package engine

import "errors"

var (
	ErrMachineNil  = errors.New("machine is nil")
	ErrReporterNil = errors.New("reporter is nil")
)
