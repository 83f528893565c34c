package options

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrConfigFile    = errors.New("cannot load config file")
)
