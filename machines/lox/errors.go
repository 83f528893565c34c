package lox

import "errors"

var ErrInvalidTree = errors.New("invalid syntax tree for lox machine")
