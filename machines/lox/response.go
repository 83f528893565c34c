package lox

import (
	"fmt"

	"github.com/robbyt/loxsh/execution/data"
	"github.com/robbyt/loxsh/machines/lox/interpreter"
)

// execResult wraps a Lox runtime value.
type execResult struct {
	value any
}

func newEvalResult(value any) *execResult {
	return &execResult{value: value}
}

func (r *execResult) String() string {
	return fmt.Sprintf("ExecResult{Type: %s, Value: %s}", r.Type(), r.Inspect())
}

func (r *execResult) Type() data.Types {
	switch r.value.(type) {
	case nil:
		return data.NONE
	case bool:
		return data.BOOL
	case float64:
		return data.NUMBER
	case string:
		return data.STRING
	default:
		return data.ERROR
	}
}

func (r *execResult) Inspect() string {
	return interpreter.Stringify(r.value)
}

func (r *execResult) Interface() any {
	return r.value
}
