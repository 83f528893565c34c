package starlark

import (
	"fmt"
	"log/slog"
	"time"

	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/loxsh/execution/data"
	"github.com/robbyt/loxsh/internal/helpers"
)

// execResult is a wrapper around the starlark.Value interface
type execResult struct {
	starlarkLib.Value
	execTime time.Duration
	logger   *slog.Logger
}

func newEvalResult(handler slog.Handler, obj starlarkLib.Value, execTime time.Duration) *execResult {
	_, logger := helpers.SetupLogger(handler, "starlark", "execResult")

	if obj == nil {
		obj = starlarkLib.None
	}

	return &execResult{
		Value:    obj,
		execTime: execTime,
		logger:   logger,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s}",
		r.Type(), r.Value, r.GetExecTime())
}

func (r *execResult) Type() data.Types {
	switch r.Value.Type() {
	case "NoneType":
		return data.NONE
	case "bool":
		return data.BOOL
	case "int":
		return data.INT
	case "float":
		return data.FLOAT
	case "string":
		return data.STRING
	case "list":
		return data.LIST
	case "tuple":
		return data.TUPLE
	case "dict":
		return data.MAP
	case "set":
		return data.SET
	case "function", "builtin_function_or_method":
		return data.FUNCTION
	default:
		r.logger.Debug("Unknown type", "type", r.Value.Type())
		return data.ERROR
	}
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

func (r *execResult) Inspect() string {
	return r.Value.String()
}

// Interface returns the Go native type for the Starlark value
func (r *execResult) Interface() any {
	v, err := convertStarlarkValueToInterface(r.Value)
	if err != nil {
		r.logger.Error("Failed to convert Starlark value to interface", "error", err)
		return nil
	}
	return v
}
