package risor

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/robbyt/loxsh/execution/data"
	"github.com/robbyt/loxsh/internal/helpers"
)

// nativeValuer is implemented by Risor objects that wrap a Go value.
type nativeValuer interface {
	Interface() any
}

// execResult wraps the value returned by a Risor evaluation
type execResult struct {
	value    any
	execTime time.Duration
	logger   *slog.Logger
}

func newEvalResult(handler slog.Handler, value any, execTime time.Duration) *execResult {
	_, logger := helpers.SetupLogger(handler, "risor", "execResult")

	if v, ok := value.(nativeValuer); ok {
		value = v.Interface()
	}

	return &execResult{
		value:    value,
		execTime: execTime,
		logger:   logger,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s}",
		r.Type(), r.value, r.GetExecTime())
}

func (r *execResult) Type() data.Types {
	switch r.value.(type) {
	case nil:
		return data.NONE
	case bool:
		return data.BOOL
	case int, int64:
		return data.INT
	case float64:
		return data.FLOAT
	case string:
		return data.STRING
	case []any:
		return data.LIST
	case map[string]any:
		return data.MAP
	default:
		r.logger.Debug("Unknown type", "type", fmt.Sprintf("%T", r.value))
		return data.ERROR
	}
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

func (r *execResult) Inspect() string {
	switch v := r.value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

// Interface returns the Go native value
func (r *execResult) Interface() any {
	return r.value
}
