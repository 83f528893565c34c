package engine

import "github.com/robbyt/loxsh/execution/data"

// EvaluatorResponse is the value a machine produced for one program.
type EvaluatorResponse interface {
	// Type of the value.
	Type() data.Types

	// Inspect returns the human readable representation reported to the user.
	Inspect() string

	// Interface converts the value to a native Go value.
	Interface() any
}
