package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/robbyt/loxsh/execution/data"
)

// EvaluatorResponse is a mock implementation of the engine.EvaluatorResponse interface.
type EvaluatorResponse struct {
	mock.Mock
}

// Type returns a mockable Type.
func (m *EvaluatorResponse) Type() data.Types {
	args := m.Called()
	val := args.Get(0)

	switch val.(type) {
	case bool:
		return data.BOOL
	case float64:
		return data.NUMBER
	case string:
		return data.STRING
	case nil:
		return data.NONE
	default:
		// If the mock was set up with a data.Types directly, return it
		if t, ok := val.(data.Types); ok {
			return t
		}
		panic("unknown type")
	}
}

// Inspect returns a mockable string.
func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

// Interface returns a mockable value of "any" type, and must be type asserted to the correct type.
func (m *EvaluatorResponse) Interface() any {
	args := m.Called()
	return args.Get(0)
}

// NewValue returns a response that inspects as inspect and reports type typ.
func NewValue(inspect string, typ data.Types) *EvaluatorResponse {
	m := new(EvaluatorResponse)
	m.On("Inspect").Return(inspect).Maybe()
	m.On("Type").Return(typ).Maybe()
	return m
}
