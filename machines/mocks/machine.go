package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/robbyt/loxsh/engine"
)

// Machine is a mock implementation of engine.Machine for testing purposes.
type Machine struct {
	mock.Mock
}

// Name is a mock implementation of the Name method.
func (m *Machine) Name() string {
	args := m.Called()
	return args.String(0)
}

// Parse is a mock implementation of the Parse method.
func (m *Machine) Parse(ctx context.Context, source string) engine.ParseResult {
	args := m.Called(ctx, source)
	return args.Get(0).(engine.ParseResult)
}

// Interpret is a mock implementation of the Interpret method.
func (m *Machine) Interpret(ctx context.Context, tree engine.SyntaxTree) (engine.EvaluatorResponse, error) {
	args := m.Called(ctx, tree)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(engine.EvaluatorResponse), args.Error(1)
}

// Selector is a mock implementation of engine.MachineSelector.
type Selector struct {
	mock.Mock
}

// ForPath is a mock implementation of the ForPath method.
func (m *Selector) ForPath(path string) engine.Machine {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(engine.Machine)
}
