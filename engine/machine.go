package engine

import "context"

// SyntaxTree is the parsed representation of one program unit. Its concrete
// type belongs to the machine that produced it.
type SyntaxTree any

// ParseResult pairs an optional syntax tree with the parse errors collected
// while building it, in source order. A non-nil Tree may coexist with Errors
// when the parser recovered; a nil Tree means there is nothing to interpret.
type ParseResult struct {
	Tree   SyntaxTree
	Errors []error
}

// HasTree reports whether interpretation can be attempted.
func (r ParseResult) HasTree() bool {
	return r.Tree != nil
}

// Parser turns source text into a ParseResult. Parse errors are collected,
// never returned as a Go error, so that all of them can be reported.
type Parser interface {
	Parse(ctx context.Context, source string) ParseResult
}

// Interpreter evaluates a tree produced by the Parser of the same machine.
type Interpreter interface {
	Interpret(ctx context.Context, tree SyntaxTree) (EvaluatorResponse, error)
}

// Machine is one language implementation the shell can drive.
type Machine interface {
	// Name is the registry name, e.g. "lox".
	Name() string
	Parser
	Interpreter
}

// MachineSelector picks the machine for a file, typically by extension.
// It returns nil when the pipeline's own machine should be used.
type MachineSelector interface {
	ForPath(path string) Machine
}

// DumpableTree is implemented by trees whose useful debug view is smaller
// than the tree value itself, such as a compiled program that keeps its
// syntax alongside bytecode.
type DumpableTree interface {
	DumpTree() any
}
