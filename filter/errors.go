package filter

import (
	"fmt"
)

type (
	// CompilationError indicates a filter expression could not be compiled.
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a compiled filter failed at runtime,
	// usually because an expression mixed incompatible types.
	EvaluationError struct {
		Expression string
		Title      string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error in '%s' on '%s': %v", e.Expression, e.Title, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
