package expr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the expr package.
var (
	// ErrInvalidExpression is matched by every parse failure.
	ErrInvalidExpression = errors.New("expr: invalid expression")

	// ErrMalformedEquation is matched when an equation does not split into
	// exactly one left and one right side.
	ErrMalformedEquation = errors.New("expr: malformed equation")

	// ErrCompilation is matched when an expression cannot be compiled over
	// the requested variables.
	ErrCompilation = errors.New("expr: compilation failed")

	// ErrShapeMismatch is returned by Func.Eval for incompatible inputs.
	ErrShapeMismatch = errors.New("expr: input shape mismatch")
)

// SyntaxError reports input that could not be parsed.
// Pos is a byte offset into the normalized input, or -1.
type SyntaxError struct {
	Input string
	Pos   int
	Msg   string

	kind error
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s %q: %s", e.kind, e.Input, e.Msg)
	}
	return fmt.Sprintf("%s %q: %s at position %d", e.kind, e.Input, e.Msg, e.Pos)
}

// Unwrap returns ErrInvalidExpression or ErrMalformedEquation.
func (e *SyntaxError) Unwrap() error {
	return e.kind
}

// CompileError reports a free variable outside the declared set.
type CompileError struct {
	Var  string
	Vars []string
}

func (e *CompileError) Error() string {
	if len(e.Vars) == 0 {
		return fmt.Sprintf("expr: unbound variable %q in constant expression", e.Var)
	}
	return fmt.Sprintf("expr: unbound variable %q (expected %s)", e.Var, strings.Join(e.Vars, ", "))
}

// Unwrap returns ErrCompilation.
func (e *CompileError) Unwrap() error {
	return ErrCompilation
}
