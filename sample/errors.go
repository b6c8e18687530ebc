package sample

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sample package.
var (
	// ErrInvalidRange is matched by every range validation failure.
	ErrInvalidRange = errors.New("sample: invalid range")

	// ErrEvaluation is matched when an evaluator fails as a whole.
	ErrEvaluation = errors.New("sample: evaluation failed")
)

// RangeError reports a range with Min >= Max or a non-finite bound.
type RangeError struct {
	Axis  string
	Range Range
}

func (e *RangeError) Error() string {
	r := e.Range
	if !isFinite(r.Min) || !isFinite(r.Max) {
		return fmt.Sprintf("sample: %s range [%v, %v] must be finite", e.Axis, r.Min, r.Max)
	}
	return fmt.Sprintf("sample: minimum %s value must be less than maximum %s value (got %v >= %v)",
		e.Axis, e.Axis, r.Min, r.Max)
}

// Unwrap returns ErrInvalidRange.
func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// EvaluationError wraps a failure of the evaluator itself.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("sample: evaluation failed: %v", e.Err)
}

// Unwrap returns both ErrEvaluation and the underlying error.
func (e *EvaluationError) Unwrap() []error { return []error{ErrEvaluation, e.Err} }
