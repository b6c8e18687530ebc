package render

import (
	"errors"
	"fmt"
)

// ErrRender is matched by every rendering failure.
var ErrRender = errors.New("render: rendering failed")

// ErrUnknownPlacement is returned by ParseLegendPlacement.
var ErrUnknownPlacement = errors.New("render: unknown legend placement")

// Error reports a failure while drawing a plot. No recording is produced.
type Error struct {
	Plot string // "function" or "equation"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render: %s plot: %v", e.Plot, e.Err)
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is ErrRender.
func (e *Error) Is(target error) bool { return target == ErrRender }
