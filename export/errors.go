package export

import (
	"errors"
	"fmt"
)

var (
	// ErrExport is matched by every failed export.
	ErrExport = errors.New("export: writing the plot failed")

	// ErrUnsupportedFormat is returned for formats without a backend.
	ErrUnsupportedFormat = errors.New("export: unsupported format")
)

// Error reports that both the requested file and the fallback file could
// not be written.
type Error struct {
	Path     string // resolved file name
	Fallback string // fallback file name, empty if no fallback was tried
	Err      error
}

func (e *Error) Error() string {
	if e.Fallback == "" {
		return fmt.Sprintf("export: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("export: %s (fallback %s): %v", e.Path, e.Fallback, e.Err)
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is ErrExport.
func (e *Error) Is(target error) bool { return target == ErrExport }
