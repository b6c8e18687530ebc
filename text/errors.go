package text

import (
	"errors"
	"fmt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// FontParseError reports a font file that could not be parsed.
type FontParseError struct {
	Name string
	Err  error
}

func (e *FontParseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("text: parse font: %v", e.Err)
	}
	return fmt.Sprintf("text: parse font %q: %v", e.Name, e.Err)
}

func (e *FontParseError) Unwrap() error {
	return e.Err
}
