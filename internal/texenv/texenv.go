// Package texenv looks for the external TeX toolchain: latex, dvipng and
// Ghostscript. Plots are typeset without it, so its absence only matters
// when the user asks for it to be required.
package texenv

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrMissing is returned by Require when a tool cannot be found.
var ErrMissing = errors.New("texenv: required LaTeX dependencies are missing")

// Tool is one required program and the executable names it may have.
type Tool struct {
	Name  string
	Names []string
}

// Tools lists the toolchain in report order. Ghostscript is gs on Unix and
// gswin64c or gswin32c on Windows.
var Tools = []Tool{
	{Name: "latex", Names: []string{"latex"}},
	{Name: "dvipng", Names: []string{"dvipng"}},
	{Name: "ghostscript (gs)", Names: []string{"gs", "gswin64c", "gswin32c"}},
}

// Status is the result of looking up one tool.
type Status struct {
	Tool Tool
	Path string // empty when not found
}

// Found reports whether an executable was located.
func (s Status) Found() bool { return s.Path != "" }

// LookPathFunc resolves an executable name, like exec.LookPath.
type LookPathFunc func(name string) (string, error)

// Probe looks up every tool with lookPath, or exec.LookPath when nil.
func Probe(lookPath LookPathFunc) []Status {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	out := make([]Status, 0, len(Tools))
	for _, t := range Tools {
		st := Status{Tool: t}
		for _, name := range t.Names {
			if p, err := lookPath(name); err == nil {
				st.Path = p
				break
			}
		}
		out = append(out, st)
	}
	return out
}

// MissingError lists the tools that were not found.
type MissingError struct {
	Missing []string
}

func (e *MissingError) Error() string {
	var b strings.Builder
	b.WriteString("Error: The following required LaTeX dependencies are missing:\n")
	for _, m := range e.Missing {
		fmt.Fprintf(&b, "  - %s\n", m)
	}
	b.WriteString("\nPlease install them to enable true LaTeX rendering.\n")
	return b.String()
}

// Unwrap returns ErrMissing.
func (e *MissingError) Unwrap() error { return ErrMissing }

// Require returns a *MissingError naming every tool that is missing.
func Require(lookPath LookPathFunc) error {
	var missing []string
	for _, st := range Probe(lookPath) {
		if !st.Found() {
			missing = append(missing, st.Tool.Name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Missing: missing}
	}
	return nil
}
