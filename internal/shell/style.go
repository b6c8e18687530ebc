package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles colors the shell output.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles returns styles rendered for w; plain text when w is not a
// color terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
	}
}

// PrintBanner writes the program banner in a gradient.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{"   __ _  __ _ _ __ | | ___ | |_ ", "#818cf8"},
		{"  / _` |/ _` | '_ \\| |/ _ \\| __|", "#a78bfa"},
		{" | (_| | (_| | |_) | | (_) | |_ ", "#c084fc"},
		{"  \\__, |\\__, | .__/|_|\\___/ \\__|", "#e879f9"},
		{"  |___/ |___/|_|                ", "#f472b6"},
	}
	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
