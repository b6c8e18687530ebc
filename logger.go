package ggplot

import (
	"log/slog"
	"sync/atomic"
)

var (
	discard = slog.New(slog.DiscardHandler)
	current atomic.Pointer[slog.Logger]
)

// SetLogger installs the logger shared by ggplot and its sub-packages.
// Nothing is logged until it is called; nil restores that silence.
//
// Levels:
//   - [slog.LevelDebug]: sample counts, non-finite samples, contour
//     lines, resolved filenames, completed exports
//   - [slog.LevelWarn]: an export that fell back to a generated name
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discard
}
