package render

import (
	"fmt"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/recording"
)

// Renderer lays out plots with a fixed configuration. It holds no other
// state and may be reused.
type Renderer struct {
	cfg Config
}

// New returns a Renderer for cfg. Zero fields take their defaults.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (r *Renderer) Config() Config { return r.cfg }

// record runs draw on a fresh recorder and converts a panic or error
// into an *Error.
func (r *Renderer) record(plot string, draw func() (*recording.Recording, error)) (rec *recording.Recording, err error) {
	defer func() {
		if p := recover(); p != nil {
			rec, err = nil, &Error{Plot: plot, Err: fmt.Errorf("panic: %v", p)}
		}
		if err != nil {
			ggplot.Logger().Debug("render failed", "plot", plot, "error", err)
		}
	}()
	rec, err = draw()
	if err != nil {
		return nil, &Error{Plot: plot, Err: err}
	}
	return rec, nil
}

func (r *Renderer) metadata(title, latex string) recording.Metadata {
	return recording.Metadata{
		Title:       title,
		Description: latex,
	}
}
