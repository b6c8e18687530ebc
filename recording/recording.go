package recording

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/gogpu/ggplot"
)

// ErrMissingResource is returned by Playback when a command refers to a
// resource that is not in the pool.
var ErrMissingResource = errors.New("recording: missing resource")

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend any number of times.
type Recording struct {
	width, height vg.Length
	commands      []Command
	resources     *ResourcePool
	bounds        ggplot.Rect
	metadata      Metadata
}

// Size returns the size of the recording canvas.
func (r *Recording) Size() (w, h vg.Length) { return r.width, r.height }

// Commands returns the recorded commands. Callers must not modify them.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Metadata returns the document metadata.
func (r *Recording) Metadata() Metadata { return r.metadata }

// Bounds returns the canvas area covered by painted content, in points
// with y pointing up. It is empty for a blank recording.
func (r *Recording) Bounds() ggplot.Rect { return r.bounds }

// PlaybackOption configures a Playback call.
type PlaybackOption func(*playbackConfig)

type playbackConfig struct {
	tight      bool
	padding    float64
	dpi        float64
	background color.Color
}

// Tight crops the page to the painted bounds grown by padding points.
func Tight(padding float64) PlaybackOption {
	return func(c *playbackConfig) {
		c.tight = true
		c.padding = padding
	}
}

// DPI sets the resolution embedded images are resampled to.
func DPI(dpi float64) PlaybackOption {
	return func(c *playbackConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// Background fills the whole page with c before replaying.
func Background(c color.Color) PlaybackOption {
	return func(cfg *playbackConfig) {
		cfg.background = c
	}
}

func (r *Recording) config(opts []PlaybackOption) playbackConfig {
	cfg := playbackConfig{dpi: 72}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Frame returns the frame Playback would hand to a backend.
func (r *Recording) Frame(opts ...PlaybackOption) Frame {
	return r.frame(r.config(opts))
}

func (r *Recording) frame(cfg playbackConfig) Frame {
	viewport := ggplot.Rect{W: r.width.Points(), H: r.height.Points()}
	if cfg.tight && !r.bounds.IsEmpty() {
		viewport = r.bounds.Inset(-cfg.padding)
	}
	return Frame{Viewport: viewport, DPI: cfg.dpi, Metadata: r.metadata}
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend, opts ...PlaybackOption) error {
	cfg := r.config(opts)
	frame := r.frame(cfg)
	c, err := backend.Begin(frame)
	if err != nil {
		return err
	}

	c.Push()
	if cfg.background != nil {
		w, h := frame.PageSize()
		c.SetColor(cfg.background)
		c.Fill(vg.Rectangle{Max: vg.Point{X: w, Y: h}}.Path())
	}
	c.Translate(vg.Point{X: vg.Points(-frame.Viewport.X), Y: vg.Points(-frame.Viewport.Y)})
	for i, cmd := range r.commands {
		if err := r.replay(c, cmd, frame.DPI); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	c.Pop()

	return backend.End()
}

func (r *Recording) replay(c vg.Canvas, cmd Command, dpi float64) error {
	switch cmd := cmd.(type) {
	case PushCommand:
		c.Push()
	case PopCommand:
		c.Pop()
	case SetLineWidthCommand:
		c.SetLineWidth(cmd.Width)
	case SetLineDashCommand:
		c.SetLineDash(cmd.Dashes, cmd.Offset)
	case SetColorCommand:
		c.SetColor(cmd.Color)
	case TranslateCommand:
		c.Translate(cmd.Offset)
	case RotateCommand:
		c.Rotate(cmd.Angle)
	case ScaleCommand:
		c.Scale(cmd.X, cmd.Y)
	case StrokeCommand:
		path := r.resources.GetPath(cmd.Path)
		if path == nil {
			return ErrMissingResource
		}
		c.Stroke(path)
	case FillCommand:
		path := r.resources.GetPath(cmd.Path)
		if path == nil {
			return ErrMissingResource
		}
		c.Fill(path)
	case FillStringCommand:
		face, ok := r.resources.GetFace(cmd.Face)
		if !ok {
			return ErrMissingResource
		}
		c.FillString(face, cmd.At, cmd.Text)
	case DrawImageCommand:
		img := r.resources.GetImage(cmd.Image)
		if img == nil {
			return ErrMissingResource
		}
		c.DrawImage(cmd.Rect, ResampleImage(img, cmd.Rect, dpi))
	}
	return nil
}
