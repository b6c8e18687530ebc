package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/recording"

	// Output formats.
	_ "github.com/gogpu/ggplot/recording/backends/pdf"
	_ "github.com/gogpu/ggplot/recording/backends/svg"
)

// Output defaults: 0.2 in of padding around the drawn content and 300 dpi
// for embedded images.
const (
	DefaultPadding = 14.4
	DefaultDPI     = 300
)

// Formats returns the supported output formats.
func Formats() []string {
	return []string{"svg", "pdf"}
}

// Request describes one export.
type Request struct {
	Filename string
	Format   string
	Artifact *recording.Recording

	// Source is the text the user plotted. It seeds the fallback name.
	Source string
}

// Result reports where the plot was written.
type Result struct {
	Path     string
	FellBack bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithFs writes through fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(e *Exporter) {
		if fs != nil {
			e.fs = fs
		}
	}
}

// WithPadding sets the padding around the drawn content in points.
func WithPadding(points float64) Option {
	return func(e *Exporter) {
		if points >= 0 {
			e.padding = points
		}
	}
}

// WithDPI sets the resolution embedded images are resampled to.
func WithDPI(dpi float64) Option {
	return func(e *Exporter) {
		if dpi > 0 {
			e.dpi = dpi
		}
	}
}

// Exporter writes recordings to files.
type Exporter struct {
	fs      afero.Fs
	padding float64
	dpi     float64
}

// New returns an Exporter writing to the OS filesystem unless configured
// otherwise.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		fs:      afero.NewOsFs(),
		padding: DefaultPadding,
		dpi:     DefaultDPI,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fs returns the filesystem the exporter writes to.
func (e *Exporter) Fs() afero.Fs { return e.fs }

// Exists reports whether name exists on the exporter's filesystem.
func (e *Exporter) Exists(name string) bool {
	_, err := e.fs.Stat(name)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// Export writes req.Artifact cropped to its content on a white page. If writing the
// resolved file fails, one attempt is made under FallbackName; if that
// fails too, the error is an *Error.
func (e *Exporter) Export(req Request) (Result, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if !isFormat(format) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, req.Format)
	}
	name := ResolveFilename(req.Filename, format, e.Exists)
	if req.Artifact == nil {
		return Result{}, &Error{Path: name, Err: errors.New("no plot to export")}
	}

	err := e.write(name, format, req.Artifact)
	if err == nil {
		ggplot.Logger().Debug("exported plot", "path", name, "format", format)
		return Result{Path: name}, nil
	}

	fallback := FallbackName(req.Source, format)
	ggplot.Logger().Warn("export failed, trying fallback name",
		"path", name, "fallback", fallback, "error", err)
	if ferr := e.write(fallback, format, req.Artifact); ferr != nil {
		return Result{}, &Error{Path: name, Fallback: fallback, Err: errors.Join(err, ferr)}
	}
	return Result{Path: fallback, FellBack: true}, nil
}

// write plays rec into a fresh backend and stores the document only once
// it is complete.
func (e *Exporter) write(name, format string, rec *recording.Recording) error {
	b, err := recording.NewBackend(format)
	if err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("%w: %s backend cannot write files", ErrUnsupportedFormat, format)
	}
	err = rec.Playback(wb,
		recording.Tight(e.padding),
		recording.DPI(e.dpi),
		recording.Background(color.White))
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	var buf bytes.Buffer
	if _, err := wb.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return afero.WriteFile(e.fs, name, buf.Bytes(), 0o644)
}

func isFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return recording.IsRegistered(format)
		}
	}
	return false
}
