// Package config loads the ggplot settings from a TOML file, GGPLOT_*
// environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/export"
	"github.com/gogpu/ggplot/render"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "GGPLOT"

// ErrInvalid is returned for settings that cannot be applied.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every persistent setting.
type Config struct {
	// Format is the default output format, "svg" or "pdf".
	Format string `toml:"format" mapstructure:"format"`

	// LineColor is "#RRGGBB" or a rainbow slider position from 0 to 100.
	LineColor string `toml:"line_color" mapstructure:"line_color"`

	// Legend is a legend placement name, "auto" by default.
	Legend string `toml:"legend" mapstructure:"legend"`

	FontSize  float64 `toml:"font_size" mapstructure:"font_size"`
	LineWidth float64 `toml:"line_width" mapstructure:"line_width"`

	// Padding around the exported content, in inches.
	Padding float64 `toml:"padding" mapstructure:"padding"`

	// DPI for embedded raster images.
	DPI float64 `toml:"dpi" mapstructure:"dpi"`

	ShadeRegions bool `toml:"shade_regions" mapstructure:"shade_regions"`

	// RequireTeX makes a missing TeX toolchain fatal at startup.
	RequireTeX bool `toml:"require_tex" mapstructure:"require_tex"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level" mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	d := render.DefaultConfig()
	return Config{
		Format:    "svg",
		LineColor: d.LineColor.HexString(),
		Legend:    string(d.Legend),
		FontSize:  d.FontSize,
		LineWidth: d.LineWidth,
		Padding:   export.DefaultPadding / 72,
		DPI:       export.DefaultDPI,
		LogLevel:  "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ggplot/config.toml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ggplot", "config.toml"), nil
}

// SetDefaults registers the defaults of every key on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("line_color", d.LineColor)
	v.SetDefault("legend", d.Legend)
	v.SetDefault("font_size", d.FontSize)
	v.SetDefault("line_width", d.LineWidth)
	v.SetDefault("padding", d.Padding)
	v.SetDefault("dpi", d.DPI)
	v.SetDefault("shade_regions", d.ShadeRegions)
	v.SetDefault("require_tex", d.RequireTeX)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads path into v, or the default path when path is empty, and
// returns the merged settings. A missing default file is not an error; a
// missing explicit file is. Flags bound to v beforehand take precedence.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		switch {
		case err == nil:
			ggplot.Logger().Debug("loaded config", "path", path)
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting that has a restricted set of values.
func (c Config) Validate() error {
	if _, err := c.Render(); err != nil {
		return err
	}
	if !isFormat(c.Format) {
		return fmt.Errorf("%w: format %q (want %s)", ErrInvalid, c.Format, strings.Join(export.Formats(), " or "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Padding < 0 || c.DPI <= 0 {
		return fmt.Errorf("%w: padding %g in, dpi %g", ErrInvalid, c.Padding, c.DPI)
	}
	return nil
}

// Render returns the rendering configuration.
func (c Config) Render() (render.Config, error) {
	rc := render.DefaultConfig()
	color, err := ParseColor(c.LineColor)
	if err != nil {
		return rc, err
	}
	legend, err := render.ParseLegendPlacement(c.Legend)
	if err != nil {
		return rc, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	rc.LineColor = color
	rc.Legend = legend
	rc.ShadeRegions = c.ShadeRegions
	if c.FontSize > 0 {
		rc.FontSize = c.FontSize
	}
	if c.LineWidth > 0 {
		rc.LineWidth = c.LineWidth
	}
	return rc, nil
}

// ExportOptions returns the exporter options for fs.
func (c Config) ExportOptions(fs afero.Fs) []export.Option {
	return []export.Option{
		export.WithFs(fs),
		export.WithPadding(c.Padding * 72),
		export.WithDPI(c.DPI),
	}
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// ParseColor accepts "#RRGGBB" or a slider position from 0 to 100 on
// the rainbow colormap. An empty string is the default blue.
func ParseColor(s string) (ggplot.RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return render.DefaultConfig().LineColor, nil
	case strings.HasPrefix(s, "#"):
		c, err := ggplot.ParseHex(s)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return c, nil
	}
	pos, err := strconv.ParseFloat(s, 64)
	if err != nil || pos < 0 || pos > 100 {
		return ggplot.RGBA{}, fmt.Errorf("%w: line color %q (want #RRGGBB or 0-100)", ErrInvalid, s)
	}
	return ggplot.SliderColor(pos), nil
}

func isFormat(f string) bool {
	for _, known := range export.Formats() {
		if strings.EqualFold(f, known) {
			return true
		}
	}
	return false
}
