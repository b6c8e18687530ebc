package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/export"
	"github.com/gogpu/ggplot/internal/config"
	"github.com/gogpu/ggplot/internal/logging"
	"github.com/gogpu/ggplot/internal/texenv"
	"github.com/gogpu/ggplot/plot"
)

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"format":      "format",
	"color":       "line_color",
	"legend":      "legend",
	"shade":       "shade_regions",
	"font-size":   "font_size",
	"line-width":  "line_width",
	"dpi":         "dpi",
	"require-tex": "require_tex",
}

// app is the state shared by all commands once flags are parsed.
type app struct {
	v   *viper.Viper
	fs  afero.Fs
	cfg config.Config

	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdFs(afero.NewOsFs())
}

// newRootCmdFs reads the configuration from and writes plots to fs.
func newRootCmdFs(fs afero.Fs) *cobra.Command {
	a := &app{v: viper.New(), fs: fs}
	a.v.SetFs(fs)

	root := &cobra.Command{
		Use:   "ggplot",
		Short: "Plot functions and implicit equations to SVG or PDF",
		Long: `ggplot renders y = f(x) or F(x, y) = 0 as a typeset, labeled plot and
saves it as SVG or PDF. Without a subcommand it starts the interactive
prompt.`,
		Version:           ggplot.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.interactive(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ggplot/config.toml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.Bool("require-tex", false, "exit if latex, dvipng or ghostscript is missing")

	root.AddCommand(
		newInteractiveCmd(a),
		newFunctionCmd(a),
		newEquationCmd(a),
		newSyntaxCmd(),
		newDoctorCmd(),
		newConfigCmd(a),
	)
	return root
}

// setup loads the configuration, installs the logger and checks the TeX
// toolchain when required.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = a.v.BindPFlag(key, f)
		}
	})

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.setupLogger(cfg)
	ggplot.Logger().Debug("configuration", "file", a.v.ConfigFileUsed(), "format", cfg.Format)

	if cfg.RequireTeX {
		return texenv.Require(nil)
	}
	return nil
}

// setupLogger installs the stderr logger at the configured level, or at
// debug level with --verbose.
func (a *app) setupLogger(cfg config.Config) {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	ggplot.SetLogger(logging.New(level))
}

// plotter builds the pipeline from the loaded configuration.
func (a *app) plotter() (*plot.Plotter, error) {
	rc, err := a.cfg.Render()
	if err != nil {
		return nil, err
	}
	return plot.New(
		plot.WithConfig(rc),
		plot.WithExporter(export.New(a.cfg.ExportOptions(a.fs)...)),
		plot.WithLogger(ggplot.Logger()),
	), nil
}

// addStyleFlags registers the flags shared by the plotting commands.
func addStyleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("format", "f", "", "output format: svg or pdf")
	f.String("color", "", "curve color: #RRGGBB or a rainbow position 0-100")
	f.Float64("font-size", 0, "base font size in points")
	f.Float64("line-width", 0, "curve width in points")
	f.Float64("dpi", 0, "resolution of embedded images")
}

func printSaved(cmd *cobra.Command, what, path string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s plotted successfully and saved as '%s'\n", what, path)
}
