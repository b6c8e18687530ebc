package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot/internal/shell"
	"github.com/gogpu/ggplot/internal/texenv"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report which TeX tools are installed",
		Long: `Report whether latex, dvipng and Ghostscript are on the PATH. Plots are
typeset with the built-in Go fonts and do not need them; --require-tex
makes their absence an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			st := shell.NewStyles(out)
			for _, s := range texenv.Probe(nil) {
				if s.Found() {
					fmt.Fprintf(out, "%s %-18s %s\n", st.Success.Render("ok"), s.Tool.Name, s.Path)
				} else {
					fmt.Fprintf(out, "%s %-18s %s\n", st.Error.Render("--"), s.Tool.Name, st.Muted.Render("not found"))
				}
			}
			return nil
		},
	}
}
