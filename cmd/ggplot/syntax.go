package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot/expr"
)

const syntaxHeader = `# Expression syntax

Expressions use **x** (and **y** in equations) with the usual operators:

| Operator | Meaning |
|---|---|
| ` + "`+ -`" + ` | addition, subtraction |
| ` + "`* /`" + ` | multiplication, division |
| ` + "`%`" + ` | floored remainder |
| ` + "`^` or `**`" + ` | power, right associative |

Multiplication must be written out: ` + "`2*x`" + `, not ` + "`2x`" + `.
Unicode operators such as ` + "`×`, `÷`, `−`, `²`" + ` and full-width characters
are accepted and converted.

Equations have the form ` + "`left = right`" + `. Without ` + "`=`" + ` the
expression is set equal to zero.

## Examples

- ` + "`x^2 + 1`" + `
- ` + "`sin(x)/x`" + `
- ` + "`x^2 + y^2 = 1`" + `
- ` + "`y^2 = x^3 - x`" + `
`

// syntaxMarkdown returns the reference with the current function and
// constant names.
func syntaxMarkdown() string {
	var b strings.Builder
	b.WriteString(syntaxHeader)
	b.WriteString("\n## Functions\n\n")
	for _, name := range expr.Builtins() {
		fmt.Fprintf(&b, "`%s` ", name)
	}
	b.WriteString("\n\n## Constants\n\n")
	for _, name := range expr.Constants() {
		fmt.Fprintf(&b, "`%s` ", name)
	}
	b.WriteString("\n")
	return b.String()
}

func newSyntaxCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "syntax",
		Short: "Show the expression syntax reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			md := syntaxMarkdown()
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source")
	return cmd
}
