// Command ggplot plots functions and implicit equations to SVG or PDF.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gogpu/ggplot/internal/texenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var missing *texenv.MissingError
		if errors.As(err, &missing) {
			fmt.Fprint(os.Stderr, missing.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
