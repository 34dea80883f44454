package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marben/mandel_bmp/internal/logger"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries state shared by subcommands.
type app struct {
	debug bool
	log   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:          "mandel",
		Short:        "Render the Mandelbrot set as ASCII art, a BMP file or in the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logger.New(logger.Config{Out: cmd.ErrOrStderr(), Debug: a.debug})
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		asciiCmd(a),
		bmpCmd(a),
		viewCmd(a),
	)
	return cmd
}
