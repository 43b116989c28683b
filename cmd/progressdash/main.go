package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/five82/progressdash/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintf(w, "progressdash: %v\n", err)
		}),
	); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "progressdash [flags] [source]",
		Short: "Live dashboard for a PROGRESS.toml event log",
		Long: `progressdash re-reads a TOML progress log on a fixed interval and shows
its events newest first. Select an event with the arrow keys and press enter
to read every field.`,
		Example: `  # Watch PROGRESS.toml in the current directory
  progressdash

  # Watch another file, reloading every 2 seconds
  progressdash --refresh 2 docs/PROGRESS.toml

  # Write debug logs while the dashboard runs
  progressdash --debug --log-file /tmp/progressdash.log`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.SourcePath = args[0]
			}
			if opts.RefreshSeconds < 0 {
				return fmt.Errorf("--refresh must be positive, got %d", opts.RefreshSeconds)
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/progressdash/config.toml)")
	cmd.Flags().IntVar(&opts.RefreshSeconds, "refresh", 0, "reload interval in seconds (default 10)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	cmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "enable debug logging")

	return cmd
}
