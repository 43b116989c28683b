package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"

	"github.com/five82/progressdash/internal/config"
	"github.com/five82/progressdash/internal/state"
	"github.com/five82/progressdash/internal/ui"
)

// Options configure the dashboard. Non-zero fields override the config file.
type Options struct {
	ConfigPath     string
	SourcePath     string
	RefreshSeconds int
	LogFile        string
	Debug          bool
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = resolve(cfg, opts)

	logger, closeLog, err := newLogger(cfg.LogFile, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	interval := cfg.RefreshInterval()
	logger.Info("starting dashboard", "source", cfg.SourcePath, "refresh", interval)

	err = ui.Run(ui.Options{
		Context:    ctx,
		SourcePath: cfg.SourcePath,
		Interval:   interval,
		Tracker:    state.NewTracker(interval, logger),
		Logger:     logger,
	})
	if err != nil {
		logger.Error("dashboard stopped", "error", err)
		return err
	}
	logger.Info("dashboard stopped")
	return nil
}

// resolve applies command-line overrides on top of the file settings.
func resolve(cfg config.Config, opts Options) config.Config {
	if opts.SourcePath != "" {
		cfg.SourcePath = opts.SourcePath
	}
	if opts.RefreshSeconds > 0 {
		cfg.RefreshSeconds = opts.RefreshSeconds
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	return cfg
}

// newLogger returns a tint logger writing to path. The terminal belongs to
// the UI, so an empty path discards log output.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return slog.New(newHandler(file, debug)), func() { _ = file.Close() }, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    true,
	})
}
