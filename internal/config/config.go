package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the dashboard settings that can live in a file.
type Config struct {
	SourcePath     string
	RefreshSeconds int
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/progressdash/config.toml"
	defaultSourcePath     = "PROGRESS.toml"
	defaultRefreshSeconds = 10
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{SourcePath: defaultSourcePath, RefreshSeconds: defaultRefreshSeconds}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SourcePath     string `toml:"source_path"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if source := strings.TrimSpace(raw.SourcePath); source != "" {
		cfg.SourcePath = expandHome(source)
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshSeconds = raw.RefreshSeconds
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = expandHome(logFile)
	}

	return cfg, nil
}

// RefreshInterval returns the reload interval, using the default for
// non-positive values.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshSeconds <= 0 {
		return defaultRefreshSeconds * time.Second
	}
	return time.Duration(c.RefreshSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// expandHome replaces a leading ~ with the home directory. Relative paths
// stay relative so the header shows what the user typed.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
