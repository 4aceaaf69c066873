package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/keabank/internal/config"
	"github.com/pterm/pterm"
)

// ParseLevel maps a config level name to a pterm log level
func ParseLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "", "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelWarn, fmt.Errorf("unknown log level '%s'", level)
	}
}

// New builds the application logger. Without a log file it writes colorful
// lines to stderr; with one it appends JSON lines to that file.
// The returned closer must be called on shutdown.
func New(cfg config.LogConfig) (*pterm.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		l := pterm.DefaultLogger.WithLevel(level).WithWriter(os.Stderr)
		return l, func() error { return nil }, nil
	}

	path, err := config.ExpandPath(cfg.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to expand log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("can not create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := pterm.DefaultLogger.
		WithLevel(level).
		WithWriter(f).
		WithFormatter(pterm.LogFormatterJSON)
	return l, f.Close, nil
}

// Discard returns a logger that drops everything
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}
