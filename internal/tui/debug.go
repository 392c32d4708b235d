package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/lanes/internal/config"
)

// DebugLog is an open debug log sink.
type DebugLog struct {
	Logger *log.Logger
	Path   string
	file   *os.File
}

// OpenDebugLog creates the logger the TUI writes gesture, mutation and zoom
// events to. When disabled the logger discards everything; otherwise it
// appends logfmt records to cfg.File.
func OpenDebugLog(enabled bool, cfg config.LoggingConfig) (*DebugLog, error) {
	if !enabled {
		return &DebugLog{Logger: log.New(io.Discard)}, nil
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating debug log dir: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "lanes",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	logger.Info("debug start", "log_file", cfg.File)

	return &DebugLog{Logger: logger, Path: cfg.File, file: f}, nil
}

// Close closes the log file, if any.
func (d *DebugLog) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	d.Logger.Info("debug end")
	return d.file.Close()
}

// logKeyPress logs a key press event.
func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.logger.Debug("key press", "key", msg.String(), "mode", m.mode)
}

// logMouse logs mouse events that start or end gestures. Motion is too
// chatty to log.
func (m Model) logMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionMotion {
		return
	}
	m.logger.Debug("mouse", "action", msg.Action, "button", msg.Button, "x", msg.X, "y", msg.Y)
}
