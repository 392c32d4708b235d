// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Timeline    TimelineConfig    `toml:"timeline"`
	Groups      []GroupConfig     `toml:"groups"`
	Clips       []ClipConfig      `toml:"clips"`
	Interaction InteractionConfig `toml:"interaction"`
	UI          UIConfig          `toml:"ui"`
	Logging     LoggingConfig     `toml:"logging"`
}

// TimelineConfig holds the extent and initial zoom of the timeline.
type TimelineConfig struct {
	StartDate   string  `toml:"start_date"`   // "YYYY-MM-DD", empty means this week's Monday
	Days        int     `toml:"days"`         // Number of days shown
	DayWidth    float64 `toml:"day_width"`    // Cells per day
	TrackHeight float64 `toml:"track_height"` // Rows per track
}

// GroupConfig describes one track.
type GroupConfig struct {
	Name  string `toml:"name"`
	Icon  string `toml:"icon"`
	Color string `toml:"color"` // "#rrggbb"
}

// ClipConfig describes a clip the editor starts with.
type ClipConfig struct {
	Label    string  `toml:"label"`
	Track    int     `toml:"track"`
	Day      int     `toml:"day"`
	Hour     float64 `toml:"hour"`
	Duration float64 `toml:"duration"` // Hours
}

// InteractionConfig holds autoscroll settings per gesture kind.
type InteractionConfig struct {
	DragAutoscrollMargin   float64 `toml:"drag_autoscroll_margin"`
	DragAutoscrollSpeed    float64 `toml:"drag_autoscroll_speed"`
	ResizeAutoscrollMargin float64 `toml:"resize_autoscroll_margin"`
	ResizeAutoscrollSpeed  float64 `toml:"resize_autoscroll_speed"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// LoggingConfig holds debug log settings.
type LoggingConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	File  string `toml:"file"`  // Debug log path, used with --debug
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			StartDate:   "",
			Days:        14,
			DayWidth:    48,
			TrackHeight: 3,
		},
		Groups: []GroupConfig{
			{Name: "Video", Icon: "film", Color: "#3949ab"},
			{Name: "Audio", Icon: "music", Color: "#00897b"},
			{Name: "Titles", Icon: "type", Color: "#8e24aa"},
		},
		Interaction: InteractionConfig{
			DragAutoscrollMargin:   3,
			DragAutoscrollSpeed:    4,
			ResizeAutoscrollMargin: 2,
			ResizeAutoscrollSpeed:  2,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Logging: LoggingConfig{
			Level: "debug",
			File:  "lanes-debug.log",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "lanes", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Logging.File = expandPath(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	// A file that declares groups replaces the default ones.
	var probe struct {
		Groups []GroupConfig `toml:"groups"`
	}
	if err := toml.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if len(probe.Groups) > 0 {
		cfg.Groups = nil
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LANES_START_DATE"); v != "" {
		cfg.Timeline.StartDate = v
	}
	if v := os.Getenv("LANES_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LANES_DAYS: %w", err)
		}
		cfg.Timeline.Days = n
	}
	if v := os.Getenv("LANES_DAY_WIDTH"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LANES_DAY_WIDTH: %w", err)
		}
		cfg.Timeline.DayWidth = f
	}
	if v := os.Getenv("LANES_TRACK_HEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LANES_TRACK_HEIGHT: %w", err)
		}
		cfg.Timeline.TrackHeight = f
	}

	// UI overrides
	if v := os.Getenv("LANES_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	// Logging overrides
	if v := os.Getenv("LANES_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LANES_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeline.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Timeline.StartDate); err != nil {
			return fmt.Errorf("start_date must be in YYYY-MM-DD format, got %q", c.Timeline.StartDate)
		}
	}
	if c.Timeline.Days <= 0 {
		return errors.New("days must be positive")
	}
	if c.Timeline.DayWidth <= 0 {
		return errors.New("day_width must be positive")
	}
	if c.Timeline.TrackHeight <= 0 {
		return errors.New("track_height must be positive")
	}

	if len(c.Groups) == 0 {
		return errors.New("at least one group must be configured")
	}
	for i, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("group %d: name must be set", i)
		}
		if g.Color != "" && !isHexColor(g.Color) {
			return fmt.Errorf("group %q: color must be #rrggbb, got %q", g.Name, g.Color)
		}
	}

	for i, cl := range c.Clips {
		if cl.Track < 0 || cl.Track >= len(c.Groups) {
			return fmt.Errorf("clip %d: track %d out of range", i, cl.Track)
		}
		if cl.Day < 0 || cl.Hour < 0 {
			return fmt.Errorf("clip %d: day and hour must not be negative", i)
		}
		if cl.Duration <= 0 {
			return fmt.Errorf("clip %d: duration must be positive", i)
		}
	}

	if c.Interaction.DragAutoscrollMargin < 0 || c.Interaction.DragAutoscrollSpeed < 0 ||
		c.Interaction.ResizeAutoscrollMargin < 0 || c.Interaction.ResizeAutoscrollSpeed < 0 {
		return errors.New("autoscroll margin and speed must not be negative")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
