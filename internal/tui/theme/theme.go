// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Ruler, sidebar, alternate tracks
	BgSelection string `toml:"bg_selection"` // Selected clip outline, cursor
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Grid lines, weekend labels
	Accent      string `toml:"accent"`       // Title, primary accent, borders
	Guide       string `toml:"guide"`        // Snap guides while dragging
	Aligned     string `toml:"aligned"`      // Guides that line up with another clip
	Warning     string `toml:"warning"`      // Status errors, delete confirmations

	// Modal palette (can override base theme values)
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// DefaultName is the theme used when none is configured or the configured one
// is unknown.
const DefaultName = "mocha"

// Load reads a theme from the embedded files. Unknown names load DefaultName.
func Load(name string) (*Theme, error) {
	name = resolveName(name)
	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()
	return &t, nil
}

func resolveName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		return DefaultName
	}
	return name
}

// applyDefaults derives the optional roles. Guides fall back to the muted
// grid color and aligned guides to the accent.
func (t *Theme) applyDefaults() {
	if t.Guide == "" {
		t.Guide = t.FgMuted
	}
	if t.Aligned == "" {
		t.Aligned = t.Accent
	}
	if t.BaseBg == "" {
		t.BaseBg = coalesce(t.BgHighlight, t.Bg)
	}
	if t.ModalBorder == "" {
		t.ModalBorder = t.Accent
	}
	if t.TextPrimary == "" {
		t.TextPrimary = t.Fg
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	if t.Highlight == "" {
		t.Highlight = coalesce(t.BgSelection, t.Accent)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names, dark themes first.
func Available() []string {
	return []string{DefaultName, "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
