package ui

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/lanes/internal/config"
)

func TestRunConfigInteractive(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name      string
		input     string
		wantDays  int
		wantTheme string
	}{
		{name: "keep defaults", input: "n\n", wantDays: 14, wantTheme: "mocha"},
		{name: "edit values", input: "y\n\nseven\n7\n\n\nnope\nlatte\n", wantDays: 7, wantTheme: "latte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runConfigInteractive(strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("config: %v", err)
			}

			cfg, err := config.LoadFrom(filepath.Join(home, ".config", "lanes", "config.toml"))
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			if cfg.Timeline.Days != tt.wantDays {
				t.Errorf("days = %d, want %d", cfg.Timeline.Days, tt.wantDays)
			}
			if cfg.UI.Theme != tt.wantTheme {
				t.Errorf("theme = %q, want %q", cfg.UI.Theme, tt.wantTheme)
			}
		})
	}
}

func TestPromptFloatRetries(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("wide\n2.5\n"))
	var out bytes.Buffer

	if got := promptFloat(reader, &out, "Day width", 48); got != 2.5 {
		t.Errorf("promptFloat = %v, want 2.5", got)
	}
	if !strings.Contains(out.String(), `Invalid number "wide"`) {
		t.Errorf("expected a retry message, got %q", out.String())
	}
}
