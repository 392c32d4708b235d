package theme

import (
	"testing"
)

func TestLoad_GuideRoles(t *testing.T) {
	tests := []struct {
		name        string
		wantGuide   string
		wantAligned string
		wantAccent  string
	}{
		{name: "mocha", wantGuide: "#9399b2", wantAligned: "#a6e3a1", wantAccent: "#cba6f7"},
		{name: "macchiato", wantGuide: "#939ab7", wantAligned: "#a6da95", wantAccent: "#c6a0f6"},
		{name: "frappe", wantGuide: "#949cbb", wantAligned: "#a6d189", wantAccent: "#ca9ee6"},
		{name: "latte", wantGuide: "#7c7f93", wantAligned: "#40a02b", wantAccent: "#8839ef"},
		{name: "light", wantGuide: "#5c5c5c", wantAligned: "#2e7d32", wantAccent: "#3949ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Load(tt.name)
			if err != nil {
				t.Fatalf("Load(%q): %v", tt.name, err)
			}
			if th.Name != tt.name {
				t.Errorf("Name = %q, want %q", th.Name, tt.name)
			}
			if th.Guide != tt.wantGuide || th.Aligned != tt.wantAligned || th.Accent != tt.wantAccent {
				t.Errorf("guide %s aligned %s accent %s, want %s %s %s",
					th.Guide, th.Aligned, th.Accent, tt.wantGuide, tt.wantAligned, tt.wantAccent)
			}
			// Aligned guides must stand out from plain ones.
			if th.Guide == th.Aligned {
				t.Errorf("guide and aligned share %s", th.Guide)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: DefaultName},
		{in: "Latte", want: "latte"},
		{in: "  frappe ", want: "frappe"},
		{in: "solarized", want: DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := resolveName(tt.in); got != tt.want {
				t.Errorf("resolveName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoad_UnknownUsesDefault(t *testing.T) {
	th, err := Load("solarized")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != DefaultName {
		t.Errorf("Name = %q, want %q", th.Name, DefaultName)
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		theme Theme
		check func(t *testing.T, th Theme)
	}{
		{
			name:  "guides fall back to grid and accent colors",
			theme: Theme{FgMuted: "#6c7086", Accent: "#cba6f7"},
			check: func(t *testing.T, th Theme) {
				if th.Guide != "#6c7086" || th.Aligned != "#cba6f7" {
					t.Errorf("guide %s aligned %s", th.Guide, th.Aligned)
				}
			},
		},
		{
			name:  "explicit guides are kept",
			theme: Theme{FgMuted: "#6c7086", Accent: "#cba6f7", Guide: "#111111", Aligned: "#222222"},
			check: func(t *testing.T, th Theme) {
				if th.Guide != "#111111" || th.Aligned != "#222222" {
					t.Errorf("guide %s aligned %s", th.Guide, th.Aligned)
				}
			},
		},
		{
			name:  "overlay colors follow the base palette",
			theme: Theme{Bg: "#1e1e2e", Fg: "#cdd6f4", FgMuted: "#6c7086", Accent: "#cba6f7", BgSelection: "#45475a"},
			check: func(t *testing.T, th Theme) {
				if th.BaseBg != "#1e1e2e" || th.ModalBorder != "#cba6f7" {
					t.Errorf("base bg %s border %s", th.BaseBg, th.ModalBorder)
				}
				if th.TextPrimary != "#cdd6f4" || th.TextMuted != "#6c7086" || th.Highlight != "#45475a" {
					t.Errorf("text %s muted %s highlight %s", th.TextPrimary, th.TextMuted, th.Highlight)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := tt.theme
			th.applyDefaults()
			tt.check(t, th)
		})
	}
}

func TestLoad_FileOverridesBorder(t *testing.T) {
	th, err := Load("light")
	if err != nil {
		t.Fatalf("Load(light): %v", err)
	}
	if th.ModalBorder != "#5c6bc0" {
		t.Errorf("ModalBorder = %q, want #5c6bc0", th.ModalBorder)
	}
}

func TestIsAvailable(t *testing.T) {
	for _, name := range Available() {
		if !IsAvailable(name) {
			t.Errorf("IsAvailable(%q) = false", name)
		}
	}
	if IsAvailable("Unknown") {
		t.Errorf("IsAvailable(Unknown) = true")
	}
}
