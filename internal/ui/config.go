package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lanes/internal/config"
	"github.com/javiermolinar/lanes/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing the
timeline and theme settings.

Example:
  lanes config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer) error {
	configPath := config.DefaultConfigPath()
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	editConfig(reader, out, cfg)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func editConfig(reader *bufio.Reader, out io.Writer, cfg *config.Config) {
	cfg.Timeline.StartDate = promptValue(reader, out, "Start date (YYYY-MM-DD, empty for this week)", cfg.Timeline.StartDate)
	cfg.Timeline.Days = promptInt(reader, out, "Days", cfg.Timeline.Days)
	cfg.Timeline.DayWidth = promptFloat(reader, out, "Day width (cells)", cfg.Timeline.DayWidth)
	cfg.Timeline.TrackHeight = promptFloat(reader, out, "Track height (rows)", cfg.Timeline.TrackHeight)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[timeline]")
	fmt.Fprintf(out, "  start_date   = %s\n", cfg.Timeline.StartDate)
	fmt.Fprintf(out, "  days         = %d\n", cfg.Timeline.Days)
	fmt.Fprintf(out, "  day_width    = %g\n", cfg.Timeline.DayWidth)
	fmt.Fprintf(out, "  track_height = %g\n", cfg.Timeline.TrackHeight)
	for _, g := range cfg.Groups {
		fmt.Fprintln(out, "\n[[groups]]")
		fmt.Fprintf(out, "  name  = %s\n", g.Name)
		fmt.Fprintf(out, "  icon  = %s\n", g.Icon)
		fmt.Fprintf(out, "  color = %s\n", g.Color)
	}
	if len(cfg.Clips) > 0 {
		fmt.Fprintf(out, "\n%d seed clips (see 'lanes show')\n", len(cfg.Clips))
	}
	fmt.Fprintln(out, "\n[interaction]")
	fmt.Fprintf(out, "  drag_autoscroll   = margin %g, speed %g\n",
		cfg.Interaction.DragAutoscrollMargin, cfg.Interaction.DragAutoscrollSpeed)
	fmt.Fprintf(out, "  resize_autoscroll = margin %g, speed %g\n",
		cfg.Interaction.ResizeAutoscrollMargin, cfg.Interaction.ResizeAutoscrollSpeed)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme = %s\n", cfg.UI.Theme)
	fmt.Fprintln(out, "\n[logging]")
	fmt.Fprintf(out, "  level = %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  file  = %s\n", cfg.Logging.File)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptFloat(reader *bufio.Reader, out io.Writer, label string, current float64) float64 {
	for {
		value := promptValue(reader, out, label, strconv.FormatFloat(current, 'f', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
