package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lanes/internal/timeline"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configured tracks and clips",
		Long: `Print the timeline described by the configuration: the day range,
every seed clip as a table, and a per-track summary.

This is a quick view that does not start the editor.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			tl, err := a.config.BuildTimeline(time.Now())
			if err != nil {
				return fmt.Errorf("building timeline: %w", err)
			}
			printTimeline(cmd.OutOrStdout(), tl, termWidth())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// printTimeline writes the clip table and track summary of tl.
func printTimeline(w io.Writer, tl *timeline.Timeline, width int) {
	fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(FormatRange(tl.Days())))

	rows := ClipRows(tl)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No clips configured.")
	} else {
		fmt.Fprintln(w, RenderClipTable(rows, width))
	}
	fmt.Fprintln(w)

	var clips int
	var hours float64
	for _, s := range Summarize(tl) {
		fmt.Fprintf(w, "  %-16s %s\n", formatTrack(s.Name),
			formatMuted(fmt.Sprintf("%d clips  %s", s.Clips, FormatHours(s.Hours))))
		clips += s.Clips
		hours += s.Hours
	}
	fmt.Fprintf(w, "\nTotal: %s\n", formatStats(fmt.Sprintf("%d clips on %d tracks, %s", clips, tl.TrackCount(), FormatHours(hours))))
}
