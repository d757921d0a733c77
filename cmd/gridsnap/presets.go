package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnap/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in grid presets",
	Long:  `Shows the grid presets that can be selected with --preset.`,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	styled := isTerminal(out)

	// Print header
	fmt.Fprintln(out, "  "+header(fmt.Sprintf("%-*s  %-12s  %-13s  %s", maxIDLen, "ID", "Type", "Grid", "Title"), styled))
	fmt.Fprintf(out, "  %-*s  %-12s  %-13s  %s\n", maxIDLen, "--", "----", "----", "-----")

	for _, p := range presets {
		fmt.Fprintf(out, "  %-*s  %-12s  %-13s  %s\n", maxIDLen, p.ID, p.Type, p.Grid, p.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridsnap snap x,y --preset <id>' to snap with a preset.")
}
