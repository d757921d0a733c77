// gridsnap aligns points to a rectangular or isometric grid.
//
// Usage:
//
//	gridsnap snap [x,y ...]  - Snap points given as arguments or read from stdin
//	gridsnap presets         - List built-in grid presets
//	gridsnap config          - Show the effective grid configuration
//
// Global flags:
//
//	--verbose  - Log debug information to stderr
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/gridsnap/internal/presets"
)

var (
	// Global flags
	flagVerbose bool

	logger = newLogger()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnap",
	Short: "Snap coordinates to a rectangular or isometric grid",
	Long: `gridsnap aligns points to a repeating grid the way an editor aligns
the cursor when "snap to grid" is on.

Available commands:
  snap     - Snap points to the configured grid
  presets  - Show built-in grid presets
  config   - Show the effective configuration

Examples:
  gridsnap snap 7,3 --grid 0,0,10,10
  gridsnap snap 20,9 --preset iso-32x16 --prefer floor
  echo "7,3" | gridsnap snap --config ./grid.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug information to stderr")

	// Add subcommands
	rootCmd.AddCommand(snapCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the stderr logger used by every command.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gridsnap",
		Level:  log.InfoLevel,
	})
}
