package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnap/internal/config"
	"github.com/vovakirdan/gridsnap/internal/core"
	"github.com/vovakirdan/gridsnap/internal/registry"
)

var (
	flagConfig    string
	flagPreset    string
	flagGrid      string
	flagType      string
	flagPrefer    string
	flagVerticals bool
	flagPlain     bool
)

var snapCmd = &cobra.Command{
	Use:   "snap [x,y ...]",
	Short: "Snap points to the grid",
	Long: `Snap each point to the configured grid and print the result as x,y.

Points come from the arguments, or one per line from stdin when no
arguments are given. Blank lines and lines starting with # are skipped.

The grid comes from the config file (see 'gridsnap config'), then
--preset, then the individual --grid/--type/--prefer/--verticals flags.

Snap preferences:
  closest     - Nearest grid vertex
  box-origin  - Vertex at or before the point (start of a box)
  box-end     - Vertex after the point's cell (end of a box)
  floor       - Vertex at or before the point
  ceil        - Vertex at or after the point

Examples:
  gridsnap snap 7,3 --grid 0,0,10,10
  gridsnap snap --grid 0,0,10,10 --prefer floor -- -3,-7
  gridsnap snap 16,0 --preset iso-32x16 --verticals
  printf '7,3\n12,19\n' | gridsnap snap --plain`,
	RunE: runSnap,
}

func init() {
	addGridFlags(snapCmd)
	snapCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print bare x,y results even on a terminal")
}

// addGridFlags registers the flags that override the loaded grid config.
func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to grid config YAML")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Use a built-in grid preset (see 'gridsnap presets')")
	cmd.Flags().StringVar(&flagGrid, "grid", "", "Grid cell as x,y,w,h")
	cmd.Flags().StringVar(&flagType, "type", "", "Grid type: rectangular, isometric")
	cmd.Flags().StringVar(&flagPrefer, "prefer", "", "Snap preference: closest, box-origin, box-end, floor, ceil")
	cmd.Flags().BoolVar(&flagVerticals, "verticals", false, "Isometric closest-vertex snapping may land on vertical grid lines")
}

func runSnap(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger.Debug("snapping",
		"grid", cfg.Grid.Rect().String(),
		"type", cfg.Type,
		"prefer", cfg.Prefer,
		"verticals", cfg.SnapToVerticals,
	)
	if cfg.Grid.Rect().IsEmpty() {
		logger.Warn("grid has no area, points pass through unchanged", "grid", cfg.Grid.Rect().String())
	}

	out := cmd.OutOrStdout()
	styled := !flagPlain && isTerminal(out)

	if len(args) > 0 {
		return snapArgs(cfg, args, out, styled)
	}
	return snapLines(cfg, cmd.InOrStdin(), out, styled)
}

// resolveConfig loads the config file and applies preset and flag overrides.
func resolveConfig(cmd *cobra.Command) (config.GridConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("loaded config", "source", src)

	if flagPreset != "" {
		p, err := registry.Get(flagPreset)
		if err != nil {
			return cfg, err
		}
		cfg.Grid = config.BoundsFromRect(p.Grid)
		cfg.Type = p.Type
		logger.Debug("applied preset", "id", p.ID)
	}

	flags := cmd.Flags()
	if flags.Changed("grid") {
		r, err := core.ParseRect(flagGrid)
		if err != nil {
			return cfg, err
		}
		cfg.Grid = config.BoundsFromRect(r)
	}
	if flags.Changed("type") {
		if err := cfg.Type.UnmarshalText([]byte(flagType)); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("prefer") {
		if err := cfg.Prefer.UnmarshalText([]byte(flagPrefer)); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("verticals") {
		cfg.SnapToVerticals = flagVerticals
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid grid configuration: %w", err)
	}
	return cfg, nil
}

func snapArgs(cfg config.GridConfig, args []string, out io.Writer, styled bool) error {
	s := cfg.Snapper()
	grid := cfg.Grid.Rect()
	for _, arg := range args {
		p, err := core.ParsePoint(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatResult(p, s.Snap(grid, p, cfg.Prefer, cfg.Type), styled))
	}
	return nil
}

func snapLines(cfg config.GridConfig, in io.Reader, out io.Writer, styled bool) error {
	s := cfg.Snapper()
	grid := cfg.Grid.Rect()
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := core.ParsePoint(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintln(out, formatResult(p, s.Snap(grid, p, cfg.Prefer, cfg.Type), styled))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read points: %w", err)
	}
	return nil
}
