// Package config provides YAML-based grid preferences for gridsnap.
package config

import (
	"fmt"

	"github.com/vovakirdan/gridsnap/internal/core"
	"github.com/vovakirdan/gridsnap/internal/snap"
)

// GridConfig is the grid a caller snaps against and how it snaps.
type GridConfig struct {
	Grid            GridBounds      `yaml:"grid"`
	Type            core.GridType   `yaml:"type"`
	Prefer          snap.Preference `yaml:"prefer"`
	SnapToVerticals bool            `yaml:"snap_to_verticals"` // Isometric closest-vertex refinement
}

// GridBounds is the anchor and cell size of the grid.
type GridBounds struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`  // 0 disables snapping
	Height int `yaml:"height"` // 0 disables snapping
}

// Rect returns the bounds as a grid cell.
func (b GridBounds) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// BoundsFromRect converts a grid cell back to config bounds.
func BoundsFromRect(r core.Rect) GridBounds {
	return GridBounds{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// Snapper returns a snapper configured with these preferences.
func (c GridConfig) Snapper() snap.Snapper {
	return snap.New(snap.Options{SnapToVerticals: c.SnapToVerticals})
}

// Snap snaps p with the configured grid, type and preference.
func (c GridConfig) Snap(p core.Point) core.Point {
	return c.Snapper().Snap(c.Grid.Rect(), p, c.Prefer, c.Type)
}

// Validate checks that the config describes a usable grid.
// A zero width or height is accepted and turns snapping off.
func (c GridConfig) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("grid size %dx%d must not be negative", c.Grid.Width, c.Grid.Height)
	}
	switch c.Type {
	case core.GridRectangular, core.GridIsometric:
	default:
		return fmt.Errorf("unsupported grid type %v", c.Type)
	}
	if c.Prefer < snap.ClosestVertex || c.Prefer > snap.CeilGrid {
		return fmt.Errorf("unsupported snap preference %v", c.Prefer)
	}
	return nil
}
