// Package snap aligns points to a repeating rectangular or isometric grid.
//
// Everything here is a pure function of its arguments: no state, no I/O,
// safe to call from any goroutine.
package snap

import "github.com/vovakirdan/gridsnap/internal/core"

// Options tunes the snapping algorithms. The zero value is the standard
// behaviour.
type Options struct {
	// SnapToVerticals lets ClosestVertex on an isometric grid also consider
	// points on the nearest vertical grid line, keeping whichever candidate
	// is closer to the input.
	SnapToVerticals bool
}

// Snapper snaps points using a fixed set of Options.
type Snapper struct {
	Options Options
}

// New returns a Snapper with the given options.
func New(opts Options) Snapper {
	return Snapper{Options: opts}
}

// Snap returns the grid point selected by prefer for p.
//
// An empty grid (zero or negative size) returns p unchanged. Isometric grids
// use diamond projection; every other grid type, including unknown values,
// is treated as rectangular.
func (s Snapper) Snap(grid core.Rect, p core.Point, prefer Preference, shape core.GridType) core.Point {
	if grid.IsEmpty() {
		return p
	}
	if shape == core.GridIsometric {
		return isoSnap(grid, p, prefer, s.Options.SnapToVerticals)
	}
	return RectSnap(grid, p, prefer)
}

// Snap snaps p with default options.
func Snap(grid core.Rect, p core.Point, prefer Preference, shape core.GridType) core.Point {
	return Snapper{}.Snap(grid, p, prefer, shape)
}
