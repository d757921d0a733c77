package snap

import "github.com/vovakirdan/gridsnap/internal/core"

// RectSnap snaps p to the rectangular lattice with one vertex at the grid
// anchor and spacing grid.W by grid.H. Each axis is handled on its own.
// An empty grid returns p unchanged.
func RectSnap(grid core.Rect, p core.Point, prefer Preference) core.Point {
	if grid.IsEmpty() {
		return p
	}
	return core.Point{
		X: snapAxis(p.X, grid.X, grid.W, prefer),
		Y: snapAxis(p.Y, grid.Y, grid.H, prefer),
	}
}

// snapAxis snaps v on a 1-D lattice {anchor + k*size}.
//
// Floored division keeps the remainder in [0, size) on both sides of the
// anchor, so floor and ceil stay exact for negative coordinates and for
// values that already sit on the lattice.
func snapAxis(v, anchor, size int, prefer Preference) int {
	_, phase := core.FloorDiv(anchor, size)
	q, r := core.FloorDiv(v-phase, size)
	lower := phase + q*size

	switch prefer {
	case BoxOrigin, FloorGrid:
		return lower
	case CeilGrid:
		if r == 0 {
			return v
		}
		return lower + size
	case BoxEnd:
		return lower + size
	default: // ClosestVertex
		// Ties at exactly half a cell go to the lower vertex.
		if r > size/2 {
			return lower + size
		}
		return lower
	}
}
