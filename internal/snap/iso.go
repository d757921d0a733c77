package snap

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/gridsnap/internal/core"
)

// Isometric grids use diamond projection. Tile (0,0) sits at the grid
// anchor and a tile is grid.W wide and grid.H tall:
//
//	screen.x = origin.x + (tile.x - tile.y) * W/2
//	screen.y = origin.y + (tile.x + tile.y) * H/2
//
// and the inverse:
//
//	tile.x = (rel.x / (W/2) + rel.y / (H/2)) / 2
//	tile.y = (rel.y / (H/2) - rel.x / (W/2)) / 2
//
// A 2:1 cell (32x16) is classic isometric; other ratios give dimetric
// grids. See https://clintbellanger.net/articles/isometric_math/.

// IsoSnap snaps p to the vertices of an isometric grid with default options.
// An empty grid returns p unchanged.
func IsoSnap(grid core.Rect, p core.Point, prefer Preference) core.Point {
	if grid.IsEmpty() {
		return p
	}
	return isoSnap(grid, p, prefer, false)
}

// diamond holds the projection parameters of one isometric grid.
type diamond struct {
	origin r2.Vec
	half   r2.Vec
}

func newDiamond(grid core.Rect) diamond {
	return diamond{
		origin: r2.Vec{X: float64(grid.X), Y: float64(grid.Y)},
		half:   r2.Vec{X: float64(grid.W) / 2, Y: float64(grid.H) / 2},
	}
}

// toTile maps a screen point to fractional tile coordinates.
func (d diamond) toTile(p r2.Vec) (tx, ty float64) {
	rel := r2.Sub(p, d.origin)
	u := rel.X / d.half.X
	v := rel.Y / d.half.Y
	return (u + v) / 2, (v - u) / 2
}

// toScreen maps integer tile coordinates to a screen position.
func (d diamond) toScreen(tx, ty int) r2.Vec {
	return r2.Vec{
		X: d.origin.X + float64(tx-ty)*d.half.X,
		Y: d.origin.Y + float64(tx+ty)*d.half.Y,
	}
}

func isoSnap(grid core.Rect, p core.Point, prefer Preference, verticals bool) core.Point {
	d := newDiamond(grid)
	pv := vec(p)
	tx, ty := d.toTile(pv)

	// Both tile coordinates use the same rounding: together they name one
	// diamond vertex.
	var round func(float64) float64
	switch prefer {
	case BoxOrigin, FloorGrid:
		round = math.Floor
	case BoxEnd, CeilGrid:
		round = math.Ceil
	default: // ClosestVertex
		round = math.Round
	}

	best := toPoint(d.toScreen(int(round(tx)), int(round(ty))))

	if verticals && prefer == ClosestVertex {
		if cand := d.verticalCandidate(pv); r2.Norm(r2.Sub(vec(cand), pv)) < r2.Norm(r2.Sub(vec(best), pv)) {
			best = cand
		}
	}
	return best
}

// verticalCandidate returns the closest point on the nearest vertical grid
// line, x = origin.x + k*W/2, restricted to y = origin.y + s*H/2.
func (d diamond) verticalCandidate(p r2.Vec) core.Point {
	rel := r2.Sub(p, d.origin)
	k := math.Round(rel.X / d.half.X)
	s := math.Round(rel.Y / d.half.Y)
	return toPoint(r2.Vec{
		X: d.origin.X + k*d.half.X,
		Y: d.origin.Y + s*d.half.Y,
	})
}

func vec(p core.Point) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// toPoint rounds half away from zero.
func toPoint(v r2.Vec) core.Point {
	return core.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
