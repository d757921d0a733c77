// Package presets registers the built-in grid presets.
// Import it for its side effects.
package presets

import (
	"github.com/vovakirdan/gridsnap/internal/core"
	"github.com/vovakirdan/gridsnap/internal/registry"
)

func init() {
	registry.Register(registry.Preset{ID: "pixel-8", Title: "8x8 pixel grid", Grid: core.NewRect(0, 0, 8, 8), Type: core.GridRectangular})
	registry.Register(registry.Preset{ID: "pixel-16", Title: "16x16 pixel grid", Grid: core.NewRect(0, 0, 16, 16), Type: core.GridRectangular})
	registry.Register(registry.Preset{ID: "tile-32", Title: "32x32 tile grid", Grid: core.NewRect(0, 0, 32, 32), Type: core.GridRectangular})
	registry.Register(registry.Preset{ID: "iso-32x16", Title: "Isometric 2:1, 32x16", Grid: core.NewRect(0, 0, 32, 16), Type: core.GridIsometric})
	registry.Register(registry.Preset{ID: "iso-64x32", Title: "Isometric 2:1, 64x32", Grid: core.NewRect(0, 0, 64, 32), Type: core.GridIsometric})
	registry.Register(registry.Preset{ID: "dimetric-40x10", Title: "Dimetric 4:1, 40x10", Grid: core.NewRect(0, 0, 40, 10), Type: core.GridIsometric})
}
