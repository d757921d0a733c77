package config

import (
	_ "embed"

	"github.com/vovakirdan/gridsnap/internal/core"
	"github.com/vovakirdan/gridsnap/internal/snap"
)

//go:embed defaults/grid.yaml
var defaultGridYAML []byte

// DefaultGridConfig returns the default grid preferences.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Grid: GridBounds{
			X:      0,
			Y:      0,
			Width:  16,
			Height: 16,
		},
		Type:            core.GridRectangular,
		Prefer:          snap.ClosestVertex,
		SnapToVerticals: false,
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultGridYAML
}
