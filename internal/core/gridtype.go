package core

import (
	"fmt"
	"strings"
)

// GridType selects the geometric model a grid cell represents.
// The numeric values are stable; documents store them as integers.
type GridType int

const (
	GridRectangular GridType = 0
	GridIsometric   GridType = 1
)

var gridTypeNames = map[GridType]string{
	GridRectangular: "rectangular",
	GridIsometric:   "isometric",
}

// String returns the lower-case name of the grid type.
func (t GridType) String() string {
	if name, ok := gridTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("GridType(%d)", int(t))
}

// ParseGridType converts a name such as "isometric" (or "iso") to a GridType.
func ParseGridType(s string) (GridType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangular", "rect", "":
		return GridRectangular, nil
	case "isometric", "iso":
		return GridIsometric, nil
	default:
		return GridRectangular, fmt.Errorf("unknown grid type %q (want rectangular or isometric)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t GridType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so grid types can be
// written by name in YAML.
func (t *GridType) UnmarshalText(text []byte) error {
	v, err := ParseGridType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
