package snap

import (
	"fmt"
	"strings"
)

// Preference chooses which grid vertex a point snaps to.
type Preference int

const (
	// ClosestVertex picks the nearest vertex.
	ClosestVertex Preference = iota
	// BoxOrigin picks the vertex at or before the point, for the
	// top-left corner of a box being drawn.
	BoxOrigin
	// BoxEnd always picks the next vertex after the point's cell, for the
	// bottom-right corner of a box being drawn.
	BoxEnd
	// FloorGrid picks the vertex at or before the point.
	FloorGrid
	// CeilGrid picks the vertex at or after the point.
	CeilGrid
)

var preferenceNames = []struct {
	p    Preference
	name string
}{
	{ClosestVertex, "closest"},
	{BoxOrigin, "box-origin"},
	{BoxEnd, "box-end"},
	{FloorGrid, "floor"},
	{CeilGrid, "ceil"},
}

// Preferences returns every preference in declaration order.
func Preferences() []Preference {
	out := make([]Preference, len(preferenceNames))
	for i, pn := range preferenceNames {
		out[i] = pn.p
	}
	return out
}

// String returns the name used in config files and on the command line.
func (p Preference) String() string {
	for _, pn := range preferenceNames {
		if pn.p == p {
			return pn.name
		}
	}
	return fmt.Sprintf("Preference(%d)", int(p))
}

// ParsePreference converts a name such as "box-end" to a Preference.
// Underscores and case are ignored; the empty string means ClosestVertex.
func ParsePreference(s string) (Preference, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if key == "" {
		return ClosestVertex, nil
	}
	for _, pn := range preferenceNames {
		if pn.name == key {
			return pn.p, nil
		}
	}
	names := make([]string, len(preferenceNames))
	for i, pn := range preferenceNames {
		names[i] = pn.name
	}
	return ClosestVertex, fmt.Errorf("unknown snap preference %q (want one of %s)", s, strings.Join(names, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (p Preference) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Preference) UnmarshalText(text []byte) error {
	v, err := ParsePreference(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
