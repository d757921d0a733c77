// Package registry provides a global registry of named grid presets.
// Presets register themselves in init() functions, so the CLI can offer
// them without a hardcoded list.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridsnap/internal/core"
)

// Preset is a named grid: cell bounds plus the grid type they describe.
type Preset struct {
	ID    string
	Title string
	Grid  core.Rect
	Type  core.GridType
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered or the grid is empty.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	if p.Grid.IsEmpty() {
		panic(fmt.Sprintf("registry: preset %q has an empty grid", p.ID))
	}

	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset with the given ID.
// Returns an error if the ID is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}

	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

// unregister removes a preset. Tests use it to clean up.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(presets, id)
}
