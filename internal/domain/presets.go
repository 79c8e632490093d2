package domain

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/watchman/internal/model"
)

// presets are the built-in line sets. The grid-fan set is labelled a grid
// formation by its author but has a transversal.
var presets = map[string]m.LineSet{
	"parallel":     {{Slope: 1, Intercept: 1}, {Slope: 1, Intercept: 5}, {Slope: 1, Intercept: 3}},
	"non-parallel": {{Slope: 1, Intercept: 1}, {Slope: 2, Intercept: 3}, {Slope: -1, Intercept: 2}},
	"mixed":        {{Slope: 1, Intercept: 1}, {Slope: 2, Intercept: 3}, {Slope: -1, Intercept: 2}, {Slope: 0.5, Intercept: -1}},
	"mixed-5": {
		{Slope: 1, Intercept: 1}, {Slope: 2, Intercept: 3}, {Slope: -1, Intercept: 2},
		{Slope: 0.5, Intercept: -1}, {Slope: 1, Intercept: 4},
	},
	"grid-fan": {{Slope: 1, Intercept: 0}, {Slope: -1, Intercept: 0}, {Slope: 0, Intercept: -1}, {Slope: 2, Intercept: 2}, {Slope: 3, Intercept: 4}},
	"grid": {
		{Slope: 1, Intercept: 4}, {Slope: 1, Intercept: 3}, {Slope: 1, Intercept: 6},
		{Slope: 1, Intercept: 7}, {Slope: 5, Intercept: 1}, {Slope: 5, Intercept: 7},
	},
	"triangle": {
		{Slope: 1, Intercept: 4}, {Slope: 1, Intercept: 8},
		{Slope: -0.5, Intercept: 1}, {Slope: -0.5, Intercept: 5},
		{Slope: 8, Intercept: 8}, {Slope: 8, Intercept: 12},
	},
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Preset returns a copy of the named built-in line set.
func Preset(name string) (m.LineSetFile, error) {
	lines, ok := presets[name]
	if !ok {
		return m.LineSetFile{}, fmt.Errorf("%w: unknown preset %q", m.ErrInvalidInput, name)
	}

	return m.LineSetFile{Name: name, Lines: append(m.LineSet(nil), lines...)}, nil
}
