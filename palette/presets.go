package palette

import (
	"sort"
	"strings"
)

// Built-in outside gradients. Slow-escaping points take the later stops.
var (
	// Sunset runs from deep purple through red and orange to pale yellow.
	Sunset = Gradient{
		{R: 20, G: 4, B: 60},
		{R: 110, G: 10, B: 100},
		{R: 210, G: 40, B: 60},
		{R: 250, G: 140, B: 30},
		{R: 255, G: 240, B: 170},
	}

	// Ocean runs from near black through navy and teal to white.
	Ocean = Gradient{
		{R: 0, G: 7, B: 20},
		{R: 0, G: 40, B: 100},
		{R: 20, G: 110, B: 160},
		{R: 120, G: 200, B: 210},
		{R: 255, G: 255, B: 255},
	}
)

var presets = map[string]Gradient{
	"sunset": Sunset,
	"ocean":  Ocean,
}

// ByName returns a copy of the named preset gradient.
func ByName(name string) (Gradient, bool) {
	g, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return append(Gradient(nil), g...), true
}

// Names lists the preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
