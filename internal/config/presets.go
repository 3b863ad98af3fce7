package config

import (
	"sort"
	"unicode/utf8"

	"github.com/san-kum/tensorpeek/pkg/render"
)

// Ramps maps preset names to glyph tables, sparse to dense.
var Ramps = map[string]string{
	"density": render.DensityRamp,
	"blocks":  render.BlockRamp,
	"binary":  " #",
	"digits":  " 123456789",
}

// GetRamp resolves a preset name, or passes a literal glyph string through.
// An unresolvable value returns "".
func GetRamp(name string) string {
	if name == "" {
		return render.DensityRamp
	}
	if ramp, ok := Ramps[name]; ok {
		return ramp
	}
	// A literal ramp needs at least two glyphs to map anything.
	if utf8.RuneCountInString(name) >= 2 {
		return name
	}
	return ""
}

func ListRamps() []string {
	names := make([]string, 0, len(Ramps))
	for name := range Ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
