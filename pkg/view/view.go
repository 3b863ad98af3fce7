package view

import "fmt"

// ElementKind identifies how raw elements map to normalized samples.
type ElementKind int

const (
	Float32 ElementKind = iota // already normalized to [0,1]
	Uint8                      // divided by 255
	Int32                      // constructible but not renderable
)

func (k ElementKind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// View is the canonical read-only form every adapter normalizes into.
// Sample must be repeatable and side-effect free: the downsampler calls it
// once per input cell per render, and callers may share the underlying
// buffer across concurrent renders.
type View interface {
	// Label is the default display name for this source kind
	// ("tensor", "image", "matrix", "buffer").
	Label() string

	// Shape is the source shape as reported in the header line,
	// before any dimension folding.
	Shape() []int

	// Bounds are the effective render dimensions after folding.
	// A 1-D source reports height 1.
	Bounds() (height, width, channels int)

	Kind() ElementKind

	// Sample returns the normalized value in [0,1] at (row, col, ch).
	// Indices must satisfy 0 <= row < height, 0 <= col < width,
	// 0 <= ch < channels.
	Sample(row, col, ch int) float64
}

// Source is anything that can produce a View. Adapters implement it so the
// entry points accept every supported buffer kind through one parameter.
type Source interface {
	View() (View, error)
}

// Empty reports whether v holds no elements at all.
func Empty(v View) bool {
	h, w, c := v.Bounds()
	return h*w*c == 0
}

// ShapeString formats a shape the way headers print it: "[1 3 2 4]".
func ShapeString(shape []int) string {
	s := "["
	for i, d := range shape {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(d)
	}
	return s + "]"
}
