// Package load turns files into renderable buffer sources: standard image
// formats through the image adapter, anything else as a raw array with a
// caller-supplied shape.
package load

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/tensorpeek/pkg/view"
)

// Spec describes how to interpret a raw binary file. Image files ignore it.
type Spec struct {
	Shape []int
	Elem  string // "float32" or "uint8"
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// File reads path into a buffer source. The extension picks the route:
// known image formats decode through image.Decode, everything else is raw
// little-endian data laid out dense row-major per the given Spec.
func File(path string, spec Spec) (view.Source, error) {
	if imageExts[strings.ToLower(filepath.Ext(path))] {
		return imageFile(path)
	}
	return rawFile(path, spec)
}

func imageFile(path string) (view.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return view.FromImage(img), nil
}

func rawFile(path string, spec Spec) (view.Source, error) {
	if len(spec.Shape) == 0 {
		return nil, fmt.Errorf("raw file %s needs an explicit shape", path)
	}
	n := 1
	for _, d := range spec.Shape {
		if d < 0 {
			return nil, fmt.Errorf("raw file %s: negative dimension %d", path, d)
		}
		n *= d
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch spec.Elem {
	case "uint8", "":
		if len(data) != n {
			return nil, fmt.Errorf("raw file %s: %d bytes, shape %s needs %d",
				path, len(data), view.ShapeString(spec.Shape), n)
		}
		return view.NDUint8(spec.Shape, nil, data), nil
	case "float32":
		if len(data) != 4*n {
			return nil, fmt.Errorf("raw file %s: %d bytes, shape %s needs %d",
				path, len(data), view.ShapeString(spec.Shape), 4*n)
		}
		vals := make([]float32, n)
		for i := range vals {
			vals[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		}
		return view.NDFloat32(spec.Shape, nil, vals), nil
	default:
		return nil, fmt.Errorf("raw file %s: unsupported element type %q", path, spec.Elem)
	}
}
