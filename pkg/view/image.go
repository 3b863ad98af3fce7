package view

import (
	"image"
	"image/color"
)

// Image adapts a decoded image.Image. Gray and (N)RGBA get direct Pix
// access (interleaved bytes with a row stride); everything else goes
// through the color model, which is slower but keeps the adapter total.
type Image struct {
	im image.Image
}

// FromImage wraps any image.Image as a renderable source.
func FromImage(im image.Image) *Image {
	return &Image{im: im}
}

func (v *Image) View() (View, error) { return v, nil }

func (v *Image) Label() string { return "image" }

func (v *Image) Shape() []int {
	h, w, c := v.Bounds()
	return []int{h, w, c}
}

func (v *Image) Bounds() (int, int, int) {
	b := v.im.Bounds()
	return b.Dy(), b.Dx(), v.channels()
}

func (v *Image) channels() int {
	switch v.im.(type) {
	case *image.Gray:
		return 1
	case *image.RGBA, *image.NRGBA:
		return 4
	default:
		return 3
	}
}

func (v *Image) Kind() ElementKind { return Uint8 }

func (v *Image) Sample(row, col, ch int) float64 {
	b := v.im.Bounds()
	switch im := v.im.(type) {
	case *image.Gray:
		return float64(im.Pix[row*im.Stride+col]) / 255.0
	case *image.RGBA:
		return float64(im.Pix[row*im.Stride+col*4+ch]) / 255.0
	case *image.NRGBA:
		return float64(im.Pix[row*im.Stride+col*4+ch]) / 255.0
	default:
		c := color.NRGBAModel.Convert(v.im.At(b.Min.X+col, b.Min.Y+row)).(color.NRGBA)
		switch ch {
		case 0:
			return float64(c.R) / 255.0
		case 1:
			return float64(c.G) / 255.0
		default:
			return float64(c.B) / 255.0
		}
	}
}
