// Package render maps a canonical view onto terminal text: a header line
// followed by a density-glyph grid, or half-block truecolor art when the
// terminal supports it.
package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/tensorpeek/pkg/grid"
	"github.com/san-kum/tensorpeek/pkg/termcap"
	"github.com/san-kum/tensorpeek/pkg/view"
)

const (
	// DefaultMaxCols bounds grid width; 120 columns fits a wide terminal
	// with room for log prefixes.
	DefaultMaxCols = 120
	// DefaultMaxRows bounds terminal lines per render. Color mode packs
	// two grid rows into each line, so it downsamples to twice this.
	DefaultMaxRows = 60
)

// Options configure one render call. The zero value means defaults with
// monochrome output; Color is an injected snapshot so tests control it
// per call without touching the process environment.
type Options struct {
	MaxRows int
	MaxCols int
	Ramp    string
	Color   termcap.Capability
}

func (o Options) withDefaults() Options {
	if o.MaxRows <= 0 {
		o.MaxRows = DefaultMaxRows
	}
	if o.MaxCols <= 0 {
		o.MaxCols = DefaultMaxCols
	}
	if o.Ramp == "" {
		o.Ramp = DensityRamp
	}
	return o
}

// Buffer renders all channels of v. Channel counts never fail a render:
// one channel maps through the ramp, two or three become RGB in color mode,
// and anything beyond the third folds into the monochrome mean.
func Buffer(v view.View, name string, opts Options) (string, error) {
	return render(v, name, -1, opts)
}

// Channel renders exactly one channel of v through the monochrome ramp.
func Channel(v view.View, ch int, name string, opts Options) (string, error) {
	return render(v, name, ch, opts)
}

func render(v view.View, name string, ch int, opts Options) (string, error) {
	opts = opts.withDefaults()
	if name == "" {
		name = v.Label()
	}

	var err error
	if ch >= 0 {
		err = view.ValidateChannel(v, ch)
	} else {
		err = view.Validate(v)
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header(v, name, ch))
	b.WriteByte('\n')

	if view.Empty(v) {
		b.WriteString(EmptyPlaceholder)
		return b.String(), nil
	}

	h, w, c := v.Bounds()
	switch {
	case ch >= 0:
		emitMono(&b, grid.Downsample(pickChannel(v, ch), h, w, 1, opts.MaxRows, opts.MaxCols), opts.Ramp)
	case c >= 2 && opts.Color.TrueColor:
		emitColor(&b, grid.Downsample(rgbSampler(v, c), h, w, 3, 2*opts.MaxRows, opts.MaxCols))
	case c == 1:
		emitMono(&b, grid.Downsample(v.Sample, h, w, 1, opts.MaxRows, opts.MaxCols), opts.Ramp)
	default:
		emitMono(&b, grid.Downsample(meanChannels(v, c), h, w, 1, opts.MaxRows, opts.MaxCols), opts.Ramp)
	}
	return b.String(), nil
}

func header(v view.View, name string, ch int) string {
	s := name + view.ShapeString(v.Shape())
	if ch >= 0 {
		s += fmt.Sprintf(", channel %d", ch)
	}
	return s
}

// pickChannel narrows a view to one channel.
func pickChannel(v view.View, ch int) grid.Sampler {
	return func(row, col, _ int) float64 {
		return v.Sample(row, col, ch)
	}
}

// meanChannels folds every channel into one intensity. This is the defined
// fallback for four-plus channels: auxiliary channels pull the mean instead
// of failing the render.
func meanChannels(v view.View, c int) grid.Sampler {
	return func(row, col, _ int) float64 {
		sum := 0.0
		for ch := 0; ch < c; ch++ {
			sum += v.Sample(row, col, ch)
		}
		return sum / float64(c)
	}
}

// rgbSampler maps the first three channels to RGB, zero-filling a missing
// blue and ignoring channels past the third.
func rgbSampler(v view.View, c int) grid.Sampler {
	return func(row, col, ch int) float64 {
		if ch >= c {
			return 0
		}
		return v.Sample(row, col, ch)
	}
}

func rampIndex(val float64, ramp []rune) int {
	i := int(val * float64(len(ramp)-1))
	if i < 0 {
		i = 0
	}
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	return i
}

func emitMono(b *strings.Builder, g *grid.Grid, ramp string) {
	glyphs := []rune(ramp)
	for r := 0; r < g.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Cols; c++ {
			b.WriteRune(glyphs[rampIndex(g.At(r, c, 0), glyphs)])
		}
	}
}

func colorByte(val float64) int {
	i := int(val * 255)
	if i < 0 {
		i = 0
	}
	if i > 255 {
		i = 255
	}
	return i
}

// emitColor writes half-block truecolor art framed by a box border. Each
// terminal line carries two grid rows: the upper as background, the lower
// as the ▄ foreground. An unpaired final row renders as ▀ foreground only.
func emitColor(b *strings.Builder, g *grid.Grid) {
	rule := strings.Repeat(borderHorizontal, g.Cols)
	b.WriteString(borderTopLeft + rule + borderTopRight)
	for r := 0; r < g.Rows; r += 2 {
		b.WriteByte('\n')
		b.WriteString(borderVertical)
		for c := 0; c < g.Cols; c++ {
			if r+1 < g.Rows {
				fmt.Fprintf(b, "\x1b[48;2;%d;%d;%dm", colorByte(g.At(r, c, 0)), colorByte(g.At(r, c, 1)), colorByte(g.At(r, c, 2)))
				fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm", colorByte(g.At(r+1, c, 0)), colorByte(g.At(r+1, c, 1)), colorByte(g.At(r+1, c, 2)))
				b.WriteString(lowerHalf)
			} else {
				fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm", colorByte(g.At(r, c, 0)), colorByte(g.At(r, c, 1)), colorByte(g.At(r, c, 2)))
				b.WriteString(upperHalf)
			}
		}
		b.WriteString("\x1b[0m")
		b.WriteString(borderVertical)
	}
	b.WriteByte('\n')
	b.WriteString(borderBottomLeft + rule + borderBottomRight)
}
