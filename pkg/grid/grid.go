// Package grid turns an arbitrarily large view into a bounded cell grid by
// block-area averaging, so a 4K feature map and a 6x6 kernel both fit a
// terminal without losing their gross structure.
package grid

// Sampler is the per-cell accessor the downsampler averages over. It is the
// same contract as view.View.Sample, narrowed so the renderer can interpose
// channel folding without another interface.
type Sampler func(row, col, ch int) float64

// Grid is the downsampled output: Rows x Cols cells of Channels floats each.
// It is built fresh per render and never retained.
type Grid struct {
	Rows, Cols, Channels int
	cells                []float64
}

// At returns the averaged value for one cell channel.
func (g *Grid) At(row, col, ch int) float64 {
	return g.cells[(row*g.Cols+col)*g.Channels+ch]
}

// Downsample averages h x w input cells into at most maxRows x maxCols
// output cells, independently per channel. Block edges are floor(i*h/rows),
// so every input cell lands in exactly one block and block sizes differ by
// at most one. A view already within bounds comes through untouched: each
// output cell is then the mean of a single sample.
func Downsample(sample Sampler, h, w, channels, maxRows, maxCols int) *Grid {
	rows, cols := h, w
	if rows > maxRows {
		rows = maxRows
	}
	if cols > maxCols {
		cols = maxCols
	}
	g := &Grid{Rows: rows, Cols: cols, Channels: channels}
	g.cells = make([]float64, rows*cols*channels)
	if rows == 0 || cols == 0 || channels == 0 {
		return g
	}
	sum := make([]float64, channels)
	for r := 0; r < rows; r++ {
		y0, y1 := r*h/rows, (r+1)*h/rows
		for c := 0; c < cols; c++ {
			x0, x1 := c*w/cols, (c+1)*w/cols
			for ch := range sum {
				sum[ch] = 0
			}
			// Fixed row-major order keeps the accumulation, and with it
			// the rendered output, bit-for-bit reproducible.
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					for ch := 0; ch < channels; ch++ {
						sum[ch] += sample(y, x, ch)
					}
				}
			}
			n := float64((y1 - y0) * (x1 - x0))
			for ch := 0; ch < channels; ch++ {
				g.cells[(r*cols+c)*channels+ch] = sum[ch] / n
			}
		}
	}
	return g
}
