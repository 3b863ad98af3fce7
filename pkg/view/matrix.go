package view

// Matrix adapts planar float64 data: one row-major H*W plane per channel,
// channel as the outer dimension. This is the mirror image of the tensor
// adapter's interleaved layout; both normalize into the same
// Sample(row, col, ch) contract so nothing downstream knows the difference.
type Matrix struct {
	planes [][]float64
	h, w   int
}

// MatrixOf wraps a single 2-D matrix given as rows of columns.
func MatrixOf(rows [][]float64) *Matrix {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	plane := make([]float64, 0, h*w)
	for _, r := range rows {
		plane = append(plane, r...)
	}
	return &Matrix{planes: [][]float64{plane}, h: h, w: w}
}

// Planar wraps one or more row-major H*W planes, one per channel.
func Planar(h, w int, planes ...[]float64) *Matrix {
	return &Matrix{planes: planes, h: h, w: w}
}

func (m *Matrix) View() (View, error) { return m, nil }

func (m *Matrix) Label() string { return "matrix" }

func (m *Matrix) Shape() []int {
	if len(m.planes) <= 1 {
		return []int{m.h, m.w}
	}
	return []int{m.h, m.w, len(m.planes)}
}

func (m *Matrix) Bounds() (int, int, int) {
	if m.h*m.w == 0 {
		return m.h, m.w, 0
	}
	return m.h, m.w, len(m.planes)
}

func (m *Matrix) Kind() ElementKind { return Float32 }

func (m *Matrix) Sample(row, col, ch int) float64 {
	return m.planes[ch][row*m.w+col]
}
