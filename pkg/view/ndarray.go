package view

// NDArray is the generic adapter: raw float32 or uint8 elements with
// explicit dims and strides, so both interleaved (channel stride 1) and
// planar (channel stride H*W) sources flow through one code path.
// Dims are ordered [batch? height width channels?] like the tensor adapter,
// with trailing dims optional: 1 dim is a single row, 2 dims a gray grid.
type NDArray struct {
	dims    []int
	strides []int
	kind    ElementKind
	f32     []float32
	u8      []uint8

	// effective render dims and their strides, filled by fold
	h, w, c    int
	rs, cs, ks int
}

// NDFloat32 builds a float32 N-D array. Strides are in elements; pass nil
// for dense row-major (innermost dim contiguous).
func NDFloat32(dims []int, strides []int, data []float32) *NDArray {
	return &NDArray{dims: dims, strides: strides, kind: Float32, f32: data}
}

// NDUint8 builds a uint8 N-D array.
func NDUint8(dims []int, strides []int, data []uint8) *NDArray {
	return &NDArray{dims: dims, strides: strides, kind: Uint8, u8: data}
}

func denseStrides(dims []int) []int {
	s := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= dims[i]
	}
	return s
}

// View implements Source. Leading singleton dims beyond the last three are
// folded away; a batch dimension greater than one is a shape error, as is
// anything still above three axes after folding.
func (a *NDArray) View() (View, error) {
	strides := a.strides
	if strides == nil {
		strides = denseStrides(a.dims)
	}
	dims, strides := a.dims, strides
	for len(dims) > 3 && dims[0] == 1 {
		dims, strides = dims[1:], strides[1:]
	}
	if len(dims) > 3 {
		return nil, &UnsupportedShapeError{Kind: a.Label(), Shape: a.dims}
	}
	switch len(dims) {
	case 0:
		a.h, a.w, a.c = 0, 0, 0
	case 1:
		a.h, a.w, a.c = 1, dims[0], 1
		a.cs = strides[0]
	case 2:
		a.h, a.w, a.c = dims[0], dims[1], 1
		a.rs, a.cs = strides[0], strides[1]
	case 3:
		a.h, a.w, a.c = dims[0], dims[1], dims[2]
		a.rs, a.cs, a.ks = strides[0], strides[1], strides[2]
	}
	return a, nil
}

func (a *NDArray) Label() string { return "buffer" }

func (a *NDArray) Shape() []int { return a.dims }

func (a *NDArray) Bounds() (int, int, int) { return a.h, a.w, a.c }

func (a *NDArray) Kind() ElementKind { return a.kind }

func (a *NDArray) Sample(row, col, ch int) float64 {
	i := row*a.rs + col*a.cs + ch*a.ks
	if a.kind == Uint8 {
		return float64(a.u8[i]) / 255.0
	}
	return float64(a.f32[i])
}
