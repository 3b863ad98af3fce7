package view

// Tensor is a dense NHWC buffer, the layout inference pipelines hand around.
// The batch dimension must be 1: debug rendering shows one item at a time,
// and silently picking a batch element would hide the caller's mistake.
type Tensor struct {
	shape []int
	kind  ElementKind
	f32   []float32
	u8    []uint8
	i32   []int32
}

// TensorFloat32 wraps normalized float data with the given NHWC shape.
// Values are expected in [0,1]; the accessor does not clamp.
func TensorFloat32(shape []int, data []float32) *Tensor {
	return &Tensor{shape: shape, kind: Float32, f32: data}
}

// TensorUint8 wraps byte data with the given NHWC shape.
func TensorUint8(shape []int, data []uint8) *Tensor {
	return &Tensor{shape: shape, kind: Uint8, u8: data}
}

// TensorInt32 wraps signed integer data. Int32 tensors are deliberately not
// renderable; the validator rejects them with a type warning.
func TensorInt32(shape []int, data []int32) *Tensor {
	return &Tensor{shape: shape, kind: Int32, i32: data}
}

// View implements Source. A tensor must be exactly [1 H W C]: any other
// arity has no recognizable height/width split.
func (t *Tensor) View() (View, error) {
	if len(t.shape) != 4 || t.shape[0] != 1 {
		return nil, &UnsupportedShapeError{Kind: t.Label(), Shape: t.shape}
	}
	return t, nil
}

func (t *Tensor) Label() string { return "tensor" }

func (t *Tensor) Shape() []int { return t.shape }

func (t *Tensor) Bounds() (int, int, int) {
	return t.shape[1], t.shape[2], t.shape[3]
}

func (t *Tensor) Kind() ElementKind { return t.kind }

func (t *Tensor) Sample(row, col, ch int) float64 {
	_, w, c := t.Bounds()
	i := (row*w+col)*c + ch
	switch t.kind {
	case Uint8:
		return float64(t.u8[i]) / 255.0
	case Int32:
		return float64(t.i32[i])
	default:
		return float64(t.f32[i])
	}
}
