// Package view normalizes numeric buffers into one renderable form.
//
// Every supported buffer kind adapts into the same canonical accessor,
// so downsampling and rendering never branch on the source layout:
//
//   - [View]: shape, bounds, and a normalized Sample(row, col, ch) accessor
//   - [Tensor]: dense NHWC data (float32, uint8, int32)
//   - [Image]: any image.Image, with fast paths for Gray and (N)RGBA
//   - [Matrix]: planar float64 data, channel as the outer dimension
//   - [NDArray]: raw dims/strides buffers covering every other layout
//
// # Validation
//
// Malformed input is a warning condition, never a panic: [Validate] and
// [ValidateChannel] return one of three typed errors
// ([UnsupportedShapeError], [UnsupportedTypeError], [ChannelRangeError])
// that callers log and skip.
//
// # Sample Contract
//
// Sample returns values in [0,1] (uint8 data is divided by 255), must be
// side-effect free, and must tolerate being called concurrently: renders
// share the caller's buffer and hold no locks.
package view
