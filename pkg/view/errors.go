package view

import "fmt"

// The three rejection modes are warnings, not failures: callers log them and
// skip rendering. Anything else (out-of-range Sample indices) is a broken
// adapter, not a runtime condition.

// UnsupportedShapeError reports a source whose dimensionality cannot be
// reduced to rows x cols x channels.
type UnsupportedShapeError struct {
	Kind  string // source kind label, e.g. "tensor"
	Shape []int
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("cannot log %s with shape %s", e.Kind, ShapeString(e.Shape))
}

// UnsupportedTypeError reports an element kind outside the render allow-list.
type UnsupportedTypeError struct {
	Kind string
	Elem ElementKind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot log %s of type %s", e.Kind, e.Elem)
}

// ChannelRangeError reports an explicit channel index >= channel count.
type ChannelRangeError struct {
	Channel  int
	Channels int
}

func (e *ChannelRangeError) Error() string {
	return fmt.Sprintf("cannot log channel %d of %d", e.Channel, e.Channels)
}
