package view

// Validate rejects views the renderer cannot handle. The element check is a
// deliberate allow-list: int32 data has a perfectly good accessor, but raw
// logits and index maps rendered as density art mislead more than they help.
func Validate(v View) error {
	switch v.Kind() {
	case Float32, Uint8:
	default:
		return &UnsupportedTypeError{Kind: v.Label(), Elem: v.Kind()}
	}
	h, w, c := v.Bounds()
	if h < 0 || w < 0 || c < 0 {
		return &UnsupportedShapeError{Kind: v.Label(), Shape: v.Shape()}
	}
	return nil
}

// ValidateChannel additionally checks an explicit channel request.
// Zero-element views are exempt: they render as the empty placeholder.
func ValidateChannel(v View, ch int) error {
	if err := Validate(v); err != nil {
		return err
	}
	if Empty(v) {
		return nil
	}
	_, _, c := v.Bounds()
	if ch < 0 || ch >= c {
		return &ChannelRangeError{Channel: ch, Channels: c}
	}
	return nil
}
