package render

// The ramps and border glyphs are data, not logic: swap the table, keep the
// mapping code.

// DensityRamp is the default monochrome ramp, ordered sparse to dense.
const DensityRamp = " .:-=+*#%@"

// BlockRamp is an alternate ramp using shade blocks, for terminals whose
// fonts render punctuation density poorly.
const BlockRamp = " ░▒▓█"

// Box-drawing glyphs framing the grid in color mode.
const (
	borderTopLeft     = "╔"
	borderTopRight    = "╗"
	borderBottomLeft  = "╚"
	borderBottomRight = "╝"
	borderHorizontal  = "═"
	borderVertical    = "║"
)

// Half blocks: lowerHalf paints foreground below background, doubling the
// vertical resolution of a terminal cell; upperHalf covers a trailing
// unpaired row.
const (
	lowerHalf = "▄"
	upperHalf = "▀"
)

// EmptyPlaceholder marks a zero-element buffer in place of a grid.
const EmptyPlaceholder = "<empty>"
