package maestro

// DefaultDye is the dye applied when a request does not choose one (0x7E7D7E).
const DefaultDye uint32 = 8289918

// CardRequest describes one card to render. It is a value type; the renderer
// never modifies it.
type CardRequest struct {
	// ID is the character id used to locate the portrait.
	ID uint32

	// Variant selects the portrait: 0 is the canonical portrait, 1-9 use the
	// minor naming scheme and 10 and above the major one.
	Variant uint8

	// Dye is the packed 0xRRGGBB color the frame mask is recolored toward.
	Dye uint32

	// Modifier selects the modifier variant of the frame layers
	// (for example "kindled-color" instead of "color").
	Modifier bool

	// FrameType is the catalog key of the frame. It is opaque to the renderer.
	FrameType string

	// OffsetX and OffsetY shift the portrait inside the frame canvas.
	// Nil means zero.
	OffsetX, OffsetY *int

	// Custom selects the custom portrait directory instead of the canonical
	// character directory. Variant is ignored for custom portraits.
	Custom bool
}

// Offset returns the portrait offset, treating unset values as zero.
func (r CardRequest) Offset() (x, y int) {
	if r.OffsetX != nil {
		x = *r.OffsetX
	}
	if r.OffsetY != nil {
		y = *r.OffsetY
	}
	return x, y
}

// BatchRequest is an ordered list of cards for a fan or album layout.
// Order is significant: it decides arc position and grid cell.
type BatchRequest []CardRequest
