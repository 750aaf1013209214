// Package color provides the color space conversions used by the card
// compositor: sRGB transfer functions, linear RGB, and Oklab.
//
// Values are float32 in the same ranges the rest of the pipeline uses:
// RGB components in [0,1], Oklab lightness in [0,1] and chroma axes roughly
// in [-0.5,0.5] for in-gamut colors.
package color

// RGB is a color with float32 components in [0,1].
// Whether the components are gamma-encoded or linear is given by context.
type RGB struct {
	R, G, B float32
}

// Lab is a color in the Oklab perceptual color space.
// L is perceived lightness, A and B are the green-red and blue-yellow axes.
type Lab struct {
	L, A, B float32
}

// Unpack splits a packed 0xRRGGBB integer into gamma-encoded components.
// Bits above the low 24 are ignored.
func Unpack(packed uint32) RGB {
	return RGB{
		R: float32((packed>>16)&0xFF) / 255.0,
		G: float32((packed>>8)&0xFF) / 255.0,
		B: float32(packed&0xFF) / 255.0,
	}
}

// Chroma2 returns the squared chroma A² + B².
func (c Lab) Chroma2() float32 {
	return c.A*c.A + c.B*c.B
}
