package color

import "math"

// sRGBToLinearLUT maps an 8-bit sRGB channel to its linear value.
// 256 entries, 1KB.
var sRGBToLinearLUT [256]float32

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}
}

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// DecodeU8 converts an 8-bit sRGB pixel to linear RGB using the lookup table.
func DecodeU8(r, g, b uint8) RGB {
	return RGB{
		R: sRGBToLinearLUT[r],
		G: sRGBToLinearLUT[g],
		B: sRGBToLinearLUT[b],
	}
}

// EncodeU8 converts linear RGB to 8-bit sRGB.
// Out-of-gamut components are clamped after encoding.
func EncodeU8(c RGB) (r, g, b uint8) {
	return clampAndRound(LinearToSRGB(c.R)),
		clampAndRound(LinearToSRGB(c.G)),
		clampAndRound(LinearToSRGB(c.B))
}

// ToLinear converts gamma-encoded components to linear.
func (c RGB) ToLinear() RGB {
	return RGB{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
