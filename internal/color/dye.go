package color

import "math"

// Dye blend weights.
const (
	// LightnessBlend is how far lightness moves toward the dye.
	LightnessBlend = 0.5
	// HueBlend is how far the chroma axes move toward the dye.
	HueBlend = 0.90
	// ChromaBoost scales chroma up for darker source pixels.
	ChromaBoost = 0.5
	// MaxChroma2 is the squared chroma ceiling.
	MaxChroma2 = 1.0
)

// Dye recolors pixels toward a target color in Oklab.
// A Dye is immutable and safe for concurrent use.
type Dye struct {
	lab Lab
}

// NewDye returns a Dye for a packed 0xRRGGBB color.
func NewDye(packed uint32) Dye {
	return Dye{lab: LinearToOklab(Unpack(packed).ToLinear())}
}

// Lab returns the dye color in Oklab.
func (d Dye) Lab() Lab {
	return d.lab
}

// ShiftLab applies the dye to a single Oklab color.
//
// Chroma axes are blended 10/90 toward the dye and boosted by
// 1 + 0.5*(1-L); if the result leaves the unit chroma circle both axes are
// scaled back onto it. Lightness is blended 50/50.
func (d Dye) ShiftLab(px Lab) Lab {
	boost := 1 + ChromaBoost*(1-px.L)

	a := (px.A*(1-HueBlend) + d.lab.A*HueBlend) * boost
	b := (px.B*(1-HueBlend) + d.lab.B*HueBlend) * boost

	if c2 := a*a + b*b; c2 > MaxChroma2 {
		scale := float32(MaxChroma2 / math.Sqrt(float64(c2)))
		a *= scale
		b *= scale
	}

	return Lab{
		L: px.L*(1-LightnessBlend) + d.lab.L*LightnessBlend,
		A: a,
		B: b,
	}
}

// Shift applies the dye to an 8-bit sRGB pixel.
func (d Dye) Shift(r, g, b uint8) (uint8, uint8, uint8) {
	return OklabToU8(d.ShiftLab(U8ToOklab(r, g, b)))
}
