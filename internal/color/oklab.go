package color

import "math"

// LinearToOklab converts linear sRGB to Oklab.
//
// Reference: Björn Ottosson, "A perceptual color space for image processing"
// (https://bottosson.github.io/posts/oklab/).
func LinearToOklab(c RGB) Lab {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Lab{
		L: float32(0.2104542553*l + 0.7936177850*m - 0.0040720468*s),
		A: float32(1.9779984951*l - 2.4285922050*m + 0.4505937099*s),
		B: float32(0.0259040371*l + 0.7827717662*m - 0.8086757660*s),
	}
}

// OklabToLinear converts Oklab to linear sRGB.
// The result may lie outside [0,1] for colors outside the sRGB gamut.
func OklabToLinear(c Lab) RGB {
	L, A, B := float64(c.L), float64(c.A), float64(c.B)

	l := L + 0.3963377774*A + 0.2158037573*B
	m := L - 0.1055613458*A - 0.0638541728*B
	s := L - 0.0894841775*A - 1.2914855480*B

	l, m, s = l*l*l, m*m*m, s*s*s

	return RGB{
		R: float32(+4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G: float32(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B: float32(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
	}
}

// U8ToOklab converts an 8-bit sRGB pixel to Oklab.
func U8ToOklab(r, g, b uint8) Lab {
	return LinearToOklab(DecodeU8(r, g, b))
}

// OklabToU8 converts Oklab to an 8-bit sRGB pixel, clamping out-of-gamut values.
func OklabToU8(c Lab) (r, g, b uint8) {
	return EncodeU8(OklabToLinear(c))
}
