package color

import (
	"math"
	"testing"
)

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"mid gray linear", 0.21404, float32(1.055*math.Pow(0.21404, 1.0/2.4) - 0.055)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Every 8-bit value must survive decode/encode unchanged.
func TestDecodeEncodeU8RoundTrip(t *testing.T) {
	for i := range 256 {
		v := uint8(i)
		r, g, b := EncodeU8(DecodeU8(v, v, v))
		if r != v || g != v || b != v {
			t.Errorf("round trip %d = (%d,%d,%d)", v, r, g, b)
		}
	}
}

func TestEncodeU8Clamps(t *testing.T) {
	r, g, b := EncodeU8(RGB{R: -0.3, G: 1.7, B: float32(math.NaN())})
	if r != 0 || g != 255 || b != 0 {
		t.Errorf("EncodeU8 out of gamut = (%d,%d,%d), want (0,255,0)", r, g, b)
	}
}

func TestUnpack(t *testing.T) {
	c := Unpack(0xFF8000)
	if c.R != 1 || !floatNear(c.G, 128.0/255.0, 1e-7) || c.B != 0 {
		t.Errorf("Unpack(0xFF8000) = %+v", c)
	}
	// High byte is not part of the color.
	if Unpack(0xAA000000) != (RGB{}) {
		t.Errorf("Unpack should ignore bits above 24")
	}
}

func floatNear(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}
