package color

import (
	"math"
	"testing"
)

func TestDyeShiftLabBlend(t *testing.T) {
	d := Dye{lab: Lab{L: 0.6, A: 0.2, B: -0.1}}
	px := Lab{L: 1, A: 0.05, B: 0.05}

	got := d.ShiftLab(px)

	// boost is 1 for L=1
	want := Lab{
		L: 0.8,
		A: 0.05*0.1 + 0.2*0.9,
		B: 0.05*0.1 - 0.1*0.9,
	}
	if !floatNear(got.L, want.L, 1e-6) || !floatNear(got.A, want.A, 1e-6) || !floatNear(got.B, want.B, 1e-6) {
		t.Errorf("ShiftLab = %+v, want %+v", got, want)
	}
}

func TestDyeShiftLabChromaBoost(t *testing.T) {
	d := Dye{lab: Lab{L: 0.5, A: 0.1, B: 0}}
	got := d.ShiftLab(Lab{L: 0, A: 0.1, B: 0})

	// boost = 1 + 0.5*(1-0) = 1.5
	if !floatNear(got.A, 0.15, 1e-6) {
		t.Errorf("A = %v, want 0.15", got.A)
	}
}

func TestDyeShiftLabClampsChroma(t *testing.T) {
	// Deliberately saturated dye and source pixel, far outside sRGB.
	d := Dye{lab: Lab{L: 0.5, A: 0.9, B: 0.9}}
	got := d.ShiftLab(Lab{L: 0, A: 0.9, B: 0.9})

	c2 := got.Chroma2()
	if math.Abs(float64(c2)-1) > 1e-5 {
		t.Errorf("clamped chroma² = %v, want 1", c2)
	}
	if !floatNear(got.A, got.B, 1e-6) {
		t.Errorf("clamp must preserve hue: A=%v B=%v", got.A, got.B)
	}
}

func TestDyeShiftChromaBound(t *testing.T) {
	dyes := []uint32{0x000000, 0xFFFFFF, 0xFF0000, 0x00FF00, 0x0000FF, 0xFF00FF, 0x7E7E7E, 8289918}
	pixels := [][3]uint8{{255, 255, 255}, {0, 0, 0}, {255, 0, 0}, {0, 255, 255}, {12, 200, 40}}

	for _, packed := range dyes {
		d := NewDye(packed)
		for _, p := range pixels {
			r, g, b := d.Shift(p[0], p[1], p[2])
			if c2 := U8ToOklab(r, g, b).Chroma2(); c2 > 1+1e-4 {
				t.Errorf("dye %06x pixel %v: chroma² %v > 1", packed, p, c2)
			}
		}
	}
}

func TestDyeShiftRedOverWhite(t *testing.T) {
	d := NewDye(0xFF0000)
	r, g, b := d.Shift(255, 255, 255)

	if r <= g || r <= b {
		t.Fatalf("white dyed red = (%d,%d,%d), want dominant red", r, g, b)
	}

	// Out-of-gamut clamping pulls lightness down a little, but it must stay
	// between the dye and the white source.
	l := U8ToOklab(r, g, b).L
	if red := d.Lab().L; l <= red || l >= 1 {
		t.Errorf("lightness = %v, want in (%v, 1)", l, red)
	}
}
