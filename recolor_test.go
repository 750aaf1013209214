package maestro

import (
	"image"
	"image/color"
	"testing"
)

func TestRecolorPreservesAlpha(t *testing.T) {
	mask := row(
		color.NRGBA{R: 10, G: 20, B: 30, A: 0},
		color.NRGBA{R: 200, G: 200, B: 200, A: 1},
		color.NRGBA{R: 90, G: 160, B: 40, A: 128},
		opaqueWhite,
	)
	r := newTestRenderer(t, nil, nil)

	out := r.recolor(mask, 0x3366CC)

	for x := range mask.Bounds().Dx() {
		if got, want := out.NRGBAAt(x, 0).A, mask.NRGBAAt(x, 0).A; got != want {
			t.Errorf("pixel %d alpha = %d, want %d", x, got, want)
		}
	}
	if got := out.NRGBAAt(0, 0); got != mask.NRGBAAt(0, 0) {
		t.Errorf("transparent pixel = %v, want bytes unchanged", got)
	}
	if out.NRGBAAt(3, 0) == opaqueWhite {
		t.Error("opaque pixel was not recolored")
	}
}

func TestRecolorManyRows(t *testing.T) {
	// Taller than one band so the work is split across workers.
	mask := solid(3, 100, opaqueWhite)
	r := newTestRenderer(t, nil, nil, WithWorkers(4))

	out := r.recolor(mask, 0xFF0000)
	first := out.NRGBAAt(0, 0)
	for y := range 100 {
		for x := range 3 {
			if got := out.NRGBAAt(x, y); got != first {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, first)
			}
		}
	}
}

func TestRecolorOffsetBounds(t *testing.T) {
	mask := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	mask.SetNRGBA(5, 5, opaqueWhite)
	r := newTestRenderer(t, nil, nil)

	out := r.recolor(mask, DefaultDye)
	if got := out.Bounds(); got != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v, want origin based 2x1", got)
	}
	if out.NRGBAAt(0, 0).A != 255 || out.NRGBAAt(1, 0).A != 0 {
		t.Errorf("pixels = %v %v", out.NRGBAAt(0, 0), out.NRGBAAt(1, 0))
	}
}
