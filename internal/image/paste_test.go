package image

import (
	"errors"
	"image/color"
	"testing"
)

func TestCopy(t *testing.T) {
	dst := solid(4, 4, color.NRGBA{})
	src := solid(2, 2, color.NRGBA{R: 200, A: 100})

	if err := Copy(dst, src, 1, 2); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	// Copy replaces, it does not blend.
	if got := dst.NRGBAAt(1, 2); got != (color.NRGBA{R: 200, A: 100}) {
		t.Errorf("copied pixel = %v", got)
	}
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("untouched pixel = %v", got)
	}
}

func TestCopyOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		x, y int
	}{
		{"larger than canvas", 5, 4, 0, 0},
		{"offset past right edge", 2, 2, 3, 0},
		{"negative offset", 2, 2, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := solid(4, 4, color.NRGBA{})
			src := solid(tt.w, tt.h, color.NRGBA{R: 1, A: 255})
			if err := Copy(dst, src, tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Copy() error = %v, want ErrOutOfBounds", err)
			}
			if dst.NRGBAAt(0, 0).A != 0 {
				t.Error("failed Copy must not write")
			}
		})
	}
}

func TestOverlayClips(t *testing.T) {
	dst := solid(3, 3, color.NRGBA{B: 255, A: 255})
	src := solid(2, 2, color.NRGBA{R: 255, A: 255})

	Overlay(dst, src, 2, -1)

	if got := dst.NRGBAAt(2, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("overlaid pixel = %v", got)
	}
	if got := dst.NRGBAAt(1, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixel outside src = %v", got)
	}
	if got := dst.NRGBAAt(2, 1); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixel below src = %v", got)
	}
}

func TestOverlayFullyOutside(t *testing.T) {
	dst := solid(2, 2, color.NRGBA{})
	Overlay(dst, solid(2, 2, color.NRGBA{A: 255}), 5, 5)
	if dst.NRGBAAt(1, 1).A != 0 {
		t.Error("overlay outside dst must be a no-op")
	}
}

func TestOverRowsSkipsTransparentSource(t *testing.T) {
	dst := solid(2, 2, color.NRGBA{G: 50, A: 255})
	src := solid(2, 2, color.NRGBA{})
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})

	OverRows(dst, src, 0, 2)

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{G: 50, A: 255}) {
		t.Errorf("transparent source changed dst: %v", got)
	}
	if got := dst.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("opaque source pixel = %v", got)
	}
}

func TestOverRowsSmallerSource(t *testing.T) {
	dst := solid(4, 4, color.NRGBA{})
	src := solid(2, 2, color.NRGBA{R: 9, A: 255})

	OverRows(dst, src, 0, 4)

	if dst.NRGBAAt(1, 1).R != 9 || dst.NRGBAAt(2, 2).A != 0 {
		t.Error("OverRows must stay within the source size")
	}
}
