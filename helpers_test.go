package maestro

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var (
	opaqueRed   = color.NRGBA{R: 255, A: 255}
	opaqueGreen = color.NRGBA{G: 255, A: 255}
	opaqueWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	transparent = color.NRGBA{}
)

// solid returns a w×h NRGBA filled with c.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// row returns a w×1 NRGBA with the given pixels.
func row(pixels ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(pixels), 1))
	for x, c := range pixels {
		img.SetNRGBA(x, 0, c)
	}
	return img
}

// staticPortraits returns the same portrait for every request.
func staticPortraits(img *image.NRGBA) PortraitSource {
	return PortraitFunc(func(CardRequest) (*image.NRGBA, error) {
		return cloneNRGBA(img), nil
	})
}

// newTestRenderer builds a Renderer over an in-memory catalog and closes it
// when the test ends.
func newTestRenderer(t *testing.T, frames map[string]map[string]image.Image, portraits PortraitSource, opts ...Option) *Renderer {
	t.Helper()
	r := New(NewCatalog(frames), portraits, opts...)
	t.Cleanup(r.Close)
	return r
}

// longDeadline is a budget no test render comes close to.
func longDeadline() *Deadline {
	return NewDeadline(time.Minute)
}

// writePNG encodes img to path, creating parent directories.
func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

// writeFile writes raw bytes to path, creating parent directories.
func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func intPtr(v int) *int { return &v }
