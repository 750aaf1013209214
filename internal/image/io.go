// Package image provides the raster operations behind card compositing:
// decoding assets into straight-alpha RGBA8 buffers, pasting and
// overlaying layers, and lossless and resampled rotation.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp" // register WebP for portrait assets
)

// I/O errors.
var (
	// ErrDecode is returned when bytes are present but are not a supported image.
	ErrDecode = errors.New("image: decode")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load reads and decodes the image file at path.
// Open failures wrap the underlying fs error, so errors.Is(err, fs.ErrNotExist)
// identifies missing files; decode failures wrap ErrDecode.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyData)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a PNG or WebP image from r, auto-detecting the format.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return ToNRGBA(img), nil
}

// EncodePNG encodes img as PNG with the given compression level.
func EncodePNG(w io.Writer, img image.Image, level png.CompressionLevel) error {
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// ToNRGBA returns img as a tightly packed *image.NRGBA whose bounds start at
// the origin. An NRGBA that already has that layout is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == b.Dx()*4 {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// Fast path for NRGBA sub-images: row copy, no conversion
	if n, ok := img.(*image.NRGBA); ok {
		for y := range b.Dy() {
			srcStart := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], n.Pix[srcStart:srcStart+b.Dx()*4])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
