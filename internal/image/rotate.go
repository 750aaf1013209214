package image

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// sizeEpsilon absorbs floating point noise when sizing rotated canvases,
// so that exact multiples do not round up by a whole pixel.
const sizeEpsilon = 1e-9

// Rotate90 rotates src 90° clockwise. The transform is lossless.
func Rotate90(src *image.NRGBA) *image.NRGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))

	for sy := range h {
		for sx := range w {
			s := src.PixOffset(sb.Min.X+sx, sb.Min.Y+sy)
			d := dst.PixOffset(h-1-sy, sx)
			copy(dst.Pix[d:d+4], src.Pix[s:s+4])
		}
	}
	return dst
}

// Rotate270 rotates src 90° counter-clockwise. The transform is lossless.
func Rotate270(src *image.NRGBA) *image.NRGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))

	for sy := range h {
		for sx := range w {
			s := src.PixOffset(sb.Min.X+sx, sb.Min.Y+sy)
			d := dst.PixOffset(sy, w-1-sx)
			copy(dst.Pix[d:d+4], src.Pix[s:s+4])
		}
	}
	return dst
}

// RotatedSize returns the size of the smallest canvas that holds a w×h
// image rotated by degrees about its center.
func RotatedSize(w, h int, degrees float64) (int, int) {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	fw, fh := float64(w), float64(h)

	nw := int(math.Ceil(fw*cos + fh*sin - sizeEpsilon))
	nh := int(math.Ceil(fw*sin + fh*cos - sizeEpsilon))
	return max(nw, 1), max(nh, 1)
}

// Rotate rotates src clockwise by degrees about its center using Catmull-Rom
// (cubic) interpolation. The result is grown to RotatedSize so no corner is
// cut off, and newly exposed pixels are transparent.
//
// A zero angle returns src unchanged.
func Rotate(src *image.NRGBA, degrees float64) *image.NRGBA {
	if degrees == 0 {
		return src
	}

	sb := src.Bounds()
	w, h := float64(sb.Dx()), float64(sb.Dy())
	nw, nh := RotatedSize(sb.Dx(), sb.Dy(), degrees)
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))

	sin, cos := math.Sincos(degrees * math.Pi / 180)

	// Source to destination: translate the source center to the origin,
	// rotate, then translate to the destination center.
	cx := float64(sb.Min.X) + w/2
	cy := float64(sb.Min.Y) + h/2
	tx := float64(nw)/2 - (cos*cx - sin*cy)
	ty := float64(nh)/2 - (sin*cx + cos*cy)
	s2d := f64.Aff3{
		cos, -sin, tx,
		sin, cos, ty,
	}

	xdraw.CatmullRom.Transform(dst, s2d, src, sb, xdraw.Src, nil)
	return dst
}
