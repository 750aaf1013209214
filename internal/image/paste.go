package image

import (
	"errors"
	"image"

	"github.com/gogpu/maestro/internal/blend"
)

// ErrOutOfBounds is returned when a source does not fit inside the destination.
var ErrOutOfBounds = errors.New("image: source out of bounds")

// Copy writes src into dst with its top-left corner at (x, y), replacing the
// destination pixels. Unlike Overlay it never crops: if src does not fit
// entirely inside dst, nothing is written and ErrOutOfBounds is returned.
func Copy(dst, src *image.NRGBA, x, y int) error {
	sb := src.Bounds()
	target := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	if !target.In(dst.Bounds()) {
		return ErrOutOfBounds
	}

	rowBytes := sb.Dx() * 4
	for row := range sb.Dy() {
		s := src.PixOffset(sb.Min.X, sb.Min.Y+row)
		d := dst.PixOffset(x, y+row)
		copy(dst.Pix[d:d+rowBytes], src.Pix[s:s+rowBytes])
	}
	return nil
}

// Overlay composites src over dst with its top-left corner at (x, y).
// Parts of src that fall outside dst are clipped.
func Overlay(dst, src *image.NRGBA, x, y int) {
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	rowBytes := r.Dx() * 4
	for dy := r.Min.Y; dy < r.Max.Y; dy++ {
		s := src.PixOffset(sb.Min.X+r.Min.X-x, sb.Min.Y+dy-y)
		d := dst.PixOffset(r.Min.X, dy)
		blend.OverRow(dst.Pix[d:d+rowBytes], src.Pix[s:s+rowBytes])
	}
}

// OverRows composites rows [y0, y1) of src over the same rows of dst, both
// anchored at their top-left corners. Rows and columns outside either
// image are ignored, so it is safe to call per band from several goroutines.
func OverRows(dst, src *image.NRGBA, y0, y1 int) {
	db, sb := dst.Bounds(), src.Bounds()
	w := min(db.Dx(), sb.Dx())
	y1 = min(y1, db.Dy(), sb.Dy())

	rowBytes := w * 4
	for y := max(y0, 0); y < y1; y++ {
		s := src.PixOffset(sb.Min.X, sb.Min.Y+y)
		d := dst.PixOffset(db.Min.X, db.Min.Y+y)
		blend.OverRow(dst.Pix[d:d+rowBytes], src.Pix[s:s+rowBytes])
	}
}
