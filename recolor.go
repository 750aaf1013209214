package maestro

import (
	"image"

	"github.com/gogpu/maestro/internal/color"
)

// recolor returns a copy of mask with every visible pixel shifted toward
// the packed dye color in Oklab. Alpha is never changed, and pixels with
// zero alpha are copied through without conversion.
func (r *Renderer) recolor(mask *image.NRGBA, dye uint32) *image.NRGBA {
	d := color.NewDye(dye)
	b := mask.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowBytes := b.Dx() * 4

	r.pool.Rows(b.Dy(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			s := mask.PixOffset(b.Min.X, b.Min.Y+y)
			row := out.Pix[y*out.Stride : y*out.Stride+rowBytes]
			copy(row, mask.Pix[s:s+rowBytes])

			for i := 0; i < rowBytes; i += 4 {
				if row[i+3] == 0 {
					continue
				}
				row[i], row[i+1], row[i+2] = d.Shift(row[i], row[i+1], row[i+2])
			}
		}
	})

	return out
}
