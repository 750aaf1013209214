package maestro

import (
	"fmt"
	"image"
	"math"

	intImage "github.com/gogpu/maestro/internal/image"
)

// albumGrid returns the grid shape for n cards. The aspect bias makes the
// grid wider than tall.
func albumGrid(n int) (cols, rows int) {
	cols = int(math.Ceil(math.Sqrt(AlbumAspectBias * float64(n))))
	cols = max(min(cols, n), 1)
	rows = (n + cols - 1) / cols
	return cols, rows
}

// RenderAlbum renders every card of batch and packs them row-major into a
// padded grid. Cells are as large as the largest card; smaller cards are
// placed at the top-left of their cell, never scaled.
//
// Cards are rendered concurrently; the first failure aborts the album and
// is returned wrapped with the card index. An empty batch is an
// ErrCompositionFailure.
func (r *Renderer) RenderAlbum(batch BatchRequest, dl *Deadline) (*image.NRGBA, error) {
	img, err := r.renderAlbum(batch, dl)
	if err != nil {
		logFailure("album", err, dl)
		return nil, err
	}
	return img, nil
}

func (r *Renderer) renderAlbum(batch BatchRequest, dl *Deadline) (*image.NRGBA, error) {
	if err := dl.Check("album start"); err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: empty album", ErrCompositionFailure)
	}

	cards, err := r.renderBatch(batch, dl, nil)
	if err != nil {
		return nil, err
	}
	if err := dl.Check("album cards"); err != nil {
		return nil, err
	}

	cellW, cellH := 0, 0
	for _, c := range cards {
		cellW = max(cellW, c.Bounds().Dx())
		cellH = max(cellH, c.Bounds().Dy())
	}

	cols, rows := albumGrid(len(cards))
	pad := r.opts.albumPadding
	width := cols*cellW + (cols+1)*pad
	height := rows*cellH + (rows+1)*pad
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))

	for i, c := range cards {
		col, row := i%cols, i/cols
		x := pad + col*(cellW+pad)
		y := pad + row*(cellH+pad)

		intImage.Overlay(canvas, c, x, y)

		if err := dl.Check("album paste"); err != nil {
			return nil, err
		}
	}

	Logger().Debug("album rendered",
		"cards", len(cards),
		"cols", cols,
		"rows", rows,
		"elapsed", dl.Elapsed())

	return canvas, nil
}
