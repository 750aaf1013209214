package maestro

import (
	"errors"
	"fmt"
	"image"

	intImage "github.com/gogpu/maestro/internal/image"
)

// RenderCard renders a single card: the portrait, the frame decoration on
// top of it, and the frame mask recolored to req.Dye on top of both.
//
// The canvas has the size of the frame's color layer. The portrait is
// pasted at req.Offset() and must fit entirely on the canvas.
//
// Errors wrap ErrAssetNotFound, ErrAssetCorrupt, ErrUnknownFrameType,
// ErrCompositionFailure or ErrTimeout. dl is checked before any work and
// after every stage; on timeout all partial work is discarded.
func (r *Renderer) RenderCard(req CardRequest, dl *Deadline) (*image.NRGBA, error) {
	img, err := r.renderCard(req, dl)
	if err != nil {
		logFailure("card", err, dl)
		return nil, err
	}
	return img, nil
}

func (r *Renderer) renderCard(req CardRequest, dl *Deadline) (*image.NRGBA, error) {
	if err := dl.Check("card start"); err != nil {
		return nil, err
	}

	portrait, err := r.portraits.Portrait(req)
	if err != nil {
		return nil, err
	}
	if err := dl.Check("portrait decode"); err != nil {
		return nil, err
	}

	mask, decoration, err := r.frameLayers(req)
	if err != nil {
		return nil, err
	}
	if err := dl.Check("frame lookup"); err != nil {
		return nil, err
	}

	dyed := r.recolor(mask, req.Dye)
	if err := dl.Check("recolor"); err != nil {
		return nil, err
	}

	w, h := mask.Bounds().Dx(), mask.Bounds().Dy()
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))

	x, y := req.Offset()
	if err := intImage.Copy(canvas, portrait, x, y); err != nil {
		pb := portrait.Bounds()
		return nil, fmt.Errorf("%w: %dx%d portrait at (%d,%d) on %dx%d frame %q: %w",
			ErrCompositionFailure, pb.Dx(), pb.Dy(), x, y, w, h, req.FrameType, err)
	}
	if err := dl.Check("portrait paste"); err != nil {
		return nil, err
	}

	if decoration != nil {
		r.pool.Rows(h, func(y0, y1 int) {
			intImage.OverRows(canvas, decoration, y0, y1)
		})
		if err := dl.Check("decoration"); err != nil {
			return nil, err
		}
	}

	r.pool.Rows(h, func(y0, y1 int) {
		intImage.OverRows(canvas, dyed, y0, y1)
	})
	if err := dl.Check("mask"); err != nil {
		return nil, err
	}

	Logger().Debug("card rendered",
		"id", req.ID,
		"variant", req.Variant,
		"frame", req.FrameType,
		"modifier", req.Modifier,
		"elapsed", dl.Elapsed())

	return canvas, nil
}

// frameLayers returns the color layer and the optional decoration layer for
// req's frame type and modifier.
func (r *Renderer) frameLayers(req CardRequest) (mask, decoration *image.NRGBA, err error) {
	modifier := ""
	if req.Modifier {
		modifier = r.opts.modifier
	}

	mask, ok := r.catalog.Lookup(req.FrameType, modifier, LayerColor)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (layer %q)",
			ErrUnknownFrameType, req.FrameType, LayerKey(req.FrameType, modifier, LayerColor))
	}

	decoration, _ = r.catalog.Lookup(req.FrameType, modifier, LayerStatic)
	return mask, decoration, nil
}

// logFailure reports a failed top-level render. Timeouts are expected under
// load and logged as warnings; everything else is left to the caller.
func logFailure(kind string, err error, dl *Deadline) {
	if errors.Is(err, ErrTimeout) {
		Logger().Warn("render ran out of time",
			"kind", kind,
			"budget", dl.Budget(),
			"elapsed", dl.Elapsed())
		return
	}
	Logger().Debug("render failed", "kind", kind, "err", err)
}
