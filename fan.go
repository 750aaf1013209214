package maestro

import (
	"fmt"
	"image"
	"math"

	intImage "github.com/gogpu/maestro/internal/image"
)

// sizeEpsilon keeps exact float extents from rounding up a whole pixel.
const sizeEpsilon = 1e-9

// fanSlot is the placement of one card on the fan arc: the offset of its
// center from the arc apex, and its rotation in radians.
type fanSlot struct {
	x, y  float64
	angle float64
}

// fanSlots places n cards on a circle of the given radius, stepping by
// angleDeg degrees per card and centered on the middle of the batch.
func fanSlots(n int, angleDeg, radius float64) []fanSlot {
	slots := make([]fanSlot, n)
	for i := range slots {
		pos := float64(i) - float64(n)/2 + 0.5
		angle := angleDeg * pos * math.Pi / 180
		slots[i] = fanSlot{
			x:     radius * math.Sin(angle),
			y:     math.Abs(radius*math.Cos(angle) - radius),
			angle: angle,
		}
	}
	return slots
}

// fanDrawOrder returns the painter's order for n fan cards: outermost pair
// first (right, then left), moving inward, with the center card last.
// For n = 5 that is [4 0 3 1 2].
func fanDrawOrder(n int) []int {
	order := make([]int, 0, n)
	for i := range n / 2 {
		order = append(order, n-1-i, i)
	}
	if n%2 == 1 {
		order = append(order, n/2)
	}
	return order
}

// rotateCard rotates a card by angle radians, rounded to whole degrees.
// Near-vertical angles use a lossless quarter turn first so only the
// residual angle is resampled.
func rotateCard(img *image.NRGBA, angle float64) *image.NRGBA {
	deg := math.Round(angle * 180 / math.Pi)

	switch {
	case deg > 45 && deg < 135:
		img = intImage.Rotate90(img)
		deg -= 90
	case deg < -45 && deg > -135:
		img = intImage.Rotate270(img)
		deg += 90
	}

	return intImage.Rotate(img, deg)
}

// RenderFan renders every card of batch and lays them out as a hand of
// cards along a shallow arc. Each card is rotated to follow the arc and
// cards closer to the center overlap the outer ones.
//
// Cards are rendered concurrently; the first failure aborts the whole fan
// and is returned wrapped with the card index. An empty batch is an
// ErrCompositionFailure.
func (r *Renderer) RenderFan(batch BatchRequest, dl *Deadline) (*image.NRGBA, error) {
	img, err := r.renderFan(batch, dl)
	if err != nil {
		logFailure("fan", err, dl)
		return nil, err
	}
	return img, nil
}

func (r *Renderer) renderFan(batch BatchRequest, dl *Deadline) (*image.NRGBA, error) {
	if err := dl.Check("fan start"); err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: empty fan", ErrCompositionFailure)
	}

	slots := fanSlots(len(batch), r.opts.fanAngle, r.opts.fanRadius)

	cards, err := r.renderBatch(batch, dl, func(i int, img *image.NRGBA) *image.NRGBA {
		return rotateCard(img, slots[i].angle)
	})
	if err != nil {
		return nil, err
	}
	if err := dl.Check("fan cards"); err != nil {
		return nil, err
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	maxH, maxY := 0, 0.0
	for i, c := range cards {
		half := float64(c.Bounds().Dx()) / 2
		minX = min(minX, slots[i].x-half)
		maxX = max(maxX, slots[i].x+half)
		maxH = max(maxH, c.Bounds().Dy())
		maxY = max(maxY, math.Abs(slots[i].y))
	}

	width := int(math.Ceil(maxX - minX - sizeEpsilon))
	height := maxH + int(math.Ceil(maxY-sizeEpsilon))
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))

	for _, i := range fanDrawOrder(len(cards)) {
		b := cards[i].Bounds()
		x := int(math.Round(slots[i].x - float64(b.Dx())/2 - minX))
		y := int(math.Round(slots[i].y + float64(maxH-b.Dy())/2))

		intImage.Overlay(canvas, cards[i], x, y)

		if err := dl.Check("fan draw"); err != nil {
			return nil, err
		}
	}

	Logger().Debug("fan rendered",
		"cards", len(cards),
		"width", width,
		"height", height,
		"elapsed", dl.Elapsed())

	return canvas, nil
}
