package maestro

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/maestro/internal/parallel"
)

// Renderer renders cards, fans and albums from a frame catalog.
//
// A Renderer is safe for concurrent use by multiple requests. Each request
// passes its own Deadline; the Renderer keeps no per-request state.
type Renderer struct {
	catalog   *FrameCatalog
	portraits PortraitSource
	pool      *parallel.WorkerPool
	opts      options
}

// New creates a Renderer over catalog and portraits.
// Call Close to stop the worker pool when the Renderer is no longer needed.
func New(catalog *FrameCatalog, portraits PortraitSource, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		catalog:   catalog,
		portraits: portraits,
		pool:      parallel.NewWorkerPool(o.workers),
		opts:      o,
	}
}

// Catalog returns the frame catalog the Renderer draws from.
func (r *Renderer) Catalog() *FrameCatalog {
	return r.catalog
}

// Close stops the worker pool. Renders started after Close still complete,
// running their pixel work on the calling goroutine.
func (r *Renderer) Close() {
	r.pool.Close()
}

// renderBatch renders every card of batch concurrently and returns the
// rasters in batch order, each passed through post if post is not nil.
// The first failure aborts the batch and is returned wrapped with its index.
func (r *Renderer) renderBatch(batch BatchRequest, dl *Deadline, post func(i int, img *image.NRGBA) *image.NRGBA) ([]*image.NRGBA, error) {
	return parallel.Collect(len(batch), r.opts.batchLimit, func(_ context.Context, i int) (*image.NRGBA, error) {
		img, err := r.renderCard(batch[i], dl)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		if post != nil {
			img = post(i, img)
		}
		return img, nil
	})
}
