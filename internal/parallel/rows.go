package parallel

// minRowsPerBand keeps bands large enough that scheduling overhead stays
// below the per-row pixel work for card-sized rasters.
const minRowsPerBand = 16

// Rows splits [0, height) into contiguous bands and calls fn(y0, y1) for
// each band on the pool. It returns once every band has finished.
//
// Bands never overlap, so fn may write to its own rows without locking.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}

	bands := min(p.workers, (height+minRowsPerBand-1)/minRowsPerBand)
	if bands <= 1 {
		fn(0, height)
		return
	}

	step := (height + bands - 1) / bands
	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += step {
		y1 := min(y0+step, height)
		work = append(work, func() { fn(y0, y1) })
	}

	p.ExecuteAll(work)
}
