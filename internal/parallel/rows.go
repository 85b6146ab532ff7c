package parallel

// minRowsPerBand keeps bands large enough that scheduling overhead stays
// below the per-row work of small kernels.
const minRowsPerBand = 4

// Bands splits [0, height) into at most n contiguous, non-overlapping
// ranges. Every row belongs to exactly one band.
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if maxBands := (height + minRowsPerBand - 1) / minRowsPerBand; n > maxBands {
		n = maxBands
	}
	bands := make([][2]int, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := 0; i < n; i++ {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, [2]int{y, y + h})
		y += h
	}
	return bands
}

// ForRows calls fn(y0, y1) for disjoint row ranges covering [0, height).
// With a nil pool the whole range runs on the calling goroutine. fn must
// only write destination rows inside its range.
func ForRows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p == nil || p.workers == 1 || height <= minRowsPerBand {
		fn(0, height)
		return
	}

	// Two bands per worker leaves room for stealing.
	bands := Bands(height, p.Workers()*2)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(work)
}

// ForEach calls fn(i) for every i in [0, n), in parallel when a pool is
// given. It is used to process independent images concurrently.
func ForEach(p *WorkerPool, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p == nil || n == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	work := make([]func(), n)
	for i := range work {
		work[i] = func() { fn(i) }
	}
	p.ExecuteAll(work)
}

// ForRows implements frame.Runner. A nil pool runs fn sequentially.
func (p *WorkerPool) ForRows(height int, fn func(y0, y1 int)) {
	ForRows(p, height, fn)
}
