package frame

import "sync"

// Pool is a thread-safe pool for reusing frame storage.
//
// Pool groups storage by frame dimensions, allowing efficient reuse of
// identically-sized working frames across pipeline stages. This reduces GC
// pressure for hosts that process a stream of same-sized images.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[T any] struct {
	mu      sync.Mutex
	buckets map[poolKey][][]T
	maxSize int // max slices per bucket
}

// poolKey identifies a bucket of identical frame sizes.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new frame pool with the given maximum slices per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool[T any](maxPerBucket int) *Pool[T] {
	return &Pool[T]{
		buckets: make(map[poolKey][][]T),
		maxSize: maxPerBucket,
	}
}

// Get acquires a compact frame (stride == width) of the given size.
// Reused storage is cleared to the zero value of T.
// The frame must be handed back with Frame.Release.
func (p *Pool[T]) Get(width, height int) (*Frame[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	var pix []T
	if len(bucket) > 0 {
		pix = bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		clear(pix)
	} else {
		p.mu.Unlock()
		pix = make([]T, width*height)
	}

	return &Frame[T]{
		Pix:    pix,
		Width:  width,
		Height: height,
		Stride: width,
		owner:  p,
	}, nil
}

// put stores released storage. Full buckets drop the slice for the GC.
func (p *Pool[T]) put(width, height int, pix []T) {
	if pix == nil {
		return
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, pix)
}

// Idle returns the number of slices currently held by the pool.
func (p *Pool[T]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
