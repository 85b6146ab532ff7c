// Package frame provides the pixel grid shared by every stage of chroma.
//
// A Frame is a width x height grid of elements with a row pitch (stride)
// that may exceed the width. The same type carries host storage pixels
// (for example colorspace.ARGB32) and working-space colors (for example
// colorspace.Oklab); element (x, y) lives at Pix[y*Stride+x].
//
// Frames are either borrowed (Wrap) or owned by a Pool (Pool.Get). A pooled
// frame is returned with Release, which is safe to call on every exit path
// and more than once.
package frame

import (
	"errors"
	"sync"
)

// Common errors for frame construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("frame: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than the width.
	ErrInvalidStride = errors.New("frame: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("frame: data buffer too small")
)

// Frame is a strided grid of T.
//
// Thread safety: concurrent reads are safe. Concurrent writes are safe only
// when goroutines write disjoint rows.
type Frame[T any] struct {
	// Pix holds the elements. Row y starts at Pix[y*Stride].
	Pix []T

	// Width and Height are the grid dimensions in elements.
	Width, Height int

	// Stride is the distance between vertically adjacent elements.
	Stride int

	// owner is the pool that allocated Pix, nil for borrowed frames.
	owner    *Pool[T]
	released bool
	mu       sync.Mutex
}

// New allocates a frame with stride equal to width.
func New[T any](width, height int) (*Frame[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Frame[T]{
		Pix:    make([]T, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}, nil
}

// Wrap creates a frame over existing data without copying.
// The caller keeps ownership of pix; Release on the result is a no-op.
func Wrap[T any](pix []T, width, height, stride int) (*Frame[T], error) {
	if err := Validate(len(pix), width, height, stride); err != nil {
		return nil, err
	}
	return &Frame[T]{
		Pix:    pix[:RequiredLen(width, height, stride)],
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// Validate checks that a buffer of length n can hold a width x height grid
// with the given stride.
func Validate(n, width, height, stride int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if stride < width {
		return ErrInvalidStride
	}
	if n < RequiredLen(width, height, stride) {
		return ErrDataTooSmall
	}
	return nil
}

// RequiredLen returns the minimum slice length for the grid. The last row
// does not need trailing padding.
func RequiredLen(width, height, stride int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (height-1)*stride + width
}

// Row returns the width elements of row y.
func (f *Frame[T]) Row(y int) []T {
	start := y * f.Stride
	return f.Pix[start : start+f.Width : start+f.Width]
}

// At returns the element at (x, y). Coordinates must be in range.
func (f *Frame[T]) At(x, y int) T {
	return f.Pix[y*f.Stride+x]
}

// Set stores v at (x, y). Coordinates must be in range.
func (f *Frame[T]) Set(x, y int, v T) {
	f.Pix[y*f.Stride+x] = v
}

// AtClamped returns the element at (x, y) with coordinates clamped to the
// frame edges, replicating border elements.
func (f *Frame[T]) AtClamped(x, y int) T {
	return f.Pix[clamp(y, 0, f.Height-1)*f.Stride+clamp(x, 0, f.Width-1)]
}

// Fill sets every element inside the width x height area to v.
func (f *Frame[T]) Fill(v T) {
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Clone returns a compact deep copy (stride == width) that is not pooled.
func (f *Frame[T]) Clone() *Frame[T] {
	out := &Frame[T]{
		Pix:    make([]T, f.Width*f.Height),
		Width:  f.Width,
		Height: f.Height,
		Stride: f.Width,
	}
	for y := 0; y < f.Height; y++ {
		copy(out.Pix[y*f.Width:(y+1)*f.Width], f.Row(y))
	}
	return out
}

// SameSize reports whether f and o have equal dimensions.
func SameSize[A, B any](f *Frame[A], o *Frame[B]) bool {
	return f.Width == o.Width && f.Height == o.Height
}

// Pooled reports whether the frame belongs to a pool and has not been
// released yet.
func (f *Frame[T]) Pooled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.owner != nil && !f.released
}

// Release returns a pooled frame to its pool. After Release the frame must
// not be used. Release is idempotent and a no-op for borrowed frames.
func (f *Frame[T]) Release() {
	if f == nil {
		return
	}
	f.mu.Lock()
	if f.owner == nil || f.released {
		f.mu.Unlock()
		return
	}
	f.released = true
	owner := f.owner
	pix := f.Pix
	w, h := f.Width, f.Height
	f.Pix = nil
	f.mu.Unlock()

	owner.put(w, h, pix)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
