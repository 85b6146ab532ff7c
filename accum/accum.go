// Package accum provides weighted accumulators and interpolation strategies
// over color spaces.
//
// Accumulators are mutable scratch values with a create, AddWeighted...,
// Result lifecycle. They live on the stack of the goroutine that uses them
// and are never shared. Generic kernels instantiate them through a pointer
// constraint so that no allocation happens per pixel:
//
//	func average[C any, A any, PA accum.Ptr[C, A]](px []C) C {
//		var acc A
//		p := PA(&acc)
//		for _, c := range px {
//			p.AddWeighted(c, 1)
//		}
//		return p.Result()
//	}
//
// Two families exist: Float accumulates float32 channel products and works
// for any colorspace.Space; Int8 accumulates integer products for RGBA8 and
// never touches floating point in its inner loop.
package accum

import "github.com/gogpu/chroma/colorspace"

// Accumulator sums weighted colors.
type Accumulator[C any] interface {
	// Reset discards all samples.
	Reset()
	// AddWeighted adds c with weight w. Weights may be negative.
	AddWeighted(c C, w float32)
	// Result returns the weighted mean, clamped to the valid range of the
	// space. With no positive total weight it returns the zero color.
	Result() C
}

// Ptr is the pointer constraint generic kernels use to create accumulators
// of type A on the stack.
type Ptr[C, A any] interface {
	*A
	Accumulator[C]
}

// Float accumulates channel x weight in float32.
type Float[C colorspace.Space[C]] struct {
	sum   colorspace.Vec
	total float32
}

// Reset discards all samples.
func (a *Float[C]) Reset() {
	a.sum = colorspace.Vec{}
	a.total = 0
}

// AddWeighted adds c with weight w.
func (a *Float[C]) AddWeighted(c C, w float32) {
	v := c.Vector()
	for i := range v {
		a.sum[i] += v[i] * w
	}
	a.total += w
}

// Result returns sum/total, clamped.
func (a *Float[C]) Result() C {
	var zero C
	if a.total <= 0 {
		return zero
	}
	var v colorspace.Vec
	for i := range v {
		v[i] = a.sum[i] / a.total
	}
	return zero.FromVector(v).Clamp()
}

// Nearest is the no-op accumulator: it keeps the sample with the largest
// weight and returns it unchanged. Pattern-matching kernels use it to route
// through the generic accumulation machinery without blending.
type Nearest[C any] struct {
	best  C
	bestW float32
	seen  bool
}

// Reset discards all samples.
func (a *Nearest[C]) Reset() {
	*a = Nearest[C]{}
}

// AddWeighted keeps c when w exceeds every earlier weight. Ties keep the
// earlier sample.
func (a *Nearest[C]) AddWeighted(c C, w float32) {
	if !a.seen || w > a.bestW {
		a.best, a.bestW, a.seen = c, w, true
	}
}

// Result returns the heaviest sample or the zero color.
func (a *Nearest[C]) Result() C {
	return a.best
}
