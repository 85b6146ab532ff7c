// Package metric provides color distance functions.
//
// Every metric satisfies Distance(a, a) == 0, symmetry, and
// DistanceSquared(a, b) == Distance(a, b)^2. Consumers that only compare
// distances, such as nearest-palette search, should call DistanceSquared and
// never pay for the square root.
package metric

import (
	"math"

	"github.com/gogpu/chroma/colorspace"
)

// Metric scores the difference between two colors of the same space.
type Metric[C any] interface {
	Distance(a, b C) float32
	DistanceSquared(a, b C) float32
}

// Nearest returns the index of the palette entry closest to c under m.
// Ties resolve to the lowest index. It returns -1 for an empty palette.
//
// The search is a linear scan; palettes hold at most 256 entries.
func Nearest[C any, M Metric[C]](m M, c C, palette []C) int {
	best := -1
	bestD := float32(math.MaxFloat32)
	for i := range palette {
		d := m.DistanceSquared(c, palette[i])
		if d < bestD {
			best, bestD = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Euclidean is the straight-line distance over all channels of a space.
type Euclidean[C colorspace.Space[C]] struct{}

// DistanceSquared returns the sum of squared channel differences.
func (Euclidean[C]) DistanceSquared(a, b C) float32 {
	va, vb := a.Vector(), b.Vector()
	var sum float32
	for i := range va {
		d := va[i] - vb[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance.
func (e Euclidean[C]) Distance(a, b C) float32 {
	return sqrt32(e.DistanceSquared(a, b))
}

// Manhattan is the sum of absolute channel differences.
type Manhattan[C colorspace.Space[C]] struct{}

// Distance returns the L1 distance.
func (Manhattan[C]) Distance(a, b C) float32 {
	va, vb := a.Vector(), b.Vector()
	var sum float32
	for i := range va {
		sum += abs32(va[i] - vb[i])
	}
	return sum
}

// DistanceSquared returns Distance squared.
func (m Manhattan[C]) DistanceSquared(a, b C) float32 {
	d := m.Distance(a, b)
	return d * d
}

// Chebyshev is the largest absolute channel difference.
type Chebyshev[C colorspace.Space[C]] struct{}

// Distance returns the L-infinity distance.
func (Chebyshev[C]) Distance(a, b C) float32 {
	va, vb := a.Vector(), b.Vector()
	var m float32
	for i := range va {
		m = max(m, abs32(va[i]-vb[i]))
	}
	return m
}

// DistanceSquared returns Distance squared.
func (c Chebyshev[C]) DistanceSquared(a, b C) float32 {
	d := c.Distance(a, b)
	return d * d
}

// WeightedEuclidean scales each squared channel difference by a weight and
// divides the sum by Divisor. A zero Divisor is treated as 1.
type WeightedEuclidean[C colorspace.Space[C]] struct {
	Weights colorspace.Vec
	Divisor float32
}

// DistanceSquared returns sum(w_i * d_i^2) / Divisor.
func (w WeightedEuclidean[C]) DistanceSquared(a, b C) float32 {
	va, vb := a.Vector(), b.Vector()
	var sum float32
	for i := range va {
		d := va[i] - vb[i]
		sum += w.Weights[i] * d * d
	}
	if w.Divisor != 0 {
		sum /= w.Divisor
	}
	return sum
}

// Distance returns the square root of DistanceSquared.
func (w WeightedEuclidean[C]) Distance(a, b C) float32 {
	return sqrt32(w.DistanceSquared(a, b))
}
