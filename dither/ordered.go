package dither

import (
	"errors"
	"fmt"

	mwdither "github.com/makeworld-the-better-one/dither/v2"

	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/metric"
)

// ErrBayerSize is returned by Bayer for sizes other than 2, 4, 8 and 16.
var ErrBayerSize = errors.New("dither: bayer size must be 2, 4, 8 or 16")

// Threshold is a tiled threshold map with values in (0, 1).
type Threshold struct {
	Width, Height int
	Values        []float32 // row-major
}

// At returns the threshold for pixel (x, y), tiling the map.
func (t Threshold) At(x, y int) float32 {
	return t.Values[(y%t.Height)*t.Width+x%t.Width]
}

// Bayer returns the n x n Bayer matrix, built recursively from the 2 x 2
// base. Entry k maps to (k + 0.5) / n².
func Bayer(n int) (Threshold, error) {
	if n != 2 && n != 4 && n != 8 && n != 16 {
		return Threshold{}, fmt.Errorf("%w: %d", ErrBayerSize, n)
	}
	m := []int{0, 2, 3, 1}
	for size := 2; size < n; size *= 2 {
		next := make([]int, 4*size*size)
		quad := [4]int{0, 2, 3, 1}
		for qy := 0; qy < 2; qy++ {
			for qx := 0; qx < 2; qx++ {
				off := quad[qy*2+qx]
				for y := 0; y < size; y++ {
					for x := 0; x < size; x++ {
						next[(qy*size+y)*2*size+qx*size+x] = 4*m[y*size+x] + off
					}
				}
			}
		}
		m = next
	}
	t := Threshold{Width: n, Height: n, Values: make([]float32, n*n)}
	for i, k := range m {
		t.Values[i] = (float32(k) + 0.5) / float32(n*n)
	}
	return t, nil
}

// FromMatrix converts a dither library ordered matrix. Entry k maps to
// (k + 0.5) / Max.
func FromMatrix(m mwdither.OrderedDitherMatrix) Threshold {
	t := Threshold{Height: len(m.Matrix)}
	if t.Height > 0 {
		t.Width = len(m.Matrix[0])
	}
	t.Values = make([]float32, 0, t.Width*t.Height)
	for _, row := range m.Matrix {
		for _, k := range row {
			t.Values = append(t.Values, (float32(k)+0.5)/float32(m.Max))
		}
	}
	return t
}

// Ordered adds (threshold - 0.5) x Spread to every channel before the
// nearest-color search. Spread is in the units of the color space, for
// example 0..255 for RGBA8 or 0..1 for SRGB. Rows are independent.
type Ordered[C colorspace.Space[C]] struct {
	Map    Threshold
	Spread float32
}

// RequiresSequentialProcessing returns false.
func (Ordered[C]) RequiresSequentialProcessing() bool { return false }

// Dither implements Ditherer.
func (o Ordered[C]) Dither(src *frame.Frame[C], pal []C, m metric.Metric[C], dst *frame.Frame[uint8], r frame.Runner) error {
	if err := check(src, pal, dst); err != nil {
		return err
	}
	if o.Map.Width == 0 || o.Map.Height == 0 {
		return None[C]{}.Dither(src, pal, m, dst, r)
	}
	frame.ForRows(r, src.Height, func(y0, y1 int) {
		var zero C
		for y := y0; y < y1; y++ {
			out := dst.Row(y)
			for x, c := range src.Row(y) {
				bias := (o.Map.At(x, y) - 0.5) * o.Spread
				v := c.Vector()
				for i := range v {
					v[i] += bias
				}
				out[x] = uint8(metric.Nearest(m, zero.FromVector(v).Clamp(), pal))
			}
		}
	})
	return nil
}
