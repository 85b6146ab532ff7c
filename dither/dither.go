// Package dither maps working-space frames onto a palette.
//
// Three families are provided. ErrorDiffusion spreads each pixel's
// quantization error to unvisited neighbors and must run in raster order on
// a single goroutine. Ordered adds a position-dependent bias from a threshold
// map before the nearest-color search, so rows are independent and run in
// parallel. None is the plain nearest-color mapping.
//
// Every ditherer writes palette indices into a uint8 frame of the source's
// size. Palette colors are expected in the same space as the source; decode
// them once (see quantize.Decode) before dithering.
package dither

import (
	"errors"
	"fmt"

	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/metric"
)

var (
	// ErrPalette is returned for an empty palette or one with more than
	// 256 entries.
	ErrPalette = errors.New("dither: palette must hold 1..256 colors")

	// ErrSize is returned when the destination does not match the source.
	ErrSize = errors.New("dither: destination size mismatch")

	// ErrUnknown is returned by New for an unregistered name.
	ErrUnknown = errors.New("dither: unknown ditherer")
)

// Ditherer maps src onto pal, writing indices to dst.
type Ditherer[C any] interface {
	// RequiresSequentialProcessing reports whether rows depend on earlier
	// rows. Such ditherers ignore the Runner.
	RequiresSequentialProcessing() bool

	// Dither writes, for every source pixel, the index of the palette
	// entry chosen for it. r may be nil.
	Dither(src *frame.Frame[C], pal []C, m metric.Metric[C], dst *frame.Frame[uint8], r frame.Runner) error
}

func check[C any](src *frame.Frame[C], pal []C, dst *frame.Frame[uint8]) error {
	if len(pal) == 0 || len(pal) > 256 {
		return fmt.Errorf("%w: got %d", ErrPalette, len(pal))
	}
	if !frame.SameSize(src, dst) {
		return fmt.Errorf("%w: src %dx%d, dst %dx%d", ErrSize, src.Width, src.Height, dst.Width, dst.Height)
	}
	return nil
}

// None maps every pixel to its nearest palette entry.
type None[C any] struct{}

// RequiresSequentialProcessing returns false.
func (None[C]) RequiresSequentialProcessing() bool { return false }

// Dither implements Ditherer.
func (None[C]) Dither(src *frame.Frame[C], pal []C, m metric.Metric[C], dst *frame.Frame[uint8], r frame.Runner) error {
	if err := check(src, pal, dst); err != nil {
		return err
	}
	frame.ForRows(r, src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := dst.Row(y)
			for x, c := range src.Row(y) {
				out[x] = uint8(metric.Nearest(m, c, pal))
			}
		}
	})
	return nil
}
