package chroma

import (
	"sync/atomic"

	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/dither"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/internal/parallel"
	"github.com/gogpu/chroma/metric"
	"github.com/gogpu/chroma/quantize"
)

// GeneratePalette reduces a histogram to at most maxColors entries with q.
// The result is deterministic for a given histogram.
func GeneratePalette(h quantize.Histogram, maxColors int, q quantize.Quantizer) (quantize.Palette, error) {
	const op = "generate palette"
	if q == nil {
		return nil, invalid(op, "nil quantizer")
	}
	pal, err := q.GeneratePalette(h, maxColors)
	if err != nil {
		return nil, wrap(op, err)
	}
	Logger().Debug("chroma: palette generated", "colors", len(h), "size", len(pal), "max", maxColors)
	return pal, nil
}

// Quantize builds the histogram of src under policy and generates its
// palette.
func Quantize(e *Engine, src *frame.Frame[colorspace.ARGB32], maxColors int, q quantize.Quantizer, policy quantize.AlphaPolicy) (quantize.Palette, error) {
	const op = "quantize"
	if src == nil {
		return nil, invalid(op, "nil frame")
	}
	if q == nil {
		return nil, invalid(op, "nil quantizer")
	}
	h := quantize.BuildHistogram(src, policy)
	pal, err := quantize.Generate(q, h, maxColors, policy)
	if err != nil {
		return nil, wrap(op, err)
	}
	e.logger().Debug("chroma: palette generated", "colors", len(h), "size", len(pal), "policy", policy)
	return pal, nil
}

// Dither maps f onto pal and returns the index frame. Ditherers whose rows
// depend on earlier rows run on the calling goroutine; the rest fan out
// over the engine's workers.
func Dither[C any](e *Engine, f *frame.Frame[C], pal []C, m metric.Metric[C], d dither.Ditherer[C]) (*frame.Frame[uint8], error) {
	return ditherWith(e, e.runner(), f, pal, m, d)
}

func ditherWith[C any](e *Engine, r frame.Runner, f *frame.Frame[C], pal []C, m metric.Metric[C], d dither.Ditherer[C]) (*frame.Frame[uint8], error) {
	const op = "dither"
	if f == nil {
		return nil, invalid(op, "nil frame")
	}
	if m == nil || d == nil {
		return nil, invalid(op, "nil metric or ditherer")
	}
	if d.RequiresSequentialProcessing() {
		r = nil
	}
	dst, err := newFrame[uint8](e, f.Width, f.Height)
	if err != nil {
		return nil, wrap(op, err)
	}
	if err := d.Dither(f, pal, m, dst, r); err != nil {
		dst.Release()
		return nil, wrap(op, err)
	}
	return dst, nil
}

// DitherAll dithers independent frames concurrently, one frame per worker.
// Rows of a single frame are processed sequentially. On error every result
// is released and the error of the lowest-indexed failing frame is
// returned.
func DitherAll[C any](e *Engine, frames []*frame.Frame[C], pal []C, m metric.Metric[C], d dither.Ditherer[C]) ([]*frame.Frame[uint8], error) {
	out := make([]*frame.Frame[uint8], len(frames))
	errs := make([]error, len(frames))

	var pool *parallel.WorkerPool
	if e.runner() != nil {
		pool = e.pool
	}
	parallel.ForEach(pool, len(frames), func(i int) {
		out[i], errs[i] = ditherWith(e, nil, frames[i], pal, m, d)
	})

	for i, err := range errs {
		if err != nil {
			for _, f := range out {
				f.Release()
			}
			e.logger().Warn("chroma: dither batch failed", "frame", i, "frames", len(frames), "err", err)
			return nil, err
		}
	}
	return out, nil
}

// ApplyPalette expands an index frame back to host pixels.
func ApplyPalette(e *Engine, idx *frame.Frame[uint8], pal quantize.Palette) (*frame.Frame[colorspace.ARGB32], error) {
	const op = "apply palette"
	if idx == nil {
		return nil, invalid(op, "nil frame")
	}
	if len(pal) == 0 || len(pal) > quantize.MaxColors {
		return nil, invalid(op, "palette of %d colors", len(pal))
	}
	dst, err := newFrame[colorspace.ARGB32](e, idx.Width, idx.Height)
	if err != nil {
		return nil, wrap(op, err)
	}

	var bad atomic.Int32
	bad.Store(-1)
	frame.ForRows(e.runner(), idx.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := dst.Row(y)
			for x, i := range idx.Row(y) {
				if int(i) >= len(pal) {
					bad.Store(int32(i))
					continue
				}
				out[x] = pal[i]
			}
		}
	})
	if i := bad.Load(); i >= 0 {
		dst.Release()
		return nil, invalid(op, "index %d outside palette of %d", i, len(pal))
	}
	return dst, nil
}
