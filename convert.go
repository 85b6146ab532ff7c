package chroma

import (
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
)

// Decode converts a host frame to a working frame of C, one row band per
// worker. The result is compact and, on an engine, pooled.
func Decode[P, C any, D colorspace.Decoder[P, C]](e *Engine, src *frame.Frame[P], dec D) (*frame.Frame[C], error) {
	const op = "decode"
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return nil, invalid(op, "empty source frame")
	}
	dst, err := newFrame[C](e, src.Width, src.Height)
	if err != nil {
		return nil, wrap(op, err)
	}
	frame.ForRows(e.runner(), src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := dst.Row(y)
			for x, p := range src.Row(y) {
				out[x] = dec.Decode(p)
			}
		}
	})
	return dst, nil
}

// Encode writes f into the host frame dst, which must have f's size. Only
// the width x height area of dst is touched, so a padded stride is kept.
func Encode[C, P any, E colorspace.Encoder[C, P]](e *Engine, f *frame.Frame[C], enc E, dst *frame.Frame[P]) error {
	const op = "encode"
	if f == nil || dst == nil {
		return invalid(op, "nil frame")
	}
	if !frame.SameSize(f, dst) {
		return invalid(op, "source %dx%d, destination %dx%d", f.Width, f.Height, dst.Width, dst.Height)
	}
	frame.ForRows(e.runner(), f.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := dst.Row(y)
			for x, c := range f.Row(y) {
				out[x] = enc.Encode(c)
			}
		}
	})
	return nil
}
