package chroma

import (
	"golang.org/x/image/draw"

	"github.com/gogpu/chroma/accum"
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/scale"
)

// Upscale enlarges f by the upscaler's integer factor. Neighbors are
// compared through key; matched sub-pixels are blended with lerp.
func Upscale[C any, K comparable, P colorspace.Projector[C, K], L accum.Lerper[C]](
	e *Engine, f *frame.Frame[C], u scale.Upscaler, key P, lerp L,
) (*frame.Frame[C], error) {
	const op = "upscale"
	if f == nil {
		return nil, invalid(op, "nil frame")
	}
	n := u.Factor()
	if n == 0 {
		return nil, unsupported(op, "upscaler %s", u)
	}
	dst, err := newFrame[C](e, f.Width*n, f.Height*n)
	if err != nil {
		return nil, wrap(op, err)
	}
	if err := scale.Upscale[C, K, P, L](f, u, key, lerp, dst, e.runner()); err != nil {
		dst.Release()
		return nil, wrap(op, err)
	}
	return dst, nil
}

// Downscale shrinks f by integer ratios, averaging each block through the
// accumulator A. Ratios above scale.MaxRatio are unsupported; ratios below
// 1 or larger than the image are invalid.
func Downscale[C any, A any, PA accum.Ptr[C, A]](e *Engine, f *frame.Frame[C], ratioX, ratioY int) (*frame.Frame[C], error) {
	const op = "downscale"
	if f == nil {
		return nil, invalid(op, "nil frame")
	}
	switch {
	case ratioX < 1 || ratioY < 1:
		return nil, invalid(op, "ratio %dx%d", ratioX, ratioY)
	case ratioX > scale.MaxRatio || ratioY > scale.MaxRatio:
		return nil, unsupported(op, "ratio %dx%d above %d", ratioX, ratioY, scale.MaxRatio)
	}
	if err := scale.CheckRatio(f.Width, f.Height, ratioX, ratioY); err != nil {
		return nil, wrap(op, err)
	}
	w, h := scale.DownscaleSize(f.Width, f.Height, ratioX, ratioY)
	dst, err := newFrame[C](e, w, h)
	if err != nil {
		return nil, wrap(op, err)
	}
	if err := scale.Downscale[C, A, PA](f, ratioX, ratioY, dst, e.runner()); err != nil {
		dst.Release()
		return nil, wrap(op, err)
	}
	return dst, nil
}

// Resample resizes f to width x height with the continuous kernel k,
// accumulating through A.
func Resample[C any, A any, PA accum.Ptr[C, A]](e *Engine, f *frame.Frame[C], k *draw.Kernel, width, height int) (*frame.Frame[C], error) {
	const op = "resample"
	if f == nil {
		return nil, invalid(op, "nil frame")
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, invalid(op, "empty source frame %dx%d", f.Width, f.Height)
	}
	if width <= 0 || height <= 0 {
		return nil, invalid(op, "target size %dx%d", width, height)
	}
	rs, err := e.Resampler(k)
	if err != nil {
		return nil, wrap(op, err)
	}
	dst, err := newFrame[C](e, width, height)
	if err != nil {
		return nil, wrap(op, err)
	}
	if err := scale.Resample[C, A, PA](rs, f, dst, e.runner()); err != nil {
		dst.Release()
		return nil, wrap(op, err)
	}
	e.logger().Debug("chroma: resampled", "from", [2]int{f.Width, f.Height}, "to", [2]int{width, height}, "support", k.Support)
	return dst, nil
}
