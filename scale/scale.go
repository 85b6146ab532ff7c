// Package scale resizes frames.
//
// Three families share one contract: read a source frame, write every pixel
// of a caller-provided destination frame, and touch each destination row
// from exactly one goroutine. Upscale applies pixel-art pattern rules at
// integer factors, Downscale averages integer blocks through an
// accumulator, and Resample evaluates a continuous kernel at arbitrary
// sizes. All of them clamp neighbor lookups at the edges.
package scale

import (
	"errors"
	"fmt"

	"github.com/gogpu/chroma/frame"
)

var (
	// ErrSize is returned when the destination has the wrong dimensions.
	ErrSize = errors.New("scale: destination size mismatch")

	// ErrRatio is returned for downscale ratios outside 1..MaxRatio or
	// larger than the image.
	ErrRatio = errors.New("scale: invalid downscale ratio")

	// ErrUpscaler is returned for an unknown upscaler.
	ErrUpscaler = errors.New("scale: unsupported upscaler")

	// ErrKernel is returned for a nil or unknown resampling kernel.
	ErrKernel = errors.New("scale: unsupported kernel")
)

func checkSize[A, B any](dst *frame.Frame[A], src *frame.Frame[B], w, h int) error {
	if dst.Width != w || dst.Height != h {
		return fmt.Errorf("%w: %dx%d source needs %dx%d, got %dx%d",
			ErrSize, src.Width, src.Height, w, h, dst.Width, dst.Height)
	}
	return nil
}
