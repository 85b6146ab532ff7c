package chroma

import (
	"errors"
	"fmt"

	"github.com/gogpu/chroma/dither"
	"github.com/gogpu/chroma/scale"
)

// Error kinds. Every error returned by this package wraps exactly one of
// them, plus the sub-package error that caused it when there is one.
var (
	// ErrInvalidArgument reports degenerate input: empty frames, mismatched
	// sizes, palette budgets outside 1..256, ratios larger than the image.
	ErrInvalidArgument = errors.New("chroma: invalid argument")

	// ErrUnsupported reports a configuration the engine does not implement:
	// unknown kernels or ditherers, ratios above scale.MaxRatio.
	ErrUnsupported = errors.New("chroma: unsupported configuration")
)

// wrap classifies err from a sub-package and adds the operation name.
// Unrecognized causes count as invalid arguments.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := ErrInvalidArgument
	switch {
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrUnsupported):
		return fmt.Errorf("chroma: %s: %w", op, err)
	case errors.Is(err, scale.ErrUpscaler),
		errors.Is(err, scale.ErrKernel),
		errors.Is(err, dither.ErrUnknown):
		kind = ErrUnsupported
	}
	return fmt.Errorf("chroma: %s: %w: %w", op, kind, err)
}

// invalid builds an ErrInvalidArgument error without a cause.
func invalid(op, format string, args ...any) error {
	return fmt.Errorf("chroma: %s: %w: %s", op, ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// unsupported builds an ErrUnsupported error without a cause.
func unsupported(op, format string, args ...any) error {
	return fmt.Errorf("chroma: %s: %w: %s", op, ErrUnsupported, fmt.Sprintf(format, args...))
}
