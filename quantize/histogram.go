package quantize

import (
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
)

// AlphaPolicy selects how fully transparent pixels take part in
// quantization.
type AlphaPolicy int

const (
	// ExcludeTransparent skips pixels with alpha 0.
	ExcludeTransparent AlphaPolicy = iota

	// IncludeTransparent counts every pixel, transparent ones included.
	IncludeTransparent

	// ReserveTransparent skips pixels with alpha 0 and reserves palette
	// entry 0 for colorspace.Transparent.
	ReserveTransparent
)

// String returns the policy name.
func (p AlphaPolicy) String() string {
	switch p {
	case ExcludeTransparent:
		return "exclude"
	case IncludeTransparent:
		return "include"
	case ReserveTransparent:
		return "reserve"
	default:
		return "unknown"
	}
}

// BuildHistogram counts the pixels of f under policy.
func BuildHistogram(f *frame.Frame[colorspace.ARGB32], policy AlphaPolicy) Histogram {
	h := make(Histogram)
	skip := policy != IncludeTransparent
	for y := 0; y < f.Height; y++ {
		for _, c := range f.Row(y) {
			if skip && c.A() == 0 {
				continue
			}
			h[c]++
		}
	}
	return h
}

// Generate runs q under policy. With ReserveTransparent the quantizer gets
// one color less, any transparent histogram entries are ignored, and the
// result starts with colorspace.Transparent. A reserving request over an
// empty histogram yields the single transparent entry.
func Generate(q Quantizer, h Histogram, maxColors int, policy AlphaPolicy) (Palette, error) {
	if policy != ReserveTransparent {
		return q.GeneratePalette(h, maxColors)
	}
	if maxColors < 1 || maxColors > MaxColors {
		return nil, validate(h, maxColors)
	}

	opaque := make(Histogram, len(h))
	for c, n := range h {
		if c.A() != 0 {
			opaque[c] = n
		}
	}
	if len(opaque) == 0 || maxColors == 1 {
		return Palette{colorspace.Transparent}, nil
	}

	p, err := q.GeneratePalette(opaque, maxColors-1)
	if err != nil {
		return nil, err
	}
	return append(Palette{colorspace.Transparent}, p...), nil
}
