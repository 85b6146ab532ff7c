// Package quantize reduces the colors of an image to a small palette.
//
// A quantization request builds one Histogram from the source pixels, hands
// it to a Quantizer, and receives an ordered Palette of at most 256 entries.
// Quantizers are deterministic: the same histogram and color budget always
// produce the same palette.
package quantize

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/chroma/colorspace"
)

// MaxColors is the largest palette a quantizer produces.
const MaxColors = 256

var (
	// ErrEmptyHistogram is returned when there is nothing to quantize.
	ErrEmptyHistogram = errors.New("quantize: empty histogram")

	// ErrColorCount is returned when maxColors is outside 1..MaxColors.
	ErrColorCount = errors.New("quantize: color count out of range")
)

// Histogram counts occurrences of each distinct pixel.
type Histogram map[colorspace.ARGB32]uint32

// Palette is an ordered list of at most MaxColors colors.
type Palette []colorspace.ARGB32

// Quantizer builds a palette from a histogram.
//
// Implementations return between 1 and maxColors entries. When the histogram
// holds at most maxColors distinct colors they are returned unchanged.
type Quantizer interface {
	GeneratePalette(h Histogram, maxColors int) (Palette, error)
}

// Index returns the position of c in p, or -1.
func (p Palette) Index(c colorspace.ARGB32) int {
	return slices.Index(p, c)
}

// Decode converts every entry to a working space with d. Ditherers call it
// once before any worker starts.
func Decode[C any, D colorspace.Decoder[colorspace.ARGB32, C]](p Palette, d D) []C {
	out := make([]C, len(p))
	for i, c := range p {
		out[i] = d.Decode(c)
	}
	return out
}

func validate(h Histogram, maxColors int) error {
	if maxColors < 1 || maxColors > MaxColors {
		return fmt.Errorf("%w: %d", ErrColorCount, maxColors)
	}
	if len(h) == 0 {
		return ErrEmptyHistogram
	}
	return nil
}

// weighted is a palette candidate with its population.
type weighted struct {
	color colorspace.ARGB32
	count uint64
}

// order sorts by descending population, then ascending value, and merges
// duplicates. Every quantizer ends with it so palettes have one canonical
// order.
func order(entries []weighted) Palette {
	slices.SortFunc(entries, func(a, b weighted) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.color, b.color)
	})
	seen := make(map[colorspace.ARGB32]struct{}, len(entries))
	out := make(Palette, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.color]; dup {
			continue
		}
		seen[e.color] = struct{}{}
		out = append(out, e.color)
	}
	return out
}

// exact returns the histogram colors when they already fit the budget.
func exact(h Histogram, maxColors int) (Palette, bool) {
	if len(h) > maxColors {
		return nil, false
	}
	entries := make([]weighted, 0, len(h))
	for c, n := range h {
		entries = append(entries, weighted{c, uint64(n)})
	}
	return order(entries), true
}

// sortedEntries returns the histogram in ascending color order so that
// algorithms iterating it never depend on map order.
func sortedEntries(h Histogram) []weighted {
	entries := make([]weighted, 0, len(h))
	for c, n := range h {
		entries = append(entries, weighted{c, uint64(n)})
	}
	slices.SortFunc(entries, func(a, b weighted) int { return cmp.Compare(a.color, b.color) })
	return entries
}
