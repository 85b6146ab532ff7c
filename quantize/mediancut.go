package quantize

import (
	"cmp"
	"slices"

	"github.com/gogpu/chroma/colorspace"
)

// Space selects the coordinates MedianCut measures and splits in.
type Space int

const (
	// RGB splits on straight sRGB bytes.
	RGB Space = iota

	// Oklab splits in the perceptually uniform Oklab space.
	Oklab
)

// MedianCut recursively splits the box with the largest population x range
// product at the weighted median of its widest channel. Palette entries are
// the weighted means of the final boxes, computed in Space.
type MedianCut struct {
	Space Space
}

type cutEntry struct {
	weighted
	v [4]float64
}

type box struct {
	entries []cutEntry
	count   uint64
	channel int
	spread  float64
}

func (m MedianCut) coords(c colorspace.ARGB32) [4]float64 {
	a, r, g, b := c.Split()
	if m.Space == Oklab {
		o := colorspace.OklabCodec{}.Decode(c)
		// Alpha on the same 0..1 scale as L.
		return [4]float64{float64(o.L), float64(o.A), float64(o.B), float64(a) / 255}
	}
	return [4]float64{float64(r), float64(g), float64(b), float64(a)}
}

func (m MedianCut) color(v [4]float64) colorspace.ARGB32 {
	if m.Space == Oklab {
		return colorspace.OklabCodec{}.Encode(colorspace.Oklab{
			L: float32(v[0]), A: float32(v[1]), B: float32(v[2]), Alpha: float32(v[3]),
		})
	}
	ch := func(f float64) uint8 { return uint8(min(max(f+0.5, 0), 255)) }
	return colorspace.PackARGB32(ch(v[3]), ch(v[0]), ch(v[1]), ch(v[2]))
}

func newBox(entries []cutEntry) *box {
	b := &box{entries: entries}
	lo := [4]float64{1e9, 1e9, 1e9, 1e9}
	hi := [4]float64{-1e9, -1e9, -1e9, -1e9}
	for _, e := range entries {
		b.count += e.count
		for i, v := range e.v {
			lo[i] = min(lo[i], v)
			hi[i] = max(hi[i], v)
		}
	}
	for i := range lo {
		if s := hi[i] - lo[i]; s > b.spread {
			b.spread, b.channel = s, i
		}
	}
	return b
}

func (b *box) priority() float64 {
	return float64(b.count) * b.spread
}

// split cuts b at the weighted median of its widest channel. Both halves
// are non-empty.
func (b *box) split() (*box, *box) {
	ch := b.channel
	slices.SortFunc(b.entries, func(x, y cutEntry) int {
		if c := cmp.Compare(x.v[ch], y.v[ch]); c != 0 {
			return c
		}
		return cmp.Compare(x.color, y.color)
	})
	var cum uint64
	at := len(b.entries) - 1
	for i, e := range b.entries {
		cum += e.count
		if cum*2 >= b.count {
			at = i + 1
			break
		}
	}
	at = min(max(at, 1), len(b.entries)-1)
	return newBox(b.entries[:at]), newBox(b.entries[at:])
}

func (m MedianCut) mean(b *box) colorspace.ARGB32 {
	var v [4]float64
	for _, e := range b.entries {
		w := float64(e.count)
		for i := range v {
			v[i] += e.v[i] * w
		}
	}
	for i := range v {
		v[i] /= float64(b.count)
	}
	return m.color(v)
}

// GeneratePalette implements Quantizer.
func (m MedianCut) GeneratePalette(h Histogram, maxColors int) (Palette, error) {
	if err := validate(h, maxColors); err != nil {
		return nil, err
	}
	if p, ok := exact(h, maxColors); ok {
		return p, nil
	}

	sorted := sortedEntries(h)
	entries := make([]cutEntry, len(sorted))
	for i, e := range sorted {
		entries[i] = cutEntry{weighted: e, v: m.coords(e.color)}
	}

	boxes := []*box{newBox(entries)}
	for len(boxes) < maxColors {
		best := -1
		for i, b := range boxes {
			if len(b.entries) < 2 || b.spread == 0 {
				continue
			}
			if best < 0 || b.priority() > boxes[best].priority() {
				best = i
			}
		}
		if best < 0 {
			break
		}
		lo, hi := boxes[best].split()
		boxes[best] = lo
		boxes = append(boxes, hi)
	}

	out := make([]weighted, len(boxes))
	for i, b := range boxes {
		out[i] = weighted{m.mean(b), b.count}
	}
	return order(out), nil
}
