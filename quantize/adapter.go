package quantize

import (
	"image"
	"image/color"

	"github.com/soniakeys/quant"
	"golang.org/x/image/draw"

	"github.com/gogpu/chroma/internal/hostimg"
)

// DrawQuantizer exposes a Quantizer as a draw.Quantizer, for use with
// image/gif encoding options and similar consumers.
type DrawQuantizer struct {
	Q      Quantizer
	Policy AlphaPolicy
}

var _ draw.Quantizer = DrawQuantizer{}

// Quantize appends up to cap(p)-len(p) colors to p. When nothing can be
// generated p is returned unchanged.
func (d DrawQuantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	n := min(cap(p)-len(p), MaxColors)
	if n <= 0 {
		return p
	}
	pal, err := paletteOf(d.Q, m, n, d.Policy)
	if err != nil {
		return p
	}
	return append(p, hostimg.ColorPalette(pal)...)
}

// SoniaQuantizer exposes a Quantizer as a quant.Quantizer. N is the color
// budget; zero or values above MaxColors mean MaxColors.
type SoniaQuantizer struct {
	Q      Quantizer
	N      int
	Policy AlphaPolicy
}

var _ quant.Quantizer = SoniaQuantizer{}

func (s SoniaQuantizer) budget() int {
	if s.N <= 0 || s.N > MaxColors {
		return MaxColors
	}
	return s.N
}

// Palette returns a linear palette of at most N colors. An image that
// cannot be quantized yields an empty palette.
func (s SoniaQuantizer) Palette(img image.Image) quant.Palette {
	pal, err := paletteOf(s.Q, img, s.budget(), s.Policy)
	if err != nil {
		return quant.LinearPalette{}
	}
	return quant.LinearPalette{Palette: hostimg.ColorPalette(pal)}
}

// Paletted quantizes img to a paletted image of at most N colors, mapping
// each pixel to its nearest palette entry. It returns nil when no palette
// can be built.
func (s SoniaQuantizer) Paletted(img image.Image) *image.Paletted {
	cp := s.Palette(img).ColorPalette()
	if len(cp) == 0 {
		return nil
	}
	out := image.NewPaletted(img.Bounds(), cp)
	draw.Draw(out, out.Rect, img, img.Bounds().Min, draw.Src)
	return out
}

func paletteOf(q Quantizer, img image.Image, n int, policy AlphaPolicy) (Palette, error) {
	f, err := hostimg.FromImage(img)
	if err != nil {
		return nil, err
	}
	return Generate(q, BuildHistogram(f, policy), n, policy)
}
