package metric

import (
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/internal/names"
)

// Projected evaluates M on colors projected from space A to space B. It lets
// a pipeline that stores RGBA8 score candidates with a perceptual metric.
type Projected[A, B any, P colorspace.Projector[A, B], M Metric[B]] struct {
	To     P
	Metric M
}

// DistanceSquared projects both colors and delegates.
func (p Projected[A, B, P, M]) DistanceSquared(a, b A) float32 {
	return p.Metric.DistanceSquared(p.To.Project(a), p.To.Project(b))
}

// Distance projects both colors and delegates.
func (p Projected[A, B, P, M]) Distance(a, b A) float32 {
	return p.Metric.Distance(p.To.Project(a), p.To.Project(b))
}

func rgbaToLab(c colorspace.RGBA8) colorspace.Lab { return c.Linear().Lab() }

func rgbaToOklab(c colorspace.RGBA8) colorspace.Oklab { return c.Linear().Oklab() }

func rgbaToDIN99(c colorspace.RGBA8) colorspace.DIN99 { return c.Linear().Lab().DIN99() }

type (
	labProj   = colorspace.Func[colorspace.RGBA8, colorspace.Lab]
	srgbProj  = colorspace.Func[colorspace.RGBA8, colorspace.SRGB]
	din99Proj = colorspace.Func[colorspace.RGBA8, colorspace.DIN99]
	oklabProj = colorspace.Func[colorspace.RGBA8, colorspace.Oklab]
)

func viaLab[M Metric[colorspace.Lab]](m M) Metric[colorspace.RGBA8] {
	return Projected[colorspace.RGBA8, colorspace.Lab, labProj, M]{To: rgbaToLab, Metric: m}
}

var registry = names.NewRegistry[Metric[colorspace.RGBA8]]()

func init() {
	registry.Register("Euclidean", Euclidean[colorspace.RGBA8]{})
	registry.Register("Manhattan", Manhattan[colorspace.RGBA8]{})
	registry.Register("Chebyshev", Chebyshev[colorspace.RGBA8]{})
	registry.Register("EqualRGB", EqualRGB)
	registry.Register("BT709", BT709Weights)
	registry.Register("BT601", BT601Weights)
	registry.Register("Nommyde", Nommyde)
	registry.Register("Redmean", Redmean{})
	registry.Register("CompuPhase", CompuPhase{})
	registry.Register("Pngquant", Projected[colorspace.RGBA8, colorspace.SRGB, srgbProj, Pngquant]{
		To: colorspace.RGBA8.SRGB,
	})
	registry.Register("CIE76", viaLab(CIE76{}))
	registry.Register("CIE94", viaLab(CIE94GraphicArts))
	registry.Register("CIE94-Textiles", viaLab(CIE94Textiles))
	registry.Register("CIEDE2000", viaLab(DE2000))
	registry.Register("CMC", viaLab(CMCAcceptability))
	registry.Register("CMC-Perceptibility", viaLab(CMCPerceptibility))
	registry.Register("DIN99", Projected[colorspace.RGBA8, colorspace.DIN99, din99Proj, DIN99Distance]{
		To: rgbaToDIN99,
	})
	registry.Register("Oklab", Projected[colorspace.RGBA8, colorspace.Oklab, oklabProj, Euclidean[colorspace.Oklab]]{
		To: rgbaToOklab,
	})
}

// ByName returns the named metric over RGBA8. Metrics defined on other
// spaces are wrapped in Projected. Lookup ignores case, spaces, hyphens and
// underscores.
func ByName(name string) (Metric[colorspace.RGBA8], bool) {
	return registry.Lookup(name)
}

// Names lists the metrics ByName accepts.
func Names() []string {
	return registry.Names()
}
