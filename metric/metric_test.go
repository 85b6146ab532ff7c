package metric

import (
	"math"
	"testing"

	"github.com/gogpu/chroma/colorspace"
)

func floatNear(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// checkLaws verifies identity, symmetry and the squared relation on every
// pair of samples.
func checkLaws[C any, M Metric[C]](t *testing.T, name string, m M, samples []C) {
	t.Helper()
	for i, a := range samples {
		if d := m.Distance(a, a); d != 0 {
			t.Errorf("%s: Distance(s%d, s%d) = %v, want 0", name, i, i, d)
		}
		for j, b := range samples {
			ab, ba := m.Distance(a, b), m.Distance(b, a)
			if ab < 0 {
				t.Errorf("%s: Distance(s%d, s%d) = %v < 0", name, i, j, ab)
			}
			if !floatNear(float64(ab), float64(ba), 1e-4*math.Max(1, float64(ab))) {
				t.Errorf("%s: asymmetric s%d/s%d: %v vs %v", name, i, j, ab, ba)
			}
			sq := float64(m.DistanceSquared(a, b))
			if !floatNear(sq, float64(ab)*float64(ab), 1e-3*math.Max(1, sq)) {
				t.Errorf("%s: squared s%d/s%d = %v, distance^2 = %v", name, i, j, sq, float64(ab)*float64(ab))
			}
		}
	}
}

func rgbaSamples() []colorspace.RGBA8 {
	return []colorspace.RGBA8{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{255, 0, 0, 255},
		{12, 200, 90, 128},
		{128, 128, 128, 0},
		{250, 5, 130, 255},
	}
}

func labSamples() []colorspace.Lab {
	var out []colorspace.Lab
	for _, c := range rgbaSamples() {
		out = append(out, c.Linear().Lab())
	}
	return append(out,
		colorspace.Lab{L: 50, A: 2.49, B: -0.001, Alpha: 1},
		colorspace.Lab{L: 50, A: -2.49, B: 0.0009, Alpha: 1},
	)
}

func TestMetricLaws(t *testing.T) {
	rgba := rgbaSamples()
	labs := labSamples()
	var lins []colorspace.LinearRGB
	var srgbs []colorspace.SRGB
	var oks []colorspace.Oklab
	var dins []colorspace.DIN99
	for _, c := range rgba {
		lins = append(lins, c.Linear())
		srgbs = append(srgbs, c.SRGB())
		oks = append(oks, c.Linear().Oklab())
	}
	for _, l := range labs {
		dins = append(dins, l.DIN99())
	}

	checkLaws(t, "euclidean", Euclidean[colorspace.LinearRGB]{}, lins)
	checkLaws(t, "manhattan", Manhattan[colorspace.Oklab]{}, oks)
	checkLaws(t, "chebyshev", Chebyshev[colorspace.RGBA8]{}, rgba)
	checkLaws(t, "weighted-euclidean", WeightedEuclidean[colorspace.Oklab]{
		Weights: colorspace.Vec{2, 1, 1, 0.5}, Divisor: 4,
	}, oks)
	checkLaws(t, "equal", EqualRGB, rgba)
	checkLaws(t, "bt709", BT709Weights, rgba)
	checkLaws(t, "bt601", BT601Weights, rgba)
	checkLaws(t, "nommyde", Nommyde, rgba)
	checkLaws(t, "redmean", Redmean{}, rgba)
	checkLaws(t, "compuphase", CompuPhase{}, rgba)
	checkLaws(t, "pngquant", Pngquant{}, srgbs)
	checkLaws(t, "cie76", CIE76{}, labs)
	checkLaws(t, "cie94-graphic", CIE94GraphicArts, labs)
	checkLaws(t, "cie94-textiles", CIE94Textiles, labs)
	checkLaws(t, "de2000", DE2000, labs)
	checkLaws(t, "cmc-2:1", CMCAcceptability, labs)
	checkLaws(t, "cmc-1:1", CMCPerceptibility, labs)
	checkLaws(t, "din99", DIN99Distance{}, dins)
}

// Test data from Sharma, Wu, Dalal: "The CIEDE2000 Color-Difference
// Formula: Implementation Notes, Supplementary Test Data, and Mathematical
// Observations" (2005).
func TestCIEDE2000_SharmaVectors(t *testing.T) {
	tests := []struct {
		l1, a1, b1 float32
		l2, a2, b2 float32
		want       float64
	}{
		{50, 2.6772, -79.7751, 50, 0, -82.7485, 2.0425},
		{50, 3.1571, -77.2803, 50, 0, -82.7485, 2.8615},
		{50, 2.8361, -74.0200, 50, 0, -82.7485, 3.4412},
		{50, 0, 0, 50, -1, 2, 2.3669},
		{50, -1, 2, 50, 0, 0, 2.3669},
		{50, 2.4900, -0.0010, 50, -2.4900, 0.0009, 7.1792},
		{50, 2.5, 0, 73, 25, -18, 27.1492},
		{50, 2.5, 0, 61, -5, 29, 22.8977},
		{50, 2.5, 0, 56, -27, -3, 31.9030},
		{50, 2.5, 0, 58, 24, 15, 19.4535},
		{50, 2.5, 0, 50, 3.1736, 0.5854, 1.0000},
		{60.2574, -34.0099, 36.2677, 60.4626, -34.1751, 39.4387, 1.2644},
		{63.0109, -31.0961, -5.8663, 62.8187, -29.7946, -4.0864, 1.2630},
		{2.0776, 0.0795, -1.1350, 0.9033, -0.0636, -0.5514, 0.9082},
	}
	for i, tt := range tests {
		a := colorspace.Lab{L: tt.l1, A: tt.a1, B: tt.b1, Alpha: 1}
		b := colorspace.Lab{L: tt.l2, A: tt.a2, B: tt.b2, Alpha: 1}
		got := float64(DE2000.Distance(a, b))
		if !floatNear(got, tt.want, 1e-4) {
			t.Errorf("pair %d: ΔE00 = %.6f, want %.4f", i+1, got, tt.want)
		}
	}
}

func TestCIE94_Reference(t *testing.T) {
	// Sharma, Wu and Dalal pair 1; the first sample is the reference.
	ref := colorspace.Lab{L: 50, A: 2.6772, B: -79.7751}
	sample := colorspace.Lab{L: 50, A: 0, B: -82.7485}

	if got := float64(CIE94GraphicArts.Reference(ref, sample)); !floatNear(got, 1.3950, 1e-3) {
		t.Errorf("Reference = %v, want 1.3950", got)
	}
	if got := float64(CIE94GraphicArts.Reference(sample, ref)); !floatNear(got, 1.3654, 1e-3) {
		t.Errorf("Reference swapped = %v, want 1.3654", got)
	}
	if got := float64(CIE94GraphicArts.Distance(ref, sample)); !floatNear(got, 1.3802, 1e-3) {
		t.Errorf("Distance = %v, want 1.3802", got)
	}
	if got := CIE94GraphicArts.Reference(ref, ref); got != 0 {
		t.Errorf("Reference(x, x) = %v, want 0", got)
	}
}

func TestCIE94_GeometricMeanChroma(t *testing.T) {
	tests := []struct {
		name string
		a, b colorspace.Lab
		want float64
	}{
		{"achromatic reference", colorspace.Lab{L: 50}, colorspace.Lab{L: 50, A: 3, B: 4}, 5},
		{"pure chroma step", colorspace.Lab{L: 50, A: 3, B: 4}, colorspace.Lab{L: 50, A: 6, B: 8}, 5 / (1 + 0.045*math.Sqrt(50))},
		{"lightness only", colorspace.Lab{L: 40}, colorspace.Lab{L: 50}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := float64(CIE94GraphicArts.Distance(tt.a, tt.b)); !floatNear(got, tt.want, 1e-4) {
				t.Errorf("ΔE94 = %v, want %v", got, tt.want)
			}
		})
	}
	if got := float64(CIE94Textiles.Distance(colorspace.Lab{L: 40}, colorspace.Lab{L: 50})); !floatNear(got, 5, 1e-4) {
		t.Errorf("textiles kL=2 lightness: ΔE94 = %v, want 5", got)
	}
}

func TestCIE76_MatchesEuclideanOnLab(t *testing.T) {
	a := colorspace.Lab{L: 10, A: 20, B: 30, Alpha: 1}
	b := colorspace.Lab{L: 13, A: 24, B: 30, Alpha: 1}
	if got := (CIE76{}).Distance(a, b); got != 5 {
		t.Errorf("CIE76 = %v, want 5", got)
	}
}

func TestCompuPhase_KnownValue(t *testing.T) {
	a := colorspace.RGBA8{R: 0, G: 0, B: 0, A: 255}
	b := colorspace.RGBA8{R: 16, G: 0, B: 0, A: 255}
	// rmean = 8: ((512+8)*256)>>8 = 520
	if got := (CompuPhase{}).DistanceSquared(a, b); got != 520 {
		t.Errorf("CompuPhase squared = %v, want 520", got)
	}
}

func TestPngquant_AlphaAware(t *testing.T) {
	opaqueBlack := colorspace.SRGB{A: 1}
	transparent := colorspace.SRGB{}
	// Premultiplied both are black, but the alpha change is visible over white.
	if got := (Pngquant{}).DistanceSquared(opaqueBlack, transparent); got != 3 {
		t.Errorf("pngquant(opaque black, transparent) = %v, want 3", got)
	}
}

func TestNearest(t *testing.T) {
	pal := []colorspace.RGBA8{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{255, 0, 0, 255},
		{255, 0, 0, 255},
	}
	tests := []struct {
		in   colorspace.RGBA8
		want int
	}{
		{colorspace.RGBA8{10, 10, 10, 255}, 0},
		{colorspace.RGBA8{240, 250, 230, 255}, 1},
		{colorspace.RGBA8{200, 30, 20, 255}, 2},
		{colorspace.RGBA8{255, 0, 0, 255}, 2},
	}
	for _, tt := range tests {
		if got := Nearest(EqualRGB, tt.in, pal); got != tt.want {
			t.Errorf("Nearest(%+v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := Nearest(EqualRGB, colorspace.RGBA8{}, nil); got != -1 {
		t.Errorf("Nearest on empty palette = %d, want -1", got)
	}
}

func BenchmarkNearest256(b *testing.B) {
	pal := make([]colorspace.Oklab, 256)
	for i := range pal {
		pal[i] = colorspace.RGBA8{R: uint8(i), G: uint8(i * 7), B: uint8(i * 13), A: 255}.Linear().Oklab()
	}
	c := colorspace.RGBA8{R: 99, G: 42, B: 200, A: 255}.Linear().Oklab()
	m := Euclidean[colorspace.Oklab]{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Nearest(m, c, pal)
	}
}
