package metric

import (
	"math"

	"github.com/gogpu/chroma/colorspace"
)

// Perceptual metrics operate on L*a*b* channels only; alpha is ignored.

// CIE76 is the Euclidean distance in CIE Lab (ΔE*ab).
type CIE76 struct{}

// DistanceSquared returns ΔL² + Δa² + Δb².
func (CIE76) DistanceSquared(a, b colorspace.Lab) float32 {
	dl := float64(a.L) - float64(b.L)
	da := float64(a.A) - float64(b.A)
	db := float64(a.B) - float64(b.B)
	return float32(dl*dl + da*da + db*db)
}

// Distance returns ΔE*ab.
func (c CIE76) Distance(a, b colorspace.Lab) float32 {
	return sqrt32(c.DistanceSquared(a, b))
}

// CIE94 is the CIE 1994 color difference. KC and KH are 1.
//
// The published formula weights chroma and hue by the chroma of a reference
// sample. Neither argument is a reference here, so the geometric mean of both
// chromas is used, as CIE 116-1995 permits; this keeps the metric symmetric.
// Reference gives the reference-sample form.
type CIE94 struct {
	KL, K1, K2 float64
}

// CIE94 parameter presets.
var (
	CIE94GraphicArts = CIE94{KL: 1, K1: 0.045, K2: 0.015}
	CIE94Textiles    = CIE94{KL: 2, K1: 0.048, K2: 0.014}
)

// DistanceSquared returns ΔE*94 squared.
func (m CIE94) DistanceSquared(a, b colorspace.Lab) float32 {
	c1 := math.Hypot(float64(a.A), float64(a.B))
	c2 := math.Hypot(float64(b.A), float64(b.B))
	return float32(m.squared(a, b, math.Sqrt(c1*c2)))
}

// Distance returns ΔE*94.
func (m CIE94) Distance(a, b colorspace.Lab) float32 {
	return sqrt32(m.DistanceSquared(a, b))
}

// Reference returns ΔE*94 in the published form, weighting chroma and hue
// by the chroma of ref. Swapping the arguments changes the result.
func (m CIE94) Reference(ref, sample colorspace.Lab) float32 {
	cref := math.Hypot(float64(ref.A), float64(ref.B))
	return float32(math.Sqrt(m.squared(ref, sample, cref)))
}

func (m CIE94) squared(a, b colorspace.Lab, cref float64) float64 {
	a1, b1 := float64(a.A), float64(a.B)
	a2, b2 := float64(b.A), float64(b.B)
	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)

	dl := float64(a.L) - float64(b.L)
	dc := c1 - c2
	da, db := a1-a2, b1-b2
	dh2 := math.Max(da*da+db*db-dc*dc, 0)

	sc := 1 + m.K1*cref
	sh := 1 + m.K2*cref
	kl := m.KL
	if kl == 0 {
		kl = 1
	}

	tl := dl / kl
	tc := dc / sc
	return tl*tl + tc*tc + dh2/(sh*sh)
}

// CIEDE2000 is the CIE 2000 color difference with parametric weights.
// Zero weights are treated as 1.
type CIEDE2000 struct {
	KL, KC, KH float64
}

// DE2000 is CIEDE2000 with unit parametric weights.
var DE2000 = CIEDE2000{KL: 1, KC: 1, KH: 1}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
	pow25_7 = 6103515625.0 // 25^7
)

func hueDegrees(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * rad2deg
	if h < 0 {
		h += 360
	}
	return h
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// DistanceSquared returns ΔE00 squared, including the RT rotation term.
func (m CIEDE2000) DistanceSquared(x, y colorspace.Lab) float32 {
	l1, a1, b1 := float64(x.L), float64(x.A), float64(x.B)
	l2, a2, b2 := float64(y.L), float64(y.A), float64(y.B)

	cBar := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25_7)))

	a1p := (1 + g) * a1
	a2p := (1 + g) * a2
	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	h1p := hueDegrees(b1, a1p)
	h2p := hueDegrees(b2, a2p)

	dLp := l2 - l1
	dCp := c2p - c1p

	var dhp float64
	cProd := c1p * c2p
	if cProd != 0 {
		dhp = h2p - h1p
		switch {
		case dhp > 180:
			dhp -= 360
		case dhp < -180:
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(cProd) * math.Sin(dhp*deg2rad/2)

	lBarP := (l1 + l2) / 2
	cBarP := (c1p + c2p) / 2

	var hBarP float64
	switch {
	case cProd == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos((hBarP-30)*deg2rad) +
		0.24*math.Cos(2*hBarP*deg2rad) +
		0.32*math.Cos((3*hBarP+6)*deg2rad) -
		0.20*math.Cos((4*hBarP-63)*deg2rad)

	dTheta := 30 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+pow25_7))
	lm50 := (lBarP - 50) * (lBarP - 50)
	sl := 1 + 0.015*lm50/math.Sqrt(20+lm50)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t
	rt := -math.Sin(2*dTheta*deg2rad) * rc

	tl := dLp / (orOne(m.KL) * sl)
	tc := dCp / (orOne(m.KC) * sc)
	th := dHp / (orOne(m.KH) * sh)
	return float32(math.Max(tl*tl+tc*tc+th*th+rt*tc*th, 0))
}

// Distance returns ΔE00.
func (m CIEDE2000) Distance(a, b colorspace.Lab) float32 {
	return sqrt32(m.DistanceSquared(a, b))
}

// CMC is the CMC l:c color difference. The published formula is relative to
// a reference sample; both directions are averaged to keep the metric
// symmetric.
type CMC struct {
	L, C float64
}

// CMC presets.
var (
	CMCAcceptability  = CMC{L: 2, C: 1}
	CMCPerceptibility = CMC{L: 1, C: 1}
)

func (m CMC) directional(ref, sample colorspace.Lab) float64 {
	l1, a1, b1 := float64(ref.L), float64(ref.A), float64(ref.B)
	l2, a2, b2 := float64(sample.L), float64(sample.A), float64(sample.B)

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	dl := l1 - l2
	dc := c1 - c2
	da, db := a1-a2, b1-b2
	dh2 := math.Max(da*da+db*db-dc*dc, 0)

	var sl float64
	if l1 < 16 {
		sl = 0.511
	} else {
		sl = 0.040975 * l1 / (1 + 0.01765*l1)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638

	h1 := hueDegrees(b1, a1)
	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos((h1+168)*deg2rad))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos((h1+35)*deg2rad))
	}
	c14 := c1 * c1 * c1 * c1
	f := math.Sqrt(c14 / (c14 + 1900))
	sh := sc * (f*t + 1 - f)

	tl := dl / (orOne(m.L) * sl)
	tc := dc / (orOne(m.C) * sc)
	return tl*tl + tc*tc + dh2/(sh*sh)
}

// DistanceSquared returns the mean of both directional ΔE(CMC)² values.
func (m CMC) DistanceSquared(a, b colorspace.Lab) float32 {
	return float32((m.directional(a, b) + m.directional(b, a)) / 2)
}

// Distance returns the symmetric ΔE(CMC).
func (m CMC) Distance(a, b colorspace.Lab) float32 {
	return sqrt32(m.DistanceSquared(a, b))
}

// DIN99Distance is the Euclidean distance in DIN99 space (ΔE99).
type DIN99Distance struct{}

// DistanceSquared returns ΔL99² + Δa99² + Δb99².
func (DIN99Distance) DistanceSquared(a, b colorspace.DIN99) float32 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return dl*dl + da*da + db*db
}

// Distance returns ΔE99.
func (d DIN99Distance) Distance(a, b colorspace.DIN99) float32 {
	return sqrt32(d.DistanceSquared(a, b))
}
