package colorspace

import "math"

// D65 reference white in XYZ (Y normalized to 1).
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// CIE constants for the Lab companding function.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// XYZ is a CIE 1931 XYZ color relative to D65, Y in [0,1].
type XYZ struct {
	X, Y, Z, A float32
}

// Vector returns (X, Y, Z, A).
func (c XYZ) Vector() Vec { return Vec{c.X, c.Y, c.Z, c.A} }

// FromVector builds an XYZ from (X, Y, Z, A).
func (XYZ) FromVector(v Vec) XYZ { return XYZ{v[0], v[1], v[2], v[3]} }

// Clamp limits the tristimulus values to the sRGB-reachable box.
func (c XYZ) Clamp() XYZ {
	return XYZ{
		X: clampRange(c.X, 0, whiteX),
		Y: clampRange(c.Y, 0, whiteY),
		Z: clampRange(c.Z, 0, whiteZ),
		A: clamp01(c.A),
	}
}

// XYZ converts linear sRGB to CIE XYZ (D65).
func (c LinearRGB) XYZ() XYZ {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return XYZ{
		X: float32(0.4124564*r + 0.3575761*g + 0.1804375*b),
		Y: float32(0.2126729*r + 0.7151522*g + 0.0721750*b),
		Z: float32(0.0193339*r + 0.1191920*g + 0.9503041*b),
		A: c.A,
	}
}

// Linear converts XYZ (D65) to linear sRGB without gamut clamping.
func (c XYZ) Linear() LinearRGB {
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)
	return LinearRGB{
		R: float32(3.2404542*x - 1.5371385*y - 0.4985314*z),
		G: float32(-0.9692660*x + 1.8760108*y + 0.0415560*z),
		B: float32(0.0556434*x - 0.2040259*y + 1.0572252*z),
		A: c.A,
	}
}

// Lab is a CIE 1976 L*a*b* color relative to D65. L is in [0,100];
// a and b are unbounded in theory and clamped to [-128,128].
type Lab struct {
	L, A, B, Alpha float32
}

// Vector returns (L, a, b, alpha).
func (c Lab) Vector() Vec { return Vec{c.L, c.A, c.B, c.Alpha} }

// FromVector builds a Lab from (L, a, b, alpha).
func (Lab) FromVector(v Vec) Lab { return Lab{v[0], v[1], v[2], v[3]} }

// Clamp limits L to [0,100], a and b to [-128,128], alpha to [0,1].
func (c Lab) Clamp() Lab {
	return Lab{
		L:     clampRange(c.L, 0, 100),
		A:     clampRange(c.A, -128, 128),
		B:     clampRange(c.B, -128, 128),
		Alpha: clamp01(c.Alpha),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// Lab converts XYZ to CIE Lab.
func (c XYZ) Lab() Lab {
	fx := labF(float64(c.X) / whiteX)
	fy := labF(float64(c.Y) / whiteY)
	fz := labF(float64(c.Z) / whiteZ)
	return Lab{
		L:     float32(116*fy - 16),
		A:     float32(500 * (fx - fy)),
		B:     float32(200 * (fy - fz)),
		Alpha: c.A,
	}
}

// XYZ converts CIE Lab back to XYZ.
func (c Lab) XYZ() XYZ {
	l := float64(c.L)
	fy := (l + 16) / 116
	fx := fy + float64(c.A)/500
	fz := fy - float64(c.B)/200

	xr := fx * fx * fx
	if xr <= labEpsilon {
		xr = (116*fx - 16) / labKappa
	}
	var yr float64
	if l > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l / labKappa
	}
	zr := fz * fz * fz
	if zr <= labEpsilon {
		zr = (116*fz - 16) / labKappa
	}
	return XYZ{
		X: float32(xr * whiteX),
		Y: float32(yr * whiteY),
		Z: float32(zr * whiteZ),
		A: c.Alpha,
	}
}

// Lab converts linear sRGB to CIE Lab.
func (c LinearRGB) Lab() Lab { return c.XYZ().Lab() }

// Linear converts CIE Lab to linear sRGB without gamut clamping.
func (c Lab) Linear() LinearRGB { return c.XYZ().Linear() }

// LCh is the cylindrical form of Lab. H is in degrees [0,360).
type LCh struct {
	L, C, H, Alpha float32
}

// Vector returns (L, C, H, alpha).
func (c LCh) Vector() Vec { return Vec{c.L, c.C, c.H, c.Alpha} }

// FromVector builds an LCh from (L, C, H, alpha).
func (LCh) FromVector(v Vec) LCh { return LCh{v[0], v[1], v[2], v[3]} }

// Clamp limits L to [0,100], C to [0,182], wraps H into [0,360).
func (c LCh) Clamp() LCh {
	return LCh{
		L:     clampRange(c.L, 0, 100),
		C:     clampRange(c.C, 0, 182),
		H:     wrapHue(c.H),
		Alpha: clamp01(c.Alpha),
	}
}

// LCh converts Lab to polar form.
func (c Lab) LCh() LCh {
	a, b := float64(c.A), float64(c.B)
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCh{L: c.L, C: float32(math.Hypot(a, b)), H: float32(h), Alpha: c.Alpha}
}

// Lab converts LCh back to rectangular form.
func (c LCh) Lab() Lab {
	h := float64(c.H) * math.Pi / 180
	return Lab{
		L:     c.L,
		A:     float32(float64(c.C) * math.Cos(h)),
		B:     float32(float64(c.C) * math.Sin(h)),
		Alpha: c.Alpha,
	}
}

// DIN99 is the DIN 6176 transform of Lab, designed so that Euclidean
// distance approximates perceived difference.
type DIN99 struct {
	L, A, B, Alpha float32
}

// Vector returns (L99, a99, b99, alpha).
func (c DIN99) Vector() Vec { return Vec{c.L, c.A, c.B, c.Alpha} }

// FromVector builds a DIN99 from (L99, a99, b99, alpha).
func (DIN99) FromVector(v Vec) DIN99 { return DIN99{v[0], v[1], v[2], v[3]} }

// Clamp limits L99 to [0,100] and a99/b99 to [-64,64].
func (c DIN99) Clamp() DIN99 {
	return DIN99{
		L:     clampRange(c.L, 0, 100),
		A:     clampRange(c.A, -64, 64),
		B:     clampRange(c.B, -64, 64),
		Alpha: clamp01(c.Alpha),
	}
}

var (
	din99Cos16 = math.Cos(16 * math.Pi / 180)
	din99Sin16 = math.Sin(16 * math.Pi / 180)
)

// DIN99 converts Lab to DIN99 (kE = kCH = 1).
func (c Lab) DIN99() DIN99 {
	l, a, b := float64(c.L), float64(c.A), float64(c.B)
	e := a*din99Cos16 + b*din99Sin16
	f := 0.7 * (-a*din99Sin16 + b*din99Cos16)
	g := math.Hypot(e, f)
	c99 := math.Log(1+0.045*g) / 0.045
	h := math.Atan2(f, e)
	return DIN99{
		L:     float32(105.51 * math.Log(1+0.0158*l)),
		A:     float32(c99 * math.Cos(h)),
		B:     float32(c99 * math.Sin(h)),
		Alpha: c.Alpha,
	}
}

// Lab inverts the DIN99 transform.
func (c DIN99) Lab() Lab {
	a99, b99 := float64(c.A), float64(c.B)
	g := (math.Exp(0.045*math.Hypot(a99, b99)) - 1) / 0.045
	h := math.Atan2(b99, a99)
	e := g * math.Cos(h)
	f := g * math.Sin(h) / 0.7
	return Lab{
		L:     float32((math.Exp(float64(c.L)/105.51) - 1) / 0.0158),
		A:     float32(e*din99Cos16 - f*din99Sin16),
		B:     float32(e*din99Sin16 + f*din99Cos16),
		Alpha: c.Alpha,
	}
}

func wrapHue(h float32) float32 {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	return h
}
