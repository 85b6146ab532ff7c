package colorspace

import "math"

// Oklab is Björn Ottosson's perceptual color space. L is in [0,1], a and b
// stay within about [-0.4,0.4] for sRGB colors.
type Oklab struct {
	L, A, B, Alpha float32
}

// Vector returns (L, a, b, alpha).
func (c Oklab) Vector() Vec { return Vec{c.L, c.A, c.B, c.Alpha} }

// FromVector builds an Oklab from (L, a, b, alpha).
func (Oklab) FromVector(v Vec) Oklab { return Oklab{v[0], v[1], v[2], v[3]} }

// Clamp limits L to [0,1] and a/b to [-0.5,0.5].
func (c Oklab) Clamp() Oklab {
	return Oklab{
		L:     clamp01(c.L),
		A:     clampRange(c.A, -0.5, 0.5),
		B:     clampRange(c.B, -0.5, 0.5),
		Alpha: clamp01(c.Alpha),
	}
}

// Oklab converts linear sRGB to Oklab.
func (c LinearRGB) Oklab() Oklab {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Oklab{
		L:     float32(0.2104542553*l + 0.7936177850*m - 0.0040720468*s),
		A:     float32(1.9779984951*l - 2.4285922050*m + 0.4505937099*s),
		B:     float32(0.0259040371*l + 0.7827717662*m - 0.8086757660*s),
		Alpha: c.A,
	}
}

// Linear converts Oklab to linear sRGB without gamut clamping.
func (c Oklab) Linear() LinearRGB {
	L, a, b := float64(c.L), float64(c.A), float64(c.B)

	l := L + 0.3963377774*a + 0.2158037573*b
	m := L - 0.1055613458*a - 0.0638541728*b
	s := L - 0.0894841775*a - 1.2914855480*b
	l, m, s = l*l*l, m*m*m, s*s*s

	return LinearRGB{
		R: float32(4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G: float32(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B: float32(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
		A: c.Alpha,
	}
}
