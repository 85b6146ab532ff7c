package colorspace

// HSV is hue/saturation/value over gamma-encoded sRGB. H is in degrees
// [0,360), S and V in [0,1].
type HSV struct {
	H, S, V, A float32
}

// Vector returns (H, S, V, A).
func (c HSV) Vector() Vec { return Vec{c.H, c.S, c.V, c.A} }

// FromVector builds an HSV from (H, S, V, A).
func (HSV) FromVector(v Vec) HSV { return HSV{v[0], v[1], v[2], v[3]} }

// Clamp wraps H and limits S, V and A to [0,1].
func (c HSV) Clamp() HSV {
	return HSV{wrapHue(c.H), clamp01(c.S), clamp01(c.V), clamp01(c.A)}
}

// HSL is hue/saturation/lightness over gamma-encoded sRGB.
type HSL struct {
	H, S, L, A float32
}

// Vector returns (H, S, L, A).
func (c HSL) Vector() Vec { return Vec{c.H, c.S, c.L, c.A} }

// FromVector builds an HSL from (H, S, L, A).
func (HSL) FromVector(v Vec) HSL { return HSL{v[0], v[1], v[2], v[3]} }

// Clamp wraps H and limits S, L and A to [0,1].
func (c HSL) Clamp() HSL {
	return HSL{wrapHue(c.H), clamp01(c.S), clamp01(c.L), clamp01(c.A)}
}

func max3(a, b, c float32) float32 {
	return max(a, max(b, c))
}

func min3(a, b, c float32) float32 {
	return min(a, min(b, c))
}

// hue computes the hexcone hue in degrees for a given max and chroma.
func hue(r, g, b, mx, chroma float32) float32 {
	if chroma == 0 {
		return 0
	}
	var h float32
	switch mx {
	case r:
		h = (g - b) / chroma
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	return h * 60
}

// HSV converts sRGB to HSV.
func (c SRGB) HSV() HSV {
	mx := max3(c.R, c.G, c.B)
	chroma := mx - min3(c.R, c.G, c.B)
	var s float32
	if mx > 0 {
		s = chroma / mx
	}
	return HSV{H: hue(c.R, c.G, c.B, mx, chroma), S: s, V: mx, A: c.A}
}

// hexcone maps hue and chroma back to RGB with the given offset m.
func hexcone(h, chroma, m float32) (r, g, b float32) {
	h = wrapHue(h) / 60
	x := chroma * (1 - abs32(mod2(h)-1))
	switch int(h) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return r + m, g + m, b + m
}

// SRGB converts HSV back to sRGB.
func (c HSV) SRGB() SRGB {
	chroma := c.V * c.S
	r, g, b := hexcone(c.H, chroma, c.V-chroma)
	return SRGB{r, g, b, c.A}
}

// HSL converts sRGB to HSL.
func (c SRGB) HSL() HSL {
	mx := max3(c.R, c.G, c.B)
	mn := min3(c.R, c.G, c.B)
	chroma := mx - mn
	l := (mx + mn) / 2
	var s float32
	if chroma > 0 {
		s = chroma / (1 - abs32(2*l-1))
	}
	return HSL{H: hue(c.R, c.G, c.B, mx, chroma), S: clamp01(s), L: l, A: c.A}
}

// SRGB converts HSL back to sRGB.
func (c HSL) SRGB() SRGB {
	chroma := (1 - abs32(2*c.L-1)) * c.S
	r, g, b := hexcone(c.H, chroma, c.L-chroma/2)
	return SRGB{r, g, b, c.A}
}

// YUV is a luma/chroma color over gamma-encoded sRGB, full range:
// Y in [0,1], U and V in [-0.5,0.5].
type YUV struct {
	Y, U, V, A float32
}

// Vector returns (Y, U, V, A).
func (c YUV) Vector() Vec { return Vec{c.Y, c.U, c.V, c.A} }

// FromVector builds a YUV from (Y, U, V, A).
func (YUV) FromVector(v Vec) YUV { return YUV{v[0], v[1], v[2], v[3]} }

// Clamp limits Y and A to [0,1] and U/V to [-0.5,0.5].
func (c YUV) Clamp() YUV {
	return YUV{clamp01(c.Y), clampRange(c.U, -0.5, 0.5), clampRange(c.V, -0.5, 0.5), clamp01(c.A)}
}

// YUVMatrix holds the luma coefficients of a YCbCr family.
type YUVMatrix struct {
	Kr, Kb float32
}

// Predefined luma coefficient sets.
var (
	BT601 = YUVMatrix{Kr: 0.299, Kb: 0.114}
	BT709 = YUVMatrix{Kr: 0.2126, Kb: 0.0722}
)

// YUV converts sRGB to full-range YUV.
func (m YUVMatrix) YUV(c SRGB) YUV {
	kg := 1 - m.Kr - m.Kb
	y := m.Kr*c.R + kg*c.G + m.Kb*c.B
	return YUV{
		Y: y,
		U: (c.B - y) / (2 * (1 - m.Kb)),
		V: (c.R - y) / (2 * (1 - m.Kr)),
		A: c.A,
	}
}

// SRGB converts full-range YUV back to sRGB without clamping.
func (m YUVMatrix) SRGB(c YUV) SRGB {
	kg := 1 - m.Kr - m.Kb
	r := c.Y + 2*(1-m.Kr)*c.V
	b := c.Y + 2*(1-m.Kb)*c.U
	g := (c.Y - m.Kr*r - m.Kb*b) / kg
	return SRGB{r, g, b, c.A}
}

// CMYK is naive device CMYK derived from sRGB, plus alpha as a fifth
// channel. All components are in [0,1].
type CMYK struct {
	C, M, Y, K, A float32
}

// Vector returns (C, M, Y, K, A).
func (c CMYK) Vector() Vec { return Vec{c.C, c.M, c.Y, c.K, c.A} }

// FromVector builds a CMYK from (C, M, Y, K, A).
func (CMYK) FromVector(v Vec) CMYK { return CMYK{v[0], v[1], v[2], v[3], v[4]} }

// Clamp limits all components to [0,1].
func (c CMYK) Clamp() CMYK {
	return CMYK{clamp01(c.C), clamp01(c.M), clamp01(c.Y), clamp01(c.K), clamp01(c.A)}
}

// CMYK converts sRGB to CMYK with full black generation.
func (c SRGB) CMYK() CMYK {
	k := 1 - max3(c.R, c.G, c.B)
	if k >= 1 {
		return CMYK{K: 1, A: c.A}
	}
	inv := 1 / (1 - k)
	return CMYK{
		C: (1 - c.R - k) * inv,
		M: (1 - c.G - k) * inv,
		Y: (1 - c.B - k) * inv,
		K: k,
		A: c.A,
	}
}

// SRGB converts CMYK back to sRGB.
func (c CMYK) SRGB() SRGB {
	return SRGB{
		R: (1 - c.C) * (1 - c.K),
		G: (1 - c.M) * (1 - c.K),
		B: (1 - c.Y) * (1 - c.K),
		A: c.A,
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// mod2 returns h mod 2 for non-negative h.
func mod2(h float32) float32 {
	return h - 2*float32(int(h/2))
}
