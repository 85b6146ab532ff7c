package accum

import "github.com/gogpu/chroma/colorspace"

// Lerper interpolates between two colors.
type Lerper[C any] interface {
	// Lerp returns a + (b-a)*t for t in [0,1].
	Lerp(a, b C, t float32) C
	// Mix returns (a*w1 + b*w2) / (w1+w2). A zero total returns a.
	Mix(a, b C, w1, w2 uint32) C
	// Half returns the 50/50 blend.
	Half(a, b C) C
}

// FloatLerp interpolates channel vectors in float32 and clamps the result.
type FloatLerp[C colorspace.Space[C]] struct{}

// Lerp interpolates at t, clamping t to [0,1].
func (FloatLerp[C]) Lerp(a, b C, t float32) C {
	t = min(max(t, 0), 1)
	va, vb := a.Vector(), b.Vector()
	var v colorspace.Vec
	for i := range v {
		v[i] = va[i] + (vb[i]-va[i])*t
	}
	return a.FromVector(v).Clamp()
}

// Mix blends with integer weights.
func (l FloatLerp[C]) Mix(a, b C, w1, w2 uint32) C {
	if w1+w2 == 0 {
		return a
	}
	return l.Lerp(a, b, float32(w2)/float32(w1+w2))
}

// Half returns the channel mean.
func (FloatLerp[C]) Half(a, b C) C {
	va, vb := a.Vector(), b.Vector()
	var v colorspace.Vec
	for i := range v {
		v[i] = (va[i] + vb[i]) * 0.5
	}
	return a.FromVector(v).Clamp()
}

// IntLerp interpolates RGBA8 in pure integer arithmetic. Float t is
// converted to 8-bit fixed point on entry.
type IntLerp struct{}

// Lerp interpolates at t, clamping t to [0,1].
func (IntLerp) Lerp(a, b colorspace.RGBA8, t float32) colorspace.RGBA8 {
	tw := uint32(FixedWeight(min(max(t, 0), 1)))
	return mix8(a, b, FixedOne-tw, tw)
}

// Mix blends with integer weights.
func (IntLerp) Mix(a, b colorspace.RGBA8, w1, w2 uint32) colorspace.RGBA8 {
	if w1+w2 == 0 {
		return a
	}
	return mix8(a, b, w1, w2)
}

// Half is the shift-based 50/50 path, rounding half up.
func (IntLerp) Half(a, b colorspace.RGBA8) colorspace.RGBA8 {
	return colorspace.RGBA8{
		R: uint8((uint16(a.R) + uint16(b.R) + 1) >> 1),
		G: uint8((uint16(a.G) + uint16(b.G) + 1) >> 1),
		B: uint8((uint16(a.B) + uint16(b.B) + 1) >> 1),
		A: uint8((uint16(a.A) + uint16(b.A) + 1) >> 1),
	}
}

func mix8(a, b colorspace.RGBA8, w1, w2 uint32) colorspace.RGBA8 {
	total := uint64(w1) + uint64(w2)
	half := total / 2
	ch := func(x, y uint8) uint8 {
		return uint8((uint64(x)*uint64(w1) + uint64(y)*uint64(w2) + half) / total)
	}
	return colorspace.RGBA8{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// NoLerp is the no-op interpolator: every blend returns the first color.
// Pattern-matching scalers use it to copy neighbors verbatim.
type NoLerp[C any] struct{}

// Lerp returns a.
func (NoLerp[C]) Lerp(a, _ C, _ float32) C { return a }

// Mix returns a.
func (NoLerp[C]) Mix(a, _ C, _, _ uint32) C { return a }

// Half returns a.
func (NoLerp[C]) Half(a, _ C) C { return a }
