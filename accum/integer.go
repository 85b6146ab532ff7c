package accum

import "github.com/gogpu/chroma/colorspace"

// FixedOne is the fixed-point scale used when float weights cross into
// integer arithmetic.
const FixedOne = 256

// FixedWeight converts a float weight to 8-bit fixed point with rounding.
func FixedWeight(w float32) int32 {
	if w < 0 {
		return -int32(-w*FixedOne + 0.5)
	}
	return int32(w*FixedOne + 0.5)
}

// Int8 is the integer accumulator for RGBA8. Channel products are summed in
// 64-bit so that millions of full-range samples cannot overflow.
type Int8 struct {
	sum   [4]int64
	total int64
}

// Reset discards all samples.
func (a *Int8) Reset() {
	*a = Int8{}
}

// AddWeightedInt adds c with an integer weight.
func (a *Int8) AddWeightedInt(c colorspace.RGBA8, w int32) {
	wi := int64(w)
	a.sum[0] += int64(c.R) * wi
	a.sum[1] += int64(c.G) * wi
	a.sum[2] += int64(c.B) * wi
	a.sum[3] += int64(c.A) * wi
	a.total += wi
}

// AddWeighted converts w to fixed point and adds c.
func (a *Int8) AddWeighted(c colorspace.RGBA8, w float32) {
	a.AddWeightedInt(c, FixedWeight(w))
}

// Result returns (sum + total/2) / total per channel, clamped to 0..255.
func (a *Int8) Result() colorspace.RGBA8 {
	if a.total <= 0 {
		return colorspace.RGBA8{}
	}
	return colorspace.RGBA8{
		R: divRound(a.sum[0], a.total),
		G: divRound(a.sum[1], a.total),
		B: divRound(a.sum[2], a.total),
		A: divRound(a.sum[3], a.total),
	}
}

// divRound divides with round-half-up and clamps to a byte. total > 0.
func divRound(sum, total int64) uint8 {
	if sum <= 0 {
		return 0
	}
	q := (sum + total/2) / total
	if q > 255 {
		return 255
	}
	return uint8(q)
}
