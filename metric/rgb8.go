package metric

import "github.com/gogpu/chroma/colorspace"

// WeightedRGB is an integer weighted Euclidean metric over RGBA8.
// Squared channel differences are multiplied by Weights (R, G, B, A),
// summed in 64-bit, then divided by Divisor. A zero Divisor is treated as 1.
type WeightedRGB struct {
	Weights [4]int32
	Divisor int32
}

// Named weight presets. Alpha carries the full weight of the divisor so
// that opacity differences count like a whole channel.
var (
	// EqualRGB weights every channel the same.
	EqualRGB = WeightedRGB{Weights: [4]int32{1, 1, 1, 1}, Divisor: 1}

	// BT709Weights uses the BT.709 luma coefficients.
	BT709Weights = WeightedRGB{Weights: [4]int32{2126, 7152, 722, 10000}, Divisor: 10000}

	// BT601Weights uses the BT.601 luma coefficients.
	BT601Weights = WeightedRGB{Weights: [4]int32{299, 587, 114, 1000}, Divisor: 1000}

	// Nommyde uses perceptually tuned small integer weights.
	Nommyde = WeightedRGB{Weights: [4]int32{4, 7, 2, 13}, Divisor: 13}
)

// DistanceSquared returns the weighted sum of squared differences.
func (w WeightedRGB) DistanceSquared(a, b colorspace.RGBA8) float32 {
	dr := int64(a.R) - int64(b.R)
	dg := int64(a.G) - int64(b.G)
	db := int64(a.B) - int64(b.B)
	da := int64(a.A) - int64(b.A)
	sum := int64(w.Weights[0])*dr*dr +
		int64(w.Weights[1])*dg*dg +
		int64(w.Weights[2])*db*db +
		int64(w.Weights[3])*da*da
	if w.Divisor > 1 {
		return float32(sum) / float32(w.Divisor)
	}
	return float32(sum)
}

// Distance returns the square root of DistanceSquared.
func (w WeightedRGB) Distance(a, b colorspace.RGBA8) float32 {
	return sqrt32(w.DistanceSquared(a, b))
}

// Redmean is the "redmean" weighted RGB distance, which adjusts the red and
// blue weights by the mean red level. Alpha is ignored.
type Redmean struct{}

// DistanceSquared returns (2+r/256)dR^2 + 4dG^2 + (2+(255-r)/256)dB^2
// where r is the mean red.
func (Redmean) DistanceSquared(a, b colorspace.RGBA8) float32 {
	rmean := (float32(a.R) + float32(b.R)) / 2
	dr := float32(a.R) - float32(b.R)
	dg := float32(a.G) - float32(b.G)
	db := float32(a.B) - float32(b.B)
	return (2+rmean/256)*dr*dr + 4*dg*dg + (2+(255-rmean)/256)*db*db
}

// Distance returns the square root of DistanceSquared.
func (r Redmean) Distance(a, b colorspace.RGBA8) float32 {
	return sqrt32(r.DistanceSquared(a, b))
}

// CompuPhase is the integer low-cost approximation of redmean published by
// CompuPhase. Alpha is ignored.
type CompuPhase struct{}

// DistanceSquared returns ((512+r)dR^2 >> 8) + 4dG^2 + ((767-r)dB^2 >> 8).
func (CompuPhase) DistanceSquared(a, b colorspace.RGBA8) float32 {
	rmean := (int32(a.R) + int32(b.R)) / 2
	dr := int32(a.R) - int32(b.R)
	dg := int32(a.G) - int32(b.G)
	db := int32(a.B) - int32(b.B)
	return float32((((512 + rmean) * dr * dr) >> 8) + 4*dg*dg + (((767 - rmean) * db * db) >> 8))
}

// Distance returns the square root of DistanceSquared.
func (c CompuPhase) Distance(a, b colorspace.RGBA8) float32 {
	return sqrt32(c.DistanceSquared(a, b))
}

// Pngquant is the alpha-aware distance used by pngquant. Colors are
// premultiplied and each channel contributes the larger of its difference
// composited over black and over white.
type Pngquant struct{}

func pngquantChannel(x, y, alphas float32) float32 {
	black := x - y
	white := black + alphas
	return max(black*black, white*white)
}

// DistanceSquared returns the pngquant difference.
func (Pngquant) DistanceSquared(a, b colorspace.SRGB) float32 {
	alphas := b.A - a.A
	return pngquantChannel(a.R*a.A, b.R*b.A, alphas) +
		pngquantChannel(a.G*a.A, b.G*b.A, alphas) +
		pngquantChannel(a.B*a.A, b.B*b.A, alphas)
}

// Distance returns the square root of DistanceSquared.
func (p Pngquant) Distance(a, b colorspace.SRGB) float32 {
	return sqrt32(p.DistanceSquared(a, b))
}
