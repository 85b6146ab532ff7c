package colorspace

import "math"

// sRGBToLinearLUT provides O(1) sRGB byte to linear conversion.
// Pre-computed 256 entries, 1KB memory cost.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT provides O(1) linear to sRGB byte conversion.
// 4096 entries give 12-bit precision, enough for exact 8-bit round trips.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = float32(srgbToLinear64(float64(i) / 255.0))
	}
	for i := 0; i < 4096; i++ {
		s := linearToSRGB64(float64(i) / 4095.0)
		v := int(s*255.0 + 0.5)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		//nolint:gosec // G115: v is clamped to [0,255] range
		linearToSRGBLUT[i] = uint8(v)
	}
}

func srgbToLinear64(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

func linearToSRGB64(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input is clamped to [0,1].
func SRGBToLinear(s float32) float32 {
	return float32(srgbToLinear64(float64(clamp01(s))))
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input is clamped to [0,1].
func LinearToSRGB(l float32) float32 {
	return float32(linearToSRGB64(float64(clamp01(l))))
}

// SRGBToLinearFast converts an sRGB byte to linear float32 using the lookup
// table.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear float32 to an sRGB byte using the lookup
// table. Input is clamped to [0.0, 1.0].
//
// Example:
//
//	s := LinearToSRGBFast(0.5) // 188 (not 128!)
func LinearToSRGBFast(l float32) uint8 {
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(l*4095.0+0.5)]
}
