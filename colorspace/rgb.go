package colorspace

// RGBA8 is a byte sRGB color with straight alpha. It is the working space
// of the integer fast paths.
type RGBA8 struct {
	R, G, B, A uint8
}

// Vector returns the channels on the 0..255 scale.
func (c RGBA8) Vector() Vec {
	return Vec{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// FromVector rounds a 0..255 vector to bytes. Bytes cannot hold
// out-of-range values, so this also clamps.
func (RGBA8) FromVector(v Vec) RGBA8 {
	return RGBA8{roundByte(v[0]), roundByte(v[1]), roundByte(v[2]), roundByte(v[3])}
}

// Clamp returns c.
func (c RGBA8) Clamp() RGBA8 { return c }

// SRGB converts to the float sRGB space.
func (c RGBA8) SRGB() SRGB {
	return SRGB{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// Linear converts to linear RGB through the decode table.
func (c RGBA8) Linear() LinearRGB {
	return LinearRGB{
		R: sRGBToLinearLUT[c.R],
		G: sRGBToLinearLUT[c.G],
		B: sRGBToLinearLUT[c.B],
		A: float32(c.A) / 255,
	}
}

// SRGB is a float sRGB (gamma encoded) color with components in [0,1].
// Alpha is always linear.
type SRGB struct {
	R, G, B, A float32
}

// Vector returns (R, G, B, A).
func (c SRGB) Vector() Vec { return Vec{c.R, c.G, c.B, c.A} }

// FromVector builds an SRGB from (R, G, B, A).
func (SRGB) FromVector(v Vec) SRGB { return SRGB{v[0], v[1], v[2], v[3]} }

// Clamp limits all components to [0,1].
func (c SRGB) Clamp() SRGB {
	return SRGB{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// RGBA8 converts to bytes with rounding.
func (c SRGB) RGBA8() RGBA8 {
	return RGBA8{toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)}
}

// Linear applies the sRGB EOTF to RGB. Alpha is unchanged.
func (c SRGB) Linear() LinearRGB {
	return LinearRGB{SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B), c.A}
}

// LinearRGB is a linear-light RGB color with sRGB primaries, components in
// [0,1]. Alpha is straight.
type LinearRGB struct {
	R, G, B, A float32
}

// Vector returns (R, G, B, A).
func (c LinearRGB) Vector() Vec { return Vec{c.R, c.G, c.B, c.A} }

// FromVector builds a LinearRGB from (R, G, B, A).
func (LinearRGB) FromVector(v Vec) LinearRGB { return LinearRGB{v[0], v[1], v[2], v[3]} }

// Clamp limits all components to [0,1].
func (c LinearRGB) Clamp() LinearRGB {
	return LinearRGB{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// SRGB applies the sRGB OETF to RGB. Alpha is unchanged.
func (c LinearRGB) SRGB() SRGB {
	return SRGB{LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B), c.A}
}

// RGBA8 encodes through the 12-bit lookup table.
func (c LinearRGB) RGBA8() RGBA8 {
	return RGBA8{
		R: LinearToSRGBFast(c.R),
		G: LinearToSRGBFast(c.G),
		B: LinearToSRGBFast(c.B),
		A: toByte(c.A),
	}
}

// Luminance returns the relative luminance (BT.709 / sRGB primaries).
func (c LinearRGB) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
