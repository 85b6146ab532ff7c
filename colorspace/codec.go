package colorspace

// ByteCodec converts ARGB32 storage to and from RGBA8. It is lossless.
type ByteCodec struct{}

// Decode unpacks p.
func (ByteCodec) Decode(p ARGB32) RGBA8 {
	a, r, g, b := p.Split()
	return RGBA8{r, g, b, a}
}

// Encode packs c.
func (ByteCodec) Encode(c RGBA8) ARGB32 {
	return PackARGB32(c.A, c.R, c.G, c.B)
}

// SRGBCodec converts ARGB32 storage to and from float sRGB.
type SRGBCodec struct{}

// Decode maps each byte to [0,1].
func (SRGBCodec) Decode(p ARGB32) SRGB {
	return ByteCodec{}.Decode(p).SRGB()
}

// Encode rounds each component to a byte, clamping out-of-range values.
func (SRGBCodec) Encode(c SRGB) ARGB32 {
	return ByteCodec{}.Encode(c.RGBA8())
}

// LinearCodec converts ARGB32 storage to and from linear RGB using the
// sRGB lookup tables.
type LinearCodec struct{}

// Decode linearizes RGB. Alpha is mapped to [0,1].
func (LinearCodec) Decode(p ARGB32) LinearRGB {
	return ByteCodec{}.Decode(p).Linear()
}

// Encode applies the sRGB transfer function and clamps to bytes.
func (LinearCodec) Encode(c LinearRGB) ARGB32 {
	return ByteCodec{}.Encode(c.RGBA8())
}

// OklabCodec converts ARGB32 storage to and from Oklab.
type OklabCodec struct{}

// Decode converts p to Oklab through linear RGB.
func (OklabCodec) Decode(p ARGB32) Oklab {
	return LinearCodec{}.Decode(p).Oklab()
}

// Encode converts c back to storage, clamping out-of-gamut values.
func (OklabCodec) Encode(c Oklab) ARGB32 {
	return LinearCodec{}.Encode(c.Linear())
}

// LabCodec converts ARGB32 storage to and from CIE Lab.
type LabCodec struct{}

// Decode converts p to Lab through linear RGB and XYZ.
func (LabCodec) Decode(p ARGB32) Lab {
	return LinearCodec{}.Decode(p).Lab()
}

// Encode converts c back to storage, clamping out-of-gamut values.
func (LabCodec) Encode(c Lab) ARGB32 {
	return LinearCodec{}.Encode(c.Linear())
}

// RGB24Codec converts 24-bit storage to and from RGBA8. Decoded colors are
// opaque; alpha is dropped on encode.
type RGB24Codec struct{}

// Decode expands p with alpha 255.
func (RGB24Codec) Decode(p RGB24) RGBA8 {
	return RGBA8{p.R, p.G, p.B, 255}
}

// Encode drops alpha.
func (RGB24Codec) Encode(c RGBA8) RGB24 {
	return RGB24{c.R, c.G, c.B}
}

// RGB565Codec converts 16-bit storage to and from RGBA8. Decoding
// replicates high bits into the low bits so that 0x1F maps to 255.
type RGB565Codec struct{}

// Decode expands p.
func (RGB565Codec) Decode(p RGB565) RGBA8 {
	r := uint8(p>>11) & 0x1F
	g := uint8(p>>5) & 0x3F
	b := uint8(p) & 0x1F
	return RGBA8{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 255,
	}
}

// Encode rounds each channel to the nearest 5/6-bit level.
func (RGB565Codec) Encode(c RGBA8) RGB565 {
	r := (uint32(c.R)*31 + 127) / 255
	g := (uint32(c.G)*63 + 127) / 255
	b := (uint32(c.B)*31 + 127) / 255
	return PackRGB565(uint8(r), uint8(g), uint8(b))
}

// GrayCodec converts 8-bit luma storage to and from RGBA8.
type GrayCodec struct{}

// Decode replicates luma into RGB.
func (GrayCodec) Decode(p Gray8) RGBA8 {
	v := uint8(p)
	return RGBA8{v, v, v, 255}
}

// Encode computes BT.709 luma in 16-bit fixed point on gamma-encoded bytes.
func (GrayCodec) Encode(c RGBA8) Gray8 {
	// 0.2126, 0.7152, 0.0722 scaled by 65536; the weights sum to 65536.
	y := (13933*uint32(c.R) + 46871*uint32(c.G) + 4732*uint32(c.B) + 32768) >> 16
	return Gray8(y)
}

// Via composes a base codec with a projector pair, producing a codec for
// space B over the base storage.
type Via[P, A, B any, CD Codec[P, A], PT Projector[A, B], PF Projector[B, A]] struct {
	Base CD
	To   PT
	From PF
}

// Decode decodes with Base and projects forward.
func (v Via[P, A, B, CD, PT, PF]) Decode(p P) B {
	return v.To.Project(v.Base.Decode(p))
}

// Encode projects back and encodes with Base.
func (v Via[P, A, B, CD, PT, PF]) Encode(c B) P {
	return v.Base.Encode(v.From.Project(c))
}

// QuantizeKey is a RGBA8 -> RGBA8 projector that keeps the top Bits bits
// of each channel. Pixel-art scalers use it as a simplified key space so
// that near-identical colors compare equal.
type QuantizeKey struct {
	Bits uint8
}

// Project masks the low bits of every channel.
func (k QuantizeKey) Project(c RGBA8) RGBA8 {
	if k.Bits == 0 || k.Bits >= 8 {
		return c
	}
	mask := uint8(0xFF << (8 - k.Bits))
	return RGBA8{c.R & mask, c.G & mask, c.B & mask, c.A & mask}
}
