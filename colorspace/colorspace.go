// Package colorspace provides color value types, storage types, and the
// codec/projection contracts that connect them.
//
// Storage types (ARGB32, RGB24, RGB565, Gray8) describe how a pixel sits in
// a host buffer. Working types (RGBA8, SRGB, LinearRGB, XYZ, Lab, LCh, Oklab,
// DIN99, HSV, HSL, YUV, CMYK) are what algorithms compute in. The identity of
// a space is its Go type; conversions between spaces are always explicit
// method calls or Projector values, never implicit.
//
// Decoders, Encoders and Projectors are pure, allocation-free value types.
// Out-of-range input is clamped, never reported as an error.
package colorspace

// Decoder maps one storage value to one working-space value.
type Decoder[P, C any] interface {
	Decode(p P) C
}

// Encoder maps a working-space value back to storage. Encoding may round or
// clamp.
type Encoder[C, P any] interface {
	Encode(c C) P
}

// Codec is a Decoder and Encoder pair over the same storage and space.
type Codec[P, C any] interface {
	Decoder[P, C]
	Encoder[C, P]
}

// Projector converts between two working spaces.
type Projector[A, B any] interface {
	Project(a A) B
}

// Vec is the channel vector view of a working color. Channels are laid out
// in the space's natural order followed by alpha; unused slots are zero.
type Vec [5]float32

// Space is implemented by every working color type. Generic metrics,
// accumulators and interpolators operate through it.
type Space[C any] interface {
	// Vector returns the channels of the color.
	Vector() Vec
	// FromVector builds a color of the same space from v without clamping.
	// It is called on the zero value.
	FromVector(v Vec) C
	// Clamp limits every channel to the valid range of the space.
	Clamp() C
}

// Func adapts a plain conversion function or method expression to
// Projector, for example Func[LinearRGB, Oklab](LinearRGB.Oklab).
type Func[A, B any] func(A) B

// Project calls f.
func (f Func[A, B]) Project(a A) B { return f(a) }

// Identity is the projector that returns its input.
type Identity[C any] struct{}

// Project returns c.
func (Identity[C]) Project(c C) C { return c }

// Chain composes two projectors A -> B -> K.
type Chain[A, B, K any, P1 Projector[A, B], P2 Projector[B, K]] struct {
	First  P1
	Second P2
}

// Project applies First then Second.
func (c Chain[A, B, K, P1, P2]) Project(a A) K {
	return c.Second.Project(c.First.Project(a))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampRange(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toByte maps [0,1] to [0,255] with clamping and rounding.
func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// roundByte rounds a 0..255 float with clamping.
func roundByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
