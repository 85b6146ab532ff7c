package colorspace

// ARGB32 is a 32-bit pixel packed as 0xAARRGGBB with straight alpha.
type ARGB32 uint32

// Transparent is the fully transparent black ARGB32 pixel.
const Transparent ARGB32 = 0

// PackARGB32 builds an ARGB32 from its components.
func PackARGB32(a, r, g, b uint8) ARGB32 {
	return ARGB32(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha component.
func (c ARGB32) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c ARGB32) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c ARGB32) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c ARGB32) B() uint8 { return uint8(c) }

// Split returns (a, r, g, b).
func (c ARGB32) Split() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Opaque returns c with alpha forced to 255.
func (c ARGB32) Opaque() ARGB32 { return c | 0xFF000000 }

// RGB24 is a 24-bit pixel without alpha.
type RGB24 struct {
	R, G, B uint8
}

// RGB565 is a 16-bit pixel with 5 bits red, 6 bits green and 5 bits blue.
type RGB565 uint16

// PackRGB565 builds an RGB565 from 5/6/5-bit components.
func PackRGB565(r5, g6, b5 uint8) RGB565 {
	return RGB565(uint16(r5&0x1F)<<11 | uint16(g6&0x3F)<<5 | uint16(b5&0x1F))
}

// Gray8 is an 8-bit luma pixel.
type Gray8 uint8
