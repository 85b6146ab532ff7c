// Package hostimg bridges image.Image values and chroma frames. It is the
// only place that performs file I/O.
package hostimg

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Load accepts WebP input

	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
)

// FromImage copies img into a compact ARGB32 frame with straight alpha.
// An empty image yields a nil frame and an error.
func FromImage(img image.Image) (*frame.Frame[colorspace.ARGB32], error) {
	b := img.Bounds()
	f, err := frame.New[colorspace.ARGB32](b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("hostimg: %w", err)
	}

	// Fast path for NRGBA images
	if n, ok := img.(*image.NRGBA); ok {
		for y := range f.Height {
			src := n.Pix[y*n.Stride:]
			row := f.Row(y)
			for x := range row {
				p := src[x*4 : x*4+4 : x*4+4]
				row[x] = colorspace.PackARGB32(p[3], p[0], p[1], p[2])
			}
		}
		return f, nil
	}

	// Generic slow path for any image type
	for y := range f.Height {
		row := f.Row(y)
		for x := range row {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[x] = colorspace.PackARGB32(c.A, c.R, c.G, c.B)
		}
	}
	return f, nil
}

// ToNRGBA converts an ARGB32 frame to a non-premultiplied image.
func ToNRGBA(f *frame.Frame[colorspace.ARGB32]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := range f.Height {
		dst := img.Pix[y*img.Stride:]
		for x, c := range f.Row(y) {
			a, r, g, b := c.Split()
			dst[x*4+0] = r
			dst[x*4+1] = g
			dst[x*4+2] = b
			dst[x*4+3] = a
		}
	}
	return img
}

// ColorPalette converts palette entries to a color.Palette.
func ColorPalette(pal []colorspace.ARGB32) color.Palette {
	cp := make(color.Palette, len(pal))
	for i, c := range pal {
		a, r, g, b := c.Split()
		cp[i] = color.NRGBA{R: r, G: g, B: b, A: a}
	}
	return cp
}

// ToPaletted builds a paletted image from an index frame.
func ToPaletted(idx *frame.Frame[uint8], pal []colorspace.ARGB32) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, idx.Width, idx.Height), ColorPalette(pal))
	for y := range idx.Height {
		copy(img.Pix[y*img.Stride:], idx.Row(y))
	}
	return img
}

// Load opens and decodes an image file, honoring EXIF orientation. Any
// format registered with image.RegisterFormat is accepted, WebP included.
func Load(path string) (*frame.Frame[colorspace.ARGB32], error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("hostimg: open %s: %w", path, err)
	}
	return FromImage(img)
}

// Save encodes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("hostimg: save %s: %w", path, err)
	}
	return nil
}

// Digest hashes the visible pixels of f, row by row, ignoring stride
// padding. Equal digests mean equal images.
func Digest(f *frame.Frame[colorspace.ARGB32]) uint64 {
	d := xxhash.New()
	var buf [4]byte
	for y := range f.Height {
		for _, c := range f.Row(y) {
			binary.LittleEndian.PutUint32(buf[:], uint32(c))
			_, _ = d.Write(buf[:])
		}
	}
	return d.Sum64()
}
