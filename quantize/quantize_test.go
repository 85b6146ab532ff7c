package quantize

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
)

func quantizers() map[string]Quantizer {
	return map[string]Quantizer{
		"octree":          Octree{},
		"mediancut-rgb":   MedianCut{Space: RGB},
		"mediancut-oklab": MedianCut{Space: Oklab},
	}
}

// gradient builds a histogram with many distinct colors and uneven counts.
func gradient() Histogram {
	h := make(Histogram)
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 85 {
				h[colorspace.PackARGB32(255, uint8(r), uint8(g), uint8(b))] = uint32(1 + (r+g+b)%7)
			}
		}
	}
	return h
}

func TestGeneratePalette_Bounds(t *testing.T) {
	h := gradient()
	for name, q := range quantizers() {
		for _, maxColors := range []int{1, 2, 7, 16, 64, 256} {
			p, err := q.GeneratePalette(h, maxColors)
			if err != nil {
				t.Fatalf("%s(%d): %v", name, maxColors, err)
			}
			if len(p) < 1 || len(p) > maxColors {
				t.Errorf("%s(%d): len = %d", name, maxColors, len(p))
			}
		}
	}
}

func TestGeneratePalette_ExactWhenFits(t *testing.T) {
	red := colorspace.PackARGB32(255, 255, 0, 0)
	green := colorspace.PackARGB32(255, 0, 255, 0)
	blue := colorspace.PackARGB32(255, 0, 0, 255)
	h := Histogram{red: 5, green: 9, blue: 5}
	want := Palette{green, blue, red} // count desc, then value asc
	for name, q := range quantizers() {
		p, err := q.GeneratePalette(h, 3)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !slices.Equal(p, want) {
			t.Errorf("%s: palette = %x, want %x", name, p, want)
		}
	}
}

func TestGeneratePalette_Deterministic(t *testing.T) {
	for name, q := range quantizers() {
		first, _ := q.GeneratePalette(gradient(), 16)
		for i := 0; i < 5; i++ {
			again, _ := q.GeneratePalette(gradient(), 16)
			if !slices.Equal(first, again) {
				t.Fatalf("%s: run %d differs", name, i)
			}
		}
	}
}

func TestGeneratePalette_Errors(t *testing.T) {
	for name, q := range quantizers() {
		if _, err := q.GeneratePalette(Histogram{}, 4); !errors.Is(err, ErrEmptyHistogram) {
			t.Errorf("%s empty: err = %v", name, err)
		}
		for _, n := range []int{0, -1, 257} {
			if _, err := q.GeneratePalette(gradient(), n); !errors.Is(err, ErrColorCount) {
				t.Errorf("%s(%d): err = %v", name, n, err)
			}
		}
	}
}

func TestGeneratePalette_TwoClusters(t *testing.T) {
	h := Histogram{
		colorspace.PackARGB32(255, 250, 0, 0): 10,
		colorspace.PackARGB32(255, 240, 8, 0): 10,
		colorspace.PackARGB32(255, 0, 0, 250): 10,
		colorspace.PackARGB32(255, 0, 8, 240): 10,
	}
	for name, q := range quantizers() {
		p, err := q.GeneratePalette(h, 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(p) != 2 {
			t.Fatalf("%s: len = %d", name, len(p))
		}
		reds := 0
		for _, c := range p {
			if c.R() > c.B() {
				reds++
			}
		}
		if reds != 1 {
			t.Errorf("%s: palette %x does not separate the clusters", name, p)
		}
	}
}

func TestOctree_LeafMean(t *testing.T) {
	h := Histogram{
		colorspace.PackARGB32(255, 10, 10, 10):    3,
		colorspace.PackARGB32(255, 11, 10, 10):    1,
		colorspace.PackARGB32(255, 200, 200, 200): 1,
	}
	p, err := Octree{}.GeneratePalette(h, 2)
	if err != nil {
		t.Fatal(err)
	}
	// The two dark colors share every bit plane above the last and fold
	// into one leaf weighted 3:1.
	want := Palette{colorspace.PackARGB32(255, 10, 10, 10), colorspace.PackARGB32(255, 200, 200, 200)}
	if !slices.Equal(p, want) {
		t.Errorf("palette = %x, want %x", p, want)
	}
}

func TestBuildHistogram_Policies(t *testing.T) {
	f, _ := frame.Wrap([]colorspace.ARGB32{
		0, colorspace.PackARGB32(0, 9, 9, 9),
		colorspace.PackARGB32(255, 1, 2, 3), colorspace.PackARGB32(255, 1, 2, 3),
	}, 2, 2, 2)

	excl := BuildHistogram(f, ExcludeTransparent)
	if len(excl) != 1 || excl[colorspace.PackARGB32(255, 1, 2, 3)] != 2 {
		t.Errorf("exclude = %v", excl)
	}
	incl := BuildHistogram(f, IncludeTransparent)
	if len(incl) != 3 {
		t.Errorf("include = %v", incl)
	}
	if res := BuildHistogram(f, ReserveTransparent); len(res) != 1 {
		t.Errorf("reserve = %v", res)
	}
}

func TestGenerate_Reserve(t *testing.T) {
	h := gradient()
	h[colorspace.Transparent] = 1000
	p, err := Generate(Octree{}, h, 8, ReserveTransparent)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) > 8 || p[0] != colorspace.Transparent {
		t.Fatalf("palette = %x", p)
	}
	for _, c := range p[1:] {
		if c.A() == 0 {
			t.Errorf("transparent entry %08x beyond index 0", uint32(c))
		}
	}

	only, err := Generate(MedianCut{}, Histogram{colorspace.Transparent: 4}, 8, ReserveTransparent)
	if err != nil || !slices.Equal(only, Palette{colorspace.Transparent}) {
		t.Errorf("all-transparent = %x, %v", only, err)
	}
	if _, err := Generate(Octree{}, h, 0, ReserveTransparent); !errors.Is(err, ErrColorCount) {
		t.Errorf("maxColors 0: err = %v", err)
	}
}

func TestDecode(t *testing.T) {
	p := Palette{colorspace.PackARGB32(255, 255, 0, 0), colorspace.PackARGB32(128, 0, 0, 0)}
	got := Decode[colorspace.RGBA8](p, colorspace.ByteCodec{})
	if got[0] != (colorspace.RGBA8{R: 255, A: 255}) || got[1] != (colorspace.RGBA8{A: 128}) {
		t.Errorf("Decode = %+v", got)
	}
	if p.Index(p[1]) != 1 || p.Index(0x01020304) != -1 {
		t.Error("Index mismatch")
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	return img
}

func TestDrawQuantizer(t *testing.T) {
	d := DrawQuantizer{Q: MedianCut{}}
	base := make(color.Palette, 1, 9)
	base[0] = color.Black
	p := d.Quantize(base, testImage())
	if len(p) < 2 || len(p) > 9 || p[0] != color.Black {
		t.Errorf("Quantize returned %d colors", len(p))
	}
	if full := d.Quantize(base[:1:1], testImage()); len(full) != 1 {
		t.Errorf("no capacity: len = %d", len(full))
	}
}

func TestSoniaQuantizer(t *testing.T) {
	s := SoniaQuantizer{Q: Octree{}, N: 8}
	img := testImage()
	pi := s.Paletted(img)
	if pi == nil {
		t.Fatal("Paletted returned nil")
	}
	if len(pi.Palette) > 8 || pi.Bounds() != img.Bounds() {
		t.Errorf("palette %d, bounds %v", len(pi.Palette), pi.Bounds())
	}
	for _, i := range pi.Pix {
		if int(i) >= len(pi.Palette) {
			t.Fatalf("index %d out of palette", i)
		}
	}
	if cp := s.Palette(image.NewNRGBA(image.Rect(0, 0, 2, 2))).ColorPalette(); len(cp) != 0 {
		t.Errorf("fully transparent image palette = %v", cp)
	}
	if pi := s.Paletted(image.NewNRGBA(image.Rect(0, 0, 2, 2))); pi != nil {
		t.Errorf("fully transparent image: Paletted = %v, want nil", pi)
	}

	// A zero budget means the full 256 colors.
	full := SoniaQuantizer{Q: Octree{}}
	if got := len(full.Palette(img).ColorPalette()); got < 1 || got > MaxColors {
		t.Errorf("default budget palette size = %d", got)
	}
}
