package hostimg

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
)

func TestFromImage_NRGBAAndGeneric(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	src.SetNRGBA(2, 1, color.NRGBA{R: 255, G: 0, B: 128, A: 255})

	fast, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := fast.At(0, 0); got != colorspace.PackARGB32(40, 10, 20, 30) {
		t.Errorf("At(0,0) = %08x", uint32(got))
	}
	if got := fast.At(2, 1); got != colorspace.PackARGB32(255, 255, 0, 128) {
		t.Errorf("At(2,1) = %08x", uint32(got))
	}

	// image.Gray goes through the generic path.
	gray := image.NewGray(image.Rect(5, 5, 7, 6))
	gray.SetGray(6, 5, color.Gray{Y: 77})
	g, err := FromImage(gray)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 2 || g.Height != 1 {
		t.Fatalf("size = %dx%d", g.Width, g.Height)
	}
	if got := g.At(1, 0); got != colorspace.PackARGB32(255, 77, 77, 77) {
		t.Errorf("gray At(1,0) = %08x", uint32(got))
	}
}

func TestFromImage_Empty(t *testing.T) {
	if _, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 4))); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestToNRGBA_RoundTrip(t *testing.T) {
	f, _ := frame.New[colorspace.ARGB32](2, 2)
	f.Set(0, 0, colorspace.PackARGB32(1, 2, 3, 4))
	f.Set(1, 1, colorspace.PackARGB32(255, 9, 8, 7))
	back, err := FromImage(ToNRGBA(f))
	if err != nil {
		t.Fatal(err)
	}
	if Digest(back) != Digest(f) {
		t.Error("round trip changed pixels")
	}
}

func TestDigest_IgnoresStridePadding(t *testing.T) {
	compact, _ := frame.Wrap([]colorspace.ARGB32{1, 2, 3, 4}, 2, 2, 2)
	padded, _ := frame.Wrap([]colorspace.ARGB32{1, 2, 99, 3, 4}, 2, 2, 3)
	if Digest(compact) != Digest(padded) {
		t.Error("digest depends on stride padding")
	}
	other, _ := frame.Wrap([]colorspace.ARGB32{1, 2, 3, 5}, 2, 2, 2)
	if Digest(compact) == Digest(other) {
		t.Error("different pixels share a digest")
	}
}

func TestToPaletted(t *testing.T) {
	idx, _ := frame.Wrap([]uint8{0, 1, 1, 0}, 2, 2, 2)
	pal := []colorspace.ARGB32{colorspace.PackARGB32(255, 0, 0, 0), colorspace.PackARGB32(255, 255, 255, 255)}
	img := ToPaletted(idx, pal)
	if img.ColorIndexAt(1, 0) != 1 || img.ColorIndexAt(1, 1) != 0 {
		t.Errorf("indices = %v", img.Pix)
	}
	if len(img.Palette) != 2 {
		t.Errorf("palette len = %d", len(img.Palette))
	}
}

func TestSaveLoad(t *testing.T) {
	f, _ := frame.New[colorspace.ARGB32](4, 3)
	f.Fill(colorspace.PackARGB32(255, 12, 34, 56))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(path, ToNRGBA(f)); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if Digest(got) != Digest(f) {
		t.Error("PNG round trip changed pixels")
	}
}
