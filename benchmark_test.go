package chroma

import (
	"testing"

	"github.com/gogpu/chroma/accum"
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/dither"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/metric"
	"github.com/gogpu/chroma/quantize"
	"github.com/gogpu/chroma/scale"
)

func benchFrame(w, h int) *frame.Frame[colorspace.ARGB32] {
	f, _ := frame.New[colorspace.ARGB32](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, colorspace.PackARGB32(255, uint8(x), uint8(y), uint8(x^y)))
		}
	}
	return f
}

// benchEngines returns the sequential path and a default engine.
func benchEngines(b *testing.B) []struct {
	name string
	e    *Engine
} {
	e := NewEngine()
	b.Cleanup(e.Close)
	return []struct {
		name string
		e    *Engine
	}{{"sequential", nil}, {"engine", e}}
}

// BenchmarkQuantize benchmarks histogram building plus palette generation.
func BenchmarkQuantize(b *testing.B) {
	src := benchFrame(512, 512)
	for _, q := range []struct {
		name string
		q    quantize.Quantizer
	}{
		{"Octree", quantize.Octree{}},
		{"MedianCut", quantize.MedianCut{}},
		{"MedianCutOklab", quantize.MedianCut{Space: quantize.Oklab}},
	} {
		b.Run(q.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Quantize(nil, src, 64, q.q, quantize.ExcludeTransparent); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDither compares error diffusion with ordered dithering.
func BenchmarkDither(b *testing.B) {
	src := benchFrame(512, 512)
	pal, err := Quantize(nil, src, 32, quantize.Octree{}, quantize.ExcludeTransparent)
	if err != nil {
		b.Fatal(err)
	}
	work, _ := Decode[colorspace.ARGB32, colorspace.Oklab](nil, src, colorspace.OklabCodec{})
	colors := quantize.Decode[colorspace.Oklab](pal, colorspace.OklabCodec{})
	m := metric.Euclidean[colorspace.Oklab]{}

	for _, name := range []string{"none", "floyd-steinberg", "bayer8"} {
		d, err := dither.New[colorspace.Oklab](name, 0.1)
		if err != nil {
			b.Fatal(err)
		}
		for _, eng := range benchEngines(b) {
			b.Run(name+"/"+eng.name, func(b *testing.B) {
				b.SetBytes(int64(src.Width * src.Height * 4))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					idx, err := Dither(eng.e, work, colors, m, d)
					if err != nil {
						b.Fatal(err)
					}
					idx.Release()
				}
			})
		}
	}
}

// BenchmarkResample benchmarks a 1920x1080 to 1280x720 Lanczos3 pass in
// linear light.
func BenchmarkResample(b *testing.B) {
	src := benchFrame(1920, 1080)
	work, _ := Decode[colorspace.ARGB32, colorspace.LinearRGB](nil, src, colorspace.LinearCodec{})
	for _, eng := range benchEngines(b) {
		b.Run(eng.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out, err := Resample[colorspace.LinearRGB, accum.Float[colorspace.LinearRGB]](eng.e, work, scale.Lanczos3, 1280, 720)
				if err != nil {
					b.Fatal(err)
				}
				out.Release()
			}
		})
	}
}

// BenchmarkUpscale benchmarks Scale2x and Scale3x on a 256x256 sprite.
func BenchmarkUpscale(b *testing.B) {
	src := benchFrame(256, 256)
	work, _ := Decode[colorspace.ARGB32, colorspace.RGBA8](nil, src, colorspace.ByteCodec{})
	key := colorspace.QuantizeKey{Bits: 5}
	for _, u := range []scale.Upscaler{scale.Scale2x, scale.Scale3x} {
		for _, eng := range benchEngines(b) {
			b.Run(u.String()+"/"+eng.name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					out, err := Upscale[colorspace.RGBA8, colorspace.RGBA8](eng.e, work, u, key, accum.NoLerp[colorspace.RGBA8]{})
					if err != nil {
						b.Fatal(err)
					}
					out.Release()
				}
			})
		}
	}
}
