package scale

import (
	"fmt"

	"github.com/gogpu/chroma/accum"
	"github.com/gogpu/chroma/frame"
)

// MaxRatio is the largest per-axis downscale ratio.
const MaxRatio = 5

// DownscaleSize returns the destination size for a ratio. Partial blocks at
// the right and bottom edges produce a pixel of their own.
func DownscaleSize(w, h, ratioX, ratioY int) (int, int) {
	return (w + ratioX - 1) / ratioX, (h + ratioY - 1) / ratioY
}

// CheckRatio validates a downscale ratio against the source size.
func CheckRatio(w, h, ratioX, ratioY int) error {
	if ratioX < 1 || ratioX > MaxRatio || ratioY < 1 || ratioY > MaxRatio {
		return fmt.Errorf("%w: %dx%d outside 1..%d", ErrRatio, ratioX, ratioY, MaxRatio)
	}
	if ratioX > w || ratioY > h {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d image", ErrRatio, ratioX, ratioY, w, h)
	}
	return nil
}

// Downscale shrinks src by integer ratios. Every destination pixel is the
// accumulation, with weight 1, of the source block it covers.
func Downscale[C any, A any, PA accum.Ptr[C, A]](src *frame.Frame[C], ratioX, ratioY int, dst *frame.Frame[C], r frame.Runner) error {
	if err := CheckRatio(src.Width, src.Height, ratioX, ratioY); err != nil {
		return err
	}
	w, h := DownscaleSize(src.Width, src.Height, ratioX, ratioY)
	if err := checkSize(dst, src, w, h); err != nil {
		return err
	}

	frame.ForRows(r, h, func(y0, y1 int) {
		var acc A
		p := PA(&acc)
		for y := y0; y < y1; y++ {
			sy0, sy1 := y*ratioY, min((y+1)*ratioY, src.Height)
			out := dst.Row(y)
			for x := range out {
				sx0, sx1 := x*ratioX, min((x+1)*ratioX, src.Width)
				p.Reset()
				for sy := sy0; sy < sy1; sy++ {
					for _, c := range src.Row(sy)[sx0:sx1] {
						p.AddWeighted(c, 1)
					}
				}
				out[x] = p.Result()
			}
		}
	})
	return nil
}
