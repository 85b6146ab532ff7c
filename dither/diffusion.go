package dither

import (
	mwdither "github.com/makeworld-the-better-one/dither/v2"

	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/metric"
)

// ErrorDiffusion dithers in raster order, pushing each pixel's error onto
// its unvisited neighbors with the weights of Matrix.
//
// Matrix uses the layout of the dither library: the first row holds the
// current pixel at the column just before its first non-zero weight, and
// following rows describe the rows below.
type ErrorDiffusion[C colorspace.Space[C]] struct {
	Matrix mwdither.ErrorDiffusionMatrix

	// Serpentine reverses direction on odd rows.
	Serpentine bool

	// Strength scales the diffused error. Zero means full strength.
	Strength float32
}

// RequiresSequentialProcessing returns true.
func (ErrorDiffusion[C]) RequiresSequentialProcessing() bool { return true }

// tap is one non-zero matrix weight relative to the current pixel.
type tap struct {
	dx, dy int
	w      float32
}

func (d ErrorDiffusion[C]) taps() []tap {
	m := d.Matrix
	if d.Strength != 0 && d.Strength != 1 {
		m = mwdither.ErrorDiffusionStrength(m, d.Strength)
	}
	if len(m) == 0 || len(m[0]) == 0 {
		return nil
	}
	cur := 0
	for i, w := range m[0] {
		if w != 0 {
			cur = max(i-1, 0)
			break
		}
	}
	var taps []tap
	for dy, row := range m {
		for x, w := range row {
			if w == 0 || (dy == 0 && x <= cur) {
				continue
			}
			taps = append(taps, tap{dx: x - cur, dy: dy, w: w})
		}
	}
	return taps
}

// Dither implements Ditherer. r is ignored.
func (d ErrorDiffusion[C]) Dither(src *frame.Frame[C], pal []C, m metric.Metric[C], dst *frame.Frame[uint8], _ frame.Runner) error {
	if err := check(src, pal, dst); err != nil {
		return err
	}
	taps := d.taps()
	rows := 1
	for _, t := range taps {
		rows = max(rows, t.dy+1)
	}

	// errs[0] is the current row; the ring rotates after every row.
	w := src.Width
	errs := make([][]colorspace.Vec, rows)
	for i := range errs {
		errs[i] = make([]colorspace.Vec, w)
	}
	palVec := make([]colorspace.Vec, len(pal))
	for i, c := range pal {
		palVec[i] = c.Vector()
	}

	var zero C
	for y := 0; y < src.Height; y++ {
		in, out := src.Row(y), dst.Row(y)
		x0, x1, dir := 0, w, 1
		if d.Serpentine && y%2 == 1 {
			x0, x1, dir = w-1, -1, -1
		}
		for x := x0; x != x1; x += dir {
			v := in[x].Vector()
			e := &errs[0][x]
			for i := range v {
				v[i] += e[i]
			}
			c := zero.FromVector(v).Clamp()
			v = c.Vector()

			idx := metric.Nearest(m, c, pal)
			out[x] = uint8(idx)

			var diff colorspace.Vec
			for i := range diff {
				diff[i] = v[i] - palVec[idx][i]
			}
			for _, t := range taps {
				tx := x + t.dx*dir
				if tx < 0 || tx >= w {
					continue
				}
				te := &errs[t.dy][tx]
				for i := range te {
					te[i] += diff[i] * t.w
				}
			}
		}

		done := errs[0]
		clear(done)
		copy(errs, errs[1:])
		errs[rows-1] = done
	}
	return nil
}
