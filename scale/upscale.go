package scale

import (
	"github.com/gogpu/chroma/accum"
	"github.com/gogpu/chroma/colorspace"
	"github.com/gogpu/chroma/frame"
)

// Upscaler selects a pixel-art scaling rule set.
type Upscaler int

// Supported upscalers.
const (
	Scale2x Upscaler = iota + 1
	Scale3x
	Scale4x
	Eagle2x
	EPX
)

// Factor returns the integer scale factor, or 0 for an unknown upscaler.
func (u Upscaler) Factor() int {
	switch u {
	case Scale2x, Eagle2x, EPX:
		return 2
	case Scale3x:
		return 3
	case Scale4x:
		return 4
	default:
		return 0
	}
}

// String returns the upscaler name.
func (u Upscaler) String() string {
	switch u {
	case Scale2x:
		return "Scale2x"
	case Scale3x:
		return "Scale3x"
	case Scale4x:
		return "Scale4x"
	case Eagle2x:
		return "Eagle2x"
	case EPX:
		return "EPX"
	default:
		return "Unknown"
	}
}

// hood is the 3x3 neighborhood of a source pixel, row-major, with E at the
// center:
//
//	A B C
//	D E F
//	G H I
type hood[T any] [9]T

const (
	nA = iota
	nB
	nC
	nD
	nE
	nF
	nG
	nH
	nI
)

func load[T any](f *frame.Frame[T], x, y int) hood[T] {
	var n hood[T]
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n[(dy+1)*3+dx+1] = f.AtClamped(x+dx, y+dy)
		}
	}
	return n
}

// Upscale enlarges src by u.Factor() into dst. Neighbors are compared in
// the key space produced by key; matched sub-pixels are produced with
// lerp.Mix(pattern, center, 3, 1), so accum.NoLerp copies the pattern color
// verbatim and a blending lerper softens it.
func Upscale[C any, K comparable, P colorspace.Projector[C, K], L accum.Lerper[C]](
	src *frame.Frame[C], u Upscaler, key P, lerp L, dst *frame.Frame[C], r frame.Runner,
) error {
	n := u.Factor()
	if n == 0 {
		return ErrUpscaler
	}
	if err := checkSize(dst, src, src.Width*n, src.Height*n); err != nil {
		return err
	}

	if u == Scale4x {
		mid, err := frame.New[C](src.Width*2, src.Height*2)
		if err != nil {
			return err
		}
		if err := Upscale(src, Scale2x, key, lerp, mid, r); err != nil {
			return err
		}
		return Upscale(mid, Scale2x, key, lerp, dst, r)
	}

	keys, err := frame.New[K](src.Width, src.Height)
	if err != nil {
		return err
	}
	frame.ForRows(r, src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := keys.Row(y)
			for x, c := range src.Row(y) {
				out[x] = key.Project(c)
			}
		}
	})

	var rule func(k hood[K], c hood[C], lerp L, out []C)
	switch u {
	case Scale2x:
		rule = scale2x[C, K, L]
	case Scale3x:
		rule = scale3x[C, K, L]
	case Eagle2x:
		rule = eagle2x[C, K, L]
	case EPX:
		rule = epx[C, K, L]
	}

	frame.ForRows(r, src.Height, func(y0, y1 int) {
		block := make([]C, n*n)
		for y := y0; y < y1; y++ {
			for x := 0; x < src.Width; x++ {
				rule(load(keys, x, y), load(src, x, y), lerp, block)
				for by := 0; by < n; by++ {
					copy(dst.Row(y*n+by)[x*n:], block[by*n:(by+1)*n])
				}
			}
		}
	})
	return nil
}

// Scale2x (AdvMAME2x): a corner takes the shared color of its two
// orthogonal neighbors, unless the center sits on a straight line.
func scale2x[C any, K comparable, L accum.Lerper[C]](k hood[K], c hood[C], lerp L, out []C) {
	e := c[nE]
	out[0], out[1], out[2], out[3] = e, e, e, e
	if k[nB] == k[nH] || k[nD] == k[nF] {
		return
	}
	if k[nD] == k[nB] {
		out[0] = lerp.Mix(c[nD], e, 3, 1)
	}
	if k[nB] == k[nF] {
		out[1] = lerp.Mix(c[nF], e, 3, 1)
	}
	if k[nD] == k[nH] {
		out[2] = lerp.Mix(c[nD], e, 3, 1)
	}
	if k[nH] == k[nF] {
		out[3] = lerp.Mix(c[nF], e, 3, 1)
	}
}

// Scale3x (AdvMAME3x) extends the 2x rule with edge sub-pixels that also
// look at the diagonal neighbors.
func scale3x[C any, K comparable, L accum.Lerper[C]](k hood[K], c hood[C], lerp L, out []C) {
	e := c[nE]
	for i := range out[:9] {
		out[i] = e
	}
	if k[nB] == k[nH] || k[nD] == k[nF] {
		return
	}
	ke := k[nE]
	db, bf, dh, hf := k[nD] == k[nB], k[nB] == k[nF], k[nD] == k[nH], k[nH] == k[nF]
	pick := func(i, from int) { out[i] = lerp.Mix(c[from], e, 3, 1) }

	if db {
		pick(0, nD)
	}
	if (db && ke != k[nC]) || (bf && ke != k[nA]) {
		pick(1, nB)
	}
	if bf {
		pick(2, nF)
	}
	if (db && ke != k[nG]) || (dh && ke != k[nA]) {
		pick(3, nD)
	}
	if (bf && ke != k[nI]) || (hf && ke != k[nC]) {
		pick(5, nF)
	}
	if dh {
		pick(6, nD)
	}
	if (dh && ke != k[nI]) || (hf && ke != k[nG]) {
		pick(7, nH)
	}
	if hf {
		pick(8, nF)
	}
}

// Eagle2x: a corner takes the diagonal color when it matches both adjacent
// orthogonal neighbors.
func eagle2x[C any, K comparable, L accum.Lerper[C]](k hood[K], c hood[C], lerp L, out []C) {
	e := c[nE]
	out[0], out[1], out[2], out[3] = e, e, e, e
	if k[nA] == k[nB] && k[nA] == k[nD] {
		out[0] = lerp.Mix(c[nA], e, 3, 1)
	}
	if k[nC] == k[nB] && k[nC] == k[nF] {
		out[1] = lerp.Mix(c[nC], e, 3, 1)
	}
	if k[nG] == k[nD] && k[nG] == k[nH] {
		out[2] = lerp.Mix(c[nG], e, 3, 1)
	}
	if k[nI] == k[nF] && k[nI] == k[nH] {
		out[3] = lerp.Mix(c[nI], e, 3, 1)
	}
}

// EPX: like Scale2x, but the corners stay untouched whenever three or more
// of the four orthogonal neighbors are equal.
func epx[C any, K comparable, L accum.Lerper[C]](k hood[K], c hood[C], lerp L, out []C) {
	e := c[nE]
	out[0], out[1], out[2], out[3] = e, e, e, e
	b, d, f, h := k[nB], k[nD], k[nF], k[nH]
	eq := 0
	for _, p := range [][2]K{{b, d}, {b, f}, {b, h}, {d, f}, {d, h}, {f, h}} {
		if p[0] == p[1] {
			eq++
		}
	}
	// Three equal values produce at least three equal pairs.
	if eq >= 3 {
		return
	}
	if d == b {
		out[0] = lerp.Mix(c[nB], e, 3, 1)
	}
	if b == f {
		out[1] = lerp.Mix(c[nF], e, 3, 1)
	}
	if d == h {
		out[2] = lerp.Mix(c[nD], e, 3, 1)
	}
	if f == h {
		out[3] = lerp.Mix(c[nH], e, 3, 1)
	}
}
