package scale

import (
	"math"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/chroma/accum"
	"github.com/gogpu/chroma/frame"
)

// tap is one source sample of a destination pixel.
type tap struct {
	index  int
	weight float32
}

// table holds, for each destination coordinate, the source taps that
// contribute to it. Weights sum to 1.
type table [][]tap

// buildTable samples k for a src -> dst mapping along one axis. When
// shrinking, the kernel is stretched by the shrink factor so every source
// pixel contributes.
func buildTable(k *draw.Kernel, src, dst int) table {
	scale := float64(src) / float64(dst)
	stretch := max(scale, 1)
	radius := k.Support * stretch

	t := make(table, dst)
	for i := range t {
		center := (float64(i) + 0.5) * scale
		lo := int(math.Floor(center - radius))
		hi := int(math.Ceil(center + radius))
		taps := make([]tap, 0, hi-lo+1)
		var sum float64
		for j := lo; j <= hi; j++ {
			d := math.Abs(float64(j)+0.5-center) / stretch
			if d >= k.Support {
				continue
			}
			w := k.At(d)
			if w == 0 {
				continue
			}
			idx := min(max(j, 0), src-1)
			taps = append(taps, tap{index: idx, weight: float32(w)})
			sum += w
		}
		if len(taps) == 0 || sum == 0 {
			nearest := min(max(int(center), 0), src-1)
			taps = append(taps[:0], tap{index: nearest, weight: 1})
			sum = 1
		}
		inv := float32(1 / sum)
		for j := range taps {
			taps[j].weight *= inv
		}
		t[i] = taps
	}
	return t
}

type tableKey struct {
	src, dst int
}

// tableCache caches weight tables per source and destination length.
type tableCache struct {
	mu     sync.RWMutex
	cache  map[tableKey]table
	maxLen int
}

func newTableCache(maxLen int) *tableCache {
	return &tableCache{
		cache:  make(map[tableKey]table),
		maxLen: maxLen,
	}
}

// get retrieves a table from cache or builds and caches it.
func (c *tableCache) get(k *draw.Kernel, src, dst int) table {
	key := tableKey{src, dst}

	c.mu.RLock()
	if t, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return t
	}
	c.mu.RUnlock()

	t := buildTable(k, src, dst)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = t
	c.mu.Unlock()

	return t
}

// Resampler resizes frames with one continuous kernel. It caches its
// weight tables and is safe for concurrent use.
type Resampler struct {
	kernel *draw.Kernel
	tables *tableCache
}

// NewResampler returns a resampler for k.
func NewResampler(k *draw.Kernel) (*Resampler, error) {
	if k == nil || k.At == nil || k.Support <= 0 {
		return nil, ErrKernel
	}
	return &Resampler{kernel: k, tables: newTableCache(64)}, nil
}

// Kernel returns the resampling kernel.
func (rs *Resampler) Kernel() *draw.Kernel {
	return rs.kernel
}

// Resample resizes src to the size of dst in two separable passes:
// horizontally into a dst.Width x src.Height intermediate, then vertically.
// Both passes accumulate through A, so negative kernel lobes are clamped by
// the accumulator's Result.
// Equal sizes copy src unchanged.
func Resample[C any, A any, PA accum.Ptr[C, A]](rs *Resampler, src, dst *frame.Frame[C], r frame.Runner) error {
	if rs == nil {
		return ErrKernel
	}
	if src.Width <= 0 || src.Height <= 0 || dst.Width <= 0 || dst.Height <= 0 {
		return frame.ErrInvalidDimensions
	}
	if dst.Width == src.Width && dst.Height == src.Height {
		for y := 0; y < src.Height; y++ {
			copy(dst.Row(y), src.Row(y))
		}
		return nil
	}

	mid, err := frame.New[C](dst.Width, src.Height)
	if err != nil {
		return err
	}
	cols := rs.tables.get(rs.kernel, src.Width, dst.Width)
	rows := rs.tables.get(rs.kernel, src.Height, dst.Height)

	frame.ForRows(r, src.Height, func(y0, y1 int) {
		var acc A
		p := PA(&acc)
		for y := y0; y < y1; y++ {
			in, out := src.Row(y), mid.Row(y)
			for x, taps := range cols {
				p.Reset()
				for _, t := range taps {
					p.AddWeighted(in[t.index], t.weight)
				}
				out[x] = p.Result()
			}
		}
	})

	frame.ForRows(r, dst.Height, func(y0, y1 int) {
		var acc A
		p := PA(&acc)
		for y := y0; y < y1; y++ {
			out := dst.Row(y)
			taps := rows[y]
			for x := range out {
				p.Reset()
				for _, t := range taps {
					p.AddWeighted(mid.At(x, t.index), t.weight)
				}
				out[x] = p.Result()
			}
		}
	})
	return nil
}
