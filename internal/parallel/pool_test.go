package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/gogpu/chroma/frame"
)

var _ frame.Runner = (*WorkerPool)(nil)

func TestWorkerPool_ExecuteAll(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var n atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { n.Add(1) }
	}
	p.ExecuteAll(work)
	if got := n.Load(); got != 100 {
		t.Errorf("executed %d items, want 100", got)
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close()
	if p.IsRunning() {
		t.Error("pool still running after Close")
	}

	// Work on a closed pool still completes on the caller.
	ran := false
	p.ExecuteAll([]func(){func() { ran = true }})
	if !ran {
		t.Error("work on closed pool did not run")
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d", p.Workers())
	}
}

func TestBands(t *testing.T) {
	tests := []struct {
		height, n int
		want      int
	}{
		{height: 0, n: 4, want: 0},
		{height: 3, n: 8, want: 1},
		{height: 10, n: 3, want: 3},
		{height: 100, n: 16, want: 16},
		{height: 7, n: 0, want: 1},
	}
	for _, tt := range tests {
		bands := Bands(tt.height, tt.n)
		if len(bands) != tt.want {
			t.Errorf("Bands(%d,%d) = %d bands, want %d", tt.height, tt.n, len(bands), tt.want)
			continue
		}
		next := 0
		for _, b := range bands {
			if b[0] != next || b[1] <= b[0] {
				t.Errorf("Bands(%d,%d): bad band %v after %d", tt.height, tt.n, b, next)
			}
			next = b[1]
		}
		if tt.height > 0 && next != tt.height {
			t.Errorf("Bands(%d,%d) covers %d rows", tt.height, tt.n, next)
		}
	}
}

func TestForRows_CoversEveryRowOnce(t *testing.T) {
	p := NewWorkerPool(3)
	defer p.Close()

	for _, runner := range []*WorkerPool{nil, p} {
		hits := make([]atomic.Int32, 57)
		frame.ForRows(runner, len(hits), func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				hits[y].Add(1)
			}
		})
		for y := range hits {
			if got := hits[y].Load(); got != 1 {
				t.Errorf("row %d visited %d times", y, got)
			}
		}
	}
}

func TestForEach(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()
	out := make([]int, 9)
	ForEach(p, len(out), func(i int) { out[i] = i * i })
	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d", i, v)
		}
	}
}
