package frame

import (
	"errors"
	"sync"
	"testing"
)

func TestWrap_Validation(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		w, h    int
		stride  int
		wantErr error
	}{
		{"exact", 12, 4, 3, 4, nil},
		{"padded stride", 15, 4, 3, 5, nil},
		{"last row without padding", 14, 4, 3, 5, nil},
		{"zero width", 12, 0, 3, 4, ErrInvalidDimensions},
		{"negative height", 12, 4, -1, 4, ErrInvalidDimensions},
		{"stride below width", 12, 4, 3, 3, ErrInvalidStride},
		{"short data", 11, 4, 3, 4, ErrDataTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap(make([]uint32, tt.n), tt.w, tt.h, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Wrap() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFrame_StridedAccess(t *testing.T) {
	pix := make([]int, 3*5)
	for i := range pix {
		pix[i] = -1
	}
	f, err := Wrap(pix, 3, 3, 5)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			f.Set(x, y, y*10+x)
		}
	}

	if got := pix[1*5+2]; got != 12 {
		t.Errorf("pix[7] = %d, want 12", got)
	}
	if got := pix[3]; got != -1 {
		t.Errorf("padding overwritten: pix[3] = %d", got)
	}
	if got := len(f.Row(2)); got != 3 {
		t.Errorf("len(Row) = %d, want 3", got)
	}
}

func TestFrame_AtClamped(t *testing.T) {
	f, _ := New[int](2, 2)
	f.Set(0, 0, 1)
	f.Set(1, 0, 2)
	f.Set(0, 1, 3)
	f.Set(1, 1, 4)

	tests := []struct {
		x, y int
		want int
	}{
		{-1, -1, 1},
		{5, -3, 2},
		{-2, 9, 3},
		{2, 2, 4},
		{1, 0, 2},
	}
	for _, tt := range tests {
		if got := f.AtClamped(tt.x, tt.y); got != tt.want {
			t.Errorf("AtClamped(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFrame_CloneCompacts(t *testing.T) {
	f, _ := Wrap(make([]int, 10), 2, 2, 5)
	f.Fill(7)
	c := f.Clone()
	if c.Stride != 2 || len(c.Pix) != 4 {
		t.Fatalf("clone stride=%d len=%d, want 2 and 4", c.Stride, len(c.Pix))
	}
	for i, v := range c.Pix {
		if v != 7 {
			t.Errorf("clone.Pix[%d] = %d, want 7", i, v)
		}
	}
}

func TestPool_GetRelease(t *testing.T) {
	pool := NewPool[uint32](2)

	f, err := pool.Get(8, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !f.Pooled() {
		t.Error("frame from pool reports Pooled() = false")
	}
	f.Fill(0xFFFFFFFF)
	f.Release()
	f.Release() // idempotent

	if got := pool.Idle(); got != 1 {
		t.Fatalf("Idle() = %d, want 1", got)
	}

	g, _ := pool.Get(8, 4)
	defer g.Release()
	for i, v := range g.Pix {
		if v != 0 {
			t.Fatalf("reused storage not cleared at %d: %#x", i, v)
		}
	}
	if got := pool.Idle(); got != 0 {
		t.Errorf("Idle() after reuse = %d, want 0", got)
	}
}

func TestPool_MaxSize(t *testing.T) {
	pool := NewPool[byte](3)
	frames := make([]*Frame[byte], 5)
	for i := range frames {
		frames[i], _ = pool.Get(4, 4)
	}
	for _, f := range frames {
		f.Release()
	}
	if got := pool.Idle(); got != 3 {
		t.Errorf("Idle() = %d, want 3", got)
	}
}

func TestPool_InvalidDimensions(t *testing.T) {
	pool := NewPool[byte](1)
	if _, err := pool.Get(0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Get(0,3) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestBorrowedRelease_NoOp(t *testing.T) {
	f, _ := New[byte](2, 2)
	f.Release()
	if f.Pix == nil {
		t.Error("Release cleared a borrowed frame")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool[int](4)
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				f, err := pool.Get(16+id%3, 16)
				if err != nil {
					t.Error(err)
					return
				}
				f.Set(0, 0, id)
				if f.At(0, 0) != id {
					t.Errorf("goroutine %d: lost write", id)
				}
				f.Release()
			}
		}(g)
	}
	wg.Wait()
}
