package chroma

import (
	"log/slog"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/chroma/frame"
	"github.com/gogpu/chroma/internal/parallel"
	"github.com/gogpu/chroma/scale"
)

// Engine binds a worker pool, per-type frame pools and resampler caches.
// Pass it as the first argument of the package functions; a nil *Engine
// runs every operation on the calling goroutine and allocates fresh frames.
//
// Frames returned by an engine come from its pools and should be handed
// back with Frame.Release once the caller is done with them.
//
// Thread safety: an Engine is safe for concurrent use. Close must not race
// with running operations.
type Engine struct {
	pool     *parallel.WorkerPool
	log      *slog.Logger
	poolSize int

	// frames maps poolKey[T]{} to *frame.Pool[T].
	frames sync.Map

	mu         sync.Mutex
	resamplers map[*draw.Kernel]*scale.Resampler
	closeOnce  sync.Once
}

// NewEngine creates an engine.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		log:        o.logger,
		poolSize:   o.poolSize,
		resamplers: make(map[*draw.Kernel]*scale.Resampler),
	}
	if o.workers != 1 {
		e.pool = parallel.NewWorkerPool(o.workers)
	}
	e.logger().Debug("chroma: engine created", "workers", e.Workers(), "poolSize", e.poolSize)
	return e
}

// Close stops the worker pool. Close is safe to call multiple times; a
// closed engine keeps working sequentially.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.closeOnce.Do(func() {
		if e.pool != nil {
			e.pool.Close()
		}
	})
}

// Workers returns the number of goroutines operations fan out to.
func (e *Engine) Workers() int {
	if e == nil || e.pool == nil {
		return 1
	}
	return e.pool.Workers()
}

// Resampler returns the engine's cached resampler for k.
func (e *Engine) Resampler(k *draw.Kernel) (*scale.Resampler, error) {
	if e == nil {
		return scale.NewResampler(k)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if rs, ok := e.resamplers[k]; ok {
		return rs, nil
	}
	rs, err := scale.NewResampler(k)
	if err != nil {
		return nil, err
	}
	e.resamplers[k] = rs
	return rs, nil
}

func (e *Engine) logger() *slog.Logger {
	if e == nil || e.log == nil {
		return Logger()
	}
	return e.log
}

// runner returns the row runner, nil for sequential execution.
func (e *Engine) runner() frame.Runner {
	if e == nil || e.pool == nil || !e.pool.IsRunning() {
		return nil
	}
	return e.pool
}

// poolKey is the per-type key of Engine.frames. Distinct instantiations are
// distinct types, so no two element types share an entry.
type poolKey[T any] struct{}

func framePool[T any](e *Engine) *frame.Pool[T] {
	if v, ok := e.frames.Load(poolKey[T]{}); ok {
		return v.(*frame.Pool[T])
	}
	v, _ := e.frames.LoadOrStore(poolKey[T]{}, frame.NewPool[T](e.poolSize))
	return v.(*frame.Pool[T])
}

// newFrame acquires a compact frame from e's pool, or allocates one.
func newFrame[T any](e *Engine, w, h int) (*frame.Frame[T], error) {
	if e == nil {
		return frame.New[T](w, h)
	}
	return framePool[T](e).Get(w, h)
}
