package chroma

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0 (GOMAXPROCS)", o.workers)
	}
	if o.logger != nil {
		t.Error("logger should default to nil")
	}
	if o.poolSize != 4 {
		t.Errorf("poolSize = %d, want 4", o.poolSize)
	}
}

func TestOptions(t *testing.T) {
	l := slog.New(nopHandler{})
	o := defaultOptions()
	for _, opt := range []Option{WithWorkers(3), WithLogger(l), WithPoolSize(-2)} {
		opt(&o)
	}
	if o.workers != 3 {
		t.Errorf("workers = %d, want 3", o.workers)
	}
	if o.logger != l {
		t.Error("WithLogger not applied")
	}
	if o.poolSize != 0 {
		t.Errorf("poolSize = %d, want negative clamped to 0", o.poolSize)
	}
}

func TestNewEngineWorkers(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		want    int
		running bool
	}{
		{"single", []Option{WithWorkers(1)}, 1, false},
		{"three", []Option{WithWorkers(3)}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.opts...)
			defer e.Close()
			if got := e.Workers(); got != tt.want {
				t.Errorf("Workers() = %d, want %d", got, tt.want)
			}
			if got := e.runner() != nil; got != tt.running {
				t.Errorf("runner present = %v, want %v", got, tt.running)
			}
		})
	}
}

func TestEngineLogger(t *testing.T) {
	var nilEngine *Engine
	if nilEngine.logger() != Logger() {
		t.Error("nil engine should log through the package logger")
	}
	l := slog.New(nopHandler{})
	e := NewEngine(WithWorkers(1), WithLogger(l))
	if e.logger() != l {
		t.Error("WithLogger should override the package logger")
	}
}
