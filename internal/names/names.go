// Package names provides case-insensitive name registries for the
// strategies chroma exposes by name (metrics, kernels, diffusion matrices).
package names

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Key normalizes a user-supplied name: Unicode case folding, with spaces,
// hyphens and underscores removed. "Floyd-Steinberg" and "floydsteinberg"
// share a key.
func Key(name string) string {
	// A Caser is stateful; one per call keeps Key safe for concurrent use.
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, folded)
}

// Registry maps display names to values. It is populated at package init
// and read-only afterwards, so lookups need no locking.
type Registry[T any] struct {
	entries map[string]T
	display map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
		display: make(map[string]string),
	}
}

// Register adds v under name. A later registration with the same key
// replaces the earlier one.
func (r *Registry[T]) Register(name string, v T) {
	k := Key(name)
	r.entries[k] = v
	r.display[k] = name
}

// Lookup returns the value registered under name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	v, ok := r.entries[Key(name)]
	return v, ok
}

// Names returns the display names in sorted order.
func (r *Registry[T]) Names() []string {
	out := make([]string, 0, len(r.display))
	for _, n := range r.display {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
