package names

import (
	"slices"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Floyd-Steinberg", "floydsteinberg"},
		{"  floyd_steinberg ", "floydsteinberg"},
		{"CIEDE2000", "ciede2000"},
		{"Lanczos 3", "lanczos3"},
		{"STRASSE", "strasse"},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("Catmull-Rom", 1)
	r.Register("Box", 2)

	if v, ok := r.Lookup("catmullrom"); !ok || v != 1 {
		t.Errorf("Lookup(catmullrom) = %d, %v", v, ok)
	}
	if _, ok := r.Lookup("gaussian"); ok {
		t.Error("Lookup(gaussian) found an unregistered name")
	}

	r.Register("BOX", 3)
	if v, _ := r.Lookup("box"); v != 3 {
		t.Errorf("re-registered Box = %d, want 3", v)
	}
	if got := r.Names(); !slices.Equal(got, []string{"BOX", "Catmull-Rom"}) {
		t.Errorf("Names() = %v", got)
	}
}
