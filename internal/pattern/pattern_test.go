package pattern

import (
	"slices"
	"testing"
)

func TestBuiltinsRegistered(t *testing.T) {
	sizes := map[string]int{
		"glider":     5,
		"blinker":    3,
		"block":      4,
		"toad":       6,
		"beacon":     8,
		"rpentomino": 5,
		"lwss":       9,
		"pulsar":     48,
	}
	for name, cells := range sizes {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("pattern %q not registered", name)
		}
		if len(p.Offsets) != cells {
			t.Fatalf("pattern %q has %d cells, want %d", name, len(p.Offsets), cells)
		}
		if p.Name != name {
			t.Fatalf("pattern registered as %q reports name %q", name, p.Name)
		}
	}
}

func TestOffsetsAreDistinct(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		seen := map[[2]int]bool{}
		for _, off := range p.Offsets {
			if seen[off] {
				t.Fatalf("pattern %q lists offset %v twice", name, off)
			}
			seen[off] = true
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
	if len(names) < 8 {
		t.Fatalf("expected at least 8 built-ins, got %v", names)
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Names())
	Register(Pattern{Name: "", Offsets: [][2]int{{0, 0}}})
	Register(Pattern{Name: "empty"})
	if len(Names()) != before {
		t.Fatal("invalid patterns must not be registered")
	}
}
