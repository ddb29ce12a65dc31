// Package pattern holds the built-in library of classic Life patterns.
// Offsets are (row, col) pairs relative to a center anchor, so a pattern
// can be stamped at any point of any grid; cells falling outside the grid
// are dropped by the stamp operation.
package pattern

import "sort"

// Pattern is a named list of live-cell offsets around a center anchor.
type Pattern struct {
	Name    string
	Offsets [][2]int
}

var registry = map[string]Pattern{}

// Register adds a pattern to the library under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Offsets) == 0 {
		return
	}
	registry[p.Name] = p
}

// Lookup returns a registered pattern by name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Pattern{Name: "glider", Offsets: [][2]int{
		{-1, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}})
	Register(Pattern{Name: "blinker", Offsets: [][2]int{
		{0, -1}, {0, 0}, {0, 1},
	}})
	Register(Pattern{Name: "block", Offsets: [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
	}})
	Register(Pattern{Name: "toad", Offsets: [][2]int{
		{0, 0}, {0, 1}, {0, 2}, {1, -1}, {1, 0}, {1, 1},
	}})
	Register(Pattern{Name: "beacon", Offsets: [][2]int{
		{-1, -1}, {-1, 0}, {0, -1}, {0, 0},
		{1, 1}, {1, 2}, {2, 1}, {2, 2},
	}})
	Register(Pattern{Name: "rpentomino", Offsets: [][2]int{
		{-1, 0}, {-1, 1}, {0, -1}, {0, 0}, {1, 0},
	}})
	Register(Pattern{Name: "lwss", Offsets: [][2]int{
		{-1, -2}, {-1, 1},
		{0, 2},
		{1, -2}, {1, 2},
		{2, -1}, {2, 0}, {2, 1}, {2, 2},
	}})
	Register(Pattern{Name: "pulsar", Offsets: pulsarOffsets()})
}

// pulsarOffsets expands the pulsar's four-fold symmetry instead of listing
// all 48 cells by hand.
func pulsarOffsets() [][2]int {
	arm := [][2]int{
		{1, 2}, {1, 3}, {1, 4},
		{2, 1}, {3, 1}, {4, 1},
		{2, 6}, {3, 6}, {4, 6},
		{6, 2}, {6, 3}, {6, 4},
	}
	var offsets [][2]int
	for _, o := range arm {
		for _, sr := range []int{1, -1} {
			for _, sc := range []int{1, -1} {
				offsets = append(offsets, [2]int{sr * o[0], sc * o[1]})
			}
		}
	}
	return offsets
}
