package core

import "testing"

func TestNewGridClampsDimensions(t *testing.T) {
	cases := []struct {
		rows, cols         int
		wantRows, wantCols int
	}{
		{10, 20, 10, 20},
		{0, 20, MinDim, 20},
		{-3, 10000, MinDim, MaxDim},
		{MaxDim + 1, MinDim - 1, MaxDim, MinDim},
	}
	for _, tc := range cases {
		g := NewGrid(tc.rows, tc.cols)
		if g.Rows() != tc.wantRows || g.Cols() != tc.wantCols {
			t.Fatalf("NewGrid(%d, %d) = %dx%d, want %dx%d",
				tc.rows, tc.cols, g.Rows(), g.Cols(), tc.wantRows, tc.wantCols)
		}
		if g.Population() != 0 {
			t.Fatalf("new grid must start all dead, got population %d", g.Population())
		}
	}
}

func TestSetAndAlive(t *testing.T) {
	g := NewGrid(10, 10)
	g.Set(3, 4, true)
	if !g.Alive(3, 4) {
		t.Fatal("cell (3,4) should be alive after Set")
	}
	g.Set(3, 4, false)
	if g.Alive(3, 4) {
		t.Fatal("cell (3,4) should be dead after clearing Set")
	}

	// Out-of-range writes are silent no-ops.
	before := g.Population()
	g.Set(-1, 0, true)
	g.Set(0, -1, true)
	g.Set(10, 0, true)
	g.Set(0, 10, true)
	if g.Population() != before {
		t.Fatalf("out-of-range Set changed population from %d to %d", before, g.Population())
	}
	if g.Alive(-1, 0) || g.Alive(10, 10) {
		t.Fatal("out-of-range Alive must read as dead")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(8, 8)
	g.Set(2, 2, true)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone must equal the original")
	}
	c.Set(5, 5, true)
	if g.Alive(5, 5) {
		t.Fatal("mutating the clone leaked into the original")
	}
	g.Set(6, 6, true)
	if c.Alive(6, 6) {
		t.Fatal("mutating the original leaked into the clone")
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	g := NewGrid(10, 12)
	g.Set(0, 0, true)
	g.Set(4, 5, true)
	g.Set(9, 11, true)

	grown := g.Resize(14, 16)
	if grown.Rows() != 14 || grown.Cols() != 16 {
		t.Fatalf("grown grid is %dx%d, want 14x16", grown.Rows(), grown.Cols())
	}
	for _, cell := range [][2]int{{0, 0}, {4, 5}, {9, 11}} {
		if !grown.Alive(cell[0], cell[1]) {
			t.Fatalf("cell (%d,%d) lost while growing", cell[0], cell[1])
		}
	}

	shrunk := g.Resize(5, 6)
	if !shrunk.Alive(0, 0) || !shrunk.Alive(4, 5) {
		t.Fatal("cells inside the overlap must survive shrinking")
	}
}

func TestShrinkThenRegrowDoesNotResurrect(t *testing.T) {
	g := NewGrid(10, 12)
	g.Set(9, 11, true)
	g.Set(2, 3, true)

	restored := g.Resize(5, 6).Resize(10, 12)
	if !restored.Alive(2, 3) {
		t.Fatal("cell inside the shrink overlap must survive the round trip")
	}
	if restored.Alive(9, 11) {
		t.Fatal("cell dropped by shrinking must not reappear after regrowing")
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	g := NewGrid(20, 20)
	rng := NewRNG(7)

	dead := g.Randomize(rng, 0.0)
	if dead.Population() != 0 {
		t.Fatalf("density 0 left %d live cells", dead.Population())
	}

	full := g.Randomize(rng, 1.0)
	if full.Population() != 400 {
		t.Fatalf("density 1 produced %d live cells, want 400", full.Population())
	}

	// Out-of-range densities clamp to the extremes.
	if g.Randomize(rng, -0.5).Population() != 0 {
		t.Fatal("negative density must clamp to 0")
	}
	if g.Randomize(rng, 3.0).Population() != 400 {
		t.Fatal("density above 1 must clamp to 1")
	}
}

func TestRandomizeDeterministicPerSeed(t *testing.T) {
	g := NewGrid(16, 16)
	a := g.Randomize(NewRNG(99), 0.4)
	b := g.Randomize(NewRNG(99), 0.4)
	if !a.Equal(b) {
		t.Fatal("same seed and density must fill identically")
	}
	if a.Population() == 0 || a.Population() == 256 {
		t.Fatalf("density 0.4 fill looks degenerate: population %d", a.Population())
	}
}

func TestStampDropsOutOfRangeOffsets(t *testing.T) {
	g := NewGrid(10, 10)
	g.Set(7, 7, true) // Stamp replaces content, so this must vanish.

	offsets := [][2]int{{0, 0}, {0, 1}, {1, 0}, {-20, 0}, {0, 20}}
	stamped := g.Stamp(offsets, 0, 0)

	if stamped.Population() != 3 {
		t.Fatalf("population %d, want 3 (two offsets out of range)", stamped.Population())
	}
	if stamped.Alive(7, 7) {
		t.Fatal("stamping must start from a cleared board")
	}
	for _, cell := range [][2]int{{0, 0}, {0, 1}, {1, 0}} {
		if !stamped.Alive(cell[0], cell[1]) {
			t.Fatalf("cell (%d,%d) missing after stamp", cell[0], cell[1])
		}
	}
}

func TestClearKeepsDimensions(t *testing.T) {
	g := NewGrid(9, 13)
	g.Set(1, 1, true)
	cleared := g.Clear()
	if cleared.Rows() != 9 || cleared.Cols() != 13 {
		t.Fatalf("cleared grid is %dx%d, want 9x13", cleared.Rows(), cleared.Cols())
	}
	if cleared.Population() != 0 {
		t.Fatal("cleared grid must be all dead")
	}
	if !g.Alive(1, 1) {
		t.Fatal("Clear must not mutate the receiver")
	}
}

func TestEqual(t *testing.T) {
	a := NewGrid(6, 6)
	b := NewGrid(6, 6)
	if !a.Equal(b) {
		t.Fatal("two fresh grids of equal size must be equal")
	}
	b.Set(0, 0, true)
	if a.Equal(b) {
		t.Fatal("grids with different content must not be equal")
	}
	if a.Equal(NewGrid(6, 7)) {
		t.Fatal("grids with different dimensions must not be equal")
	}
	if a.Equal(nil) {
		t.Fatal("nil comparison must be false")
	}
}
