package core

// MinDim and MaxDim bound the dimensions accepted by NewGrid and Resize.
// Out-of-range requests are clamped to the nearest bound, never rejected.
const (
	MinDim = 5
	MaxDim = 300
)

// Grid stores a rows×cols matrix of binary cell states in row-major order.
//
// Mutation discipline: Set writes a single cell in place and exists for
// interactive painting. Every other transform (Clear, Resize, Randomize,
// Stamp, and the engine's Step) returns a fresh grid, so a generation step
// always reads one immutable snapshot and never observes its own output.
type Grid struct {
	rows, cols int
	cells      []uint8
}

func clampDim(n int) int {
	if n < MinDim {
		return MinDim
	}
	if n > MaxDim {
		return MaxDim
	}
	return n
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	rows = clampDim(rows)
	cols = clampDim(cols)
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

func (g *Grid) index(row, col int) int { return row*g.cols + col }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports whether the cell at (row, col) is alive. Out-of-range
// coordinates read as dead.
func (g *Grid) Alive(row, col int) bool {
	return g.inBounds(row, col) && g.cells[g.index(row, col)] == 1
}

// Set overwrites a single cell in place. Out-of-range coordinates are a
// silent no-op so paint gestures can run off the edge of the board.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.inBounds(row, col) {
		return
	}
	if alive {
		g.cells[g.index(row, col)] = 1
	} else {
		g.cells[g.index(row, col)] = 0
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Clear returns an all-dead grid of identical dimensions.
func (g *Grid) Clear() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: make([]uint8, len(g.cells))}
}

// Resize returns a grid of the requested dimensions, preserving the
// overlapping top-left rectangle of the receiver's content. Cells outside
// the overlap start dead; shrinking discards content permanently.
func (g *Grid) Resize(rows, cols int) *Grid {
	next := NewGrid(rows, cols)
	copyRows := min(g.rows, next.rows)
	copyCols := min(g.cols, next.cols)
	for r := 0; r < copyRows; r++ {
		copy(next.cells[r*next.cols:r*next.cols+copyCols], g.cells[r*g.cols:r*g.cols+copyCols])
	}
	return next
}

// Randomize returns a grid of identical dimensions where each cell is
// independently alive with probability density (clamped to [0, 1]).
func (g *Grid) Randomize(rng *RNG, density float64) *Grid {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	next := g.Clear()
	for i := range next.cells {
		if rng.Float64() < density {
			next.cells[i] = 1
		}
	}
	return next
}

// Stamp returns an otherwise-cleared grid of identical dimensions with the
// cells at (anchorRow+dr, anchorCol+dc) set alive for every offset.
// Offsets landing outside the grid are dropped silently, so patterns
// stamped near a border simply lose their out-of-range cells.
func (g *Grid) Stamp(offsets [][2]int, anchorRow, anchorCol int) *Grid {
	next := g.Clear()
	for _, off := range offsets {
		next.Set(anchorRow+off[0], anchorCol+off[1], true)
	}
	return next
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have identical dimensions and content.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}
