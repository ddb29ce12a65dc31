// Package sim owns the interactive simulation context: the current grid
// snapshot, the active rule set and topology, the run state, and the
// paint-gesture state. Every mutation goes through a Session method; there
// is no package-level state, so hosts can run several boards side by side.
package sim

import (
	"time"

	"lifelab/internal/core"
)

// Grids at or above this many cells are stepped with the banded parallel
// engine; smaller boards are not worth the goroutine fan-out.
const parallelThreshold = 16384

// Options configures a new Session.
type Options struct {
	Rows     int
	Cols     int
	Rules    core.RuleSet
	Topology core.Topology
	Density  float64
	Seed     int64
}

// DefaultOptions returns a medium Conway board with toroidal edges.
func DefaultOptions() Options {
	return Options{
		Rows:     120,
		Cols:     160,
		Rules:    core.DefaultRules(),
		Topology: core.Wrap,
		Density:  0.25,
		Seed:     42,
	}
}

// Session is the simulation context. It has exactly two run states,
// Stopped and Running; the run state only gates the host's cadence —
// manual stepping and every painting operation work in both states.
type Session struct {
	grid    *core.Grid
	rules   core.RuleSet
	topo    core.Topology
	density float64
	rng     *core.RNG

	running    bool
	generation int
	stats      Stats

	// Transient per-gesture paint state. The value painted for the whole
	// stroke is decided by the first cell touched.
	strokeActive bool
	strokeAlive  bool
}

// New constructs a Session from the given options.
func New(opts Options) *Session {
	return &Session{
		grid:    core.NewGrid(opts.Rows, opts.Cols),
		rules:   opts.Rules,
		topo:    opts.Topology,
		density: clampDensity(opts.Density),
		rng:     core.NewRNG(opts.Seed),
	}
}

func clampDensity(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// Grid returns the current grid snapshot.
func (s *Session) Grid() *core.Grid { return s.grid }

// Rules returns the active rule set.
func (s *Session) Rules() core.RuleSet { return s.rules }

// SetRules replaces the active rule set. Takes effect on the next step;
// a step already computed keeps the rules it was called with.
func (s *Session) SetRules(rs core.RuleSet) { s.rules = rs }

// ToggleSurvive flips one survive count, validated at this boundary.
func (s *Session) ToggleSurvive(n int) error {
	rs, err := s.rules.ToggleSurvive(n)
	if err != nil {
		return err
	}
	s.rules = rs
	return nil
}

// ToggleBirth flips one birth count, validated at this boundary.
func (s *Session) ToggleBirth(n int) error {
	rs, err := s.rules.ToggleBirth(n)
	if err != nil {
		return err
	}
	s.rules = rs
	return nil
}

// Topology returns the active edge behavior.
func (s *Session) Topology() core.Topology { return s.topo }

// SetTopology switches between wrap and bounded edges.
func (s *Session) SetTopology(t core.Topology) { s.topo = t }

// Density returns the fill density used by Randomize.
func (s *Session) Density() float64 { return s.density }

// SetDensity updates the fill density, clamped to [0, 1].
func (s *Session) SetDensity(d float64) { s.density = clampDensity(d) }

// Generation returns the number of steps applied since the last reset of
// the board content (randomize, clear, resize, stamp).
func (s *Session) Generation() int { return s.generation }

// Running reports whether the session is in the Running state.
func (s *Session) Running() bool { return s.running }

// Start moves the session to Running.
func (s *Session) Start() { s.running = true }

// Stop moves the session to Stopped.
func (s *Session) Stop() { s.running = false }

// ToggleRunning flips between Stopped and Running.
func (s *Session) ToggleRunning() { s.running = !s.running }

// StepOnce advances the board by exactly one generation. It works in both
// run states; the run state only controls the host cadence.
func (s *Session) StepOnce() {
	// Rules and topology are read once here and passed explicitly, so a
	// mid-step settings change can never be half-applied.
	rules, topo := s.rules, s.topo
	if s.grid.Rows()*s.grid.Cols() >= parallelThreshold {
		s.grid = core.StepParallel(s.grid, rules, topo)
	} else {
		s.grid = core.Step(s.grid, rules, topo)
	}
	s.generation++
	s.stats.Record(s.generation, s.grid.Population(), time.Now())
}

// Randomize replaces the board with an independent random fill at the
// session density. Permitted in either run state.
func (s *Session) Randomize() {
	s.grid = s.grid.Randomize(s.rng, s.density)
	s.resetBoardStats()
}

// Clear replaces the board with an all-dead grid.
func (s *Session) Clear() {
	s.grid = s.grid.Clear()
	s.resetBoardStats()
}

// Resize replaces the board with one of the new dimensions, preserving
// the overlapping top-left content.
func (s *Session) Resize(rows, cols int) {
	s.grid = s.grid.Resize(rows, cols)
	s.resetBoardStats()
}

// Stamp replaces the board with the given offsets stamped around the
// grid center. Offsets outside the board are dropped silently.
func (s *Session) Stamp(offsets [][2]int) {
	s.grid = s.grid.Stamp(offsets, s.grid.Rows()/2, s.grid.Cols()/2)
	s.resetBoardStats()
}

func (s *Session) resetBoardStats() {
	s.generation = 0
	s.stats = Stats{}
}

// BeginStroke starts a paint gesture at (row, col). The stroke paints the
// inverse of the first touched cell's state: touching a dead cell starts
// an alive-painting stroke and vice versa. The first cell is painted
// immediately.
func (s *Session) BeginStroke(row, col int) {
	s.strokeAlive = !s.grid.Alive(row, col)
	s.strokeActive = true
	s.grid.Set(row, col, s.strokeAlive)
}

// PaintAt applies the current stroke value at (row, col). Outside a
// gesture, or outside the board, it is a no-op.
func (s *Session) PaintAt(row, col int) {
	if !s.strokeActive {
		return
	}
	s.grid.Set(row, col, s.strokeAlive)
}

// EndStroke finishes the current paint gesture.
func (s *Session) EndStroke() { s.strokeActive = false }

// Stats returns the rolling run statistics.
func (s *Session) Stats() Stats { return s.stats }
