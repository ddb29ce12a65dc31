//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifelab/internal/core"
	"lifelab/internal/pattern"
	"lifelab/internal/render"
	"lifelab/internal/sim"
	"lifelab/internal/ui"
)

const resizeStep = 5

// Game adapts a sim.Session to the ebiten.Game interface. It owns the
// cadence that paces generation steps and translates keyboard and mouse
// input into session operations; the session itself never sees ebiten.
type Game struct {
	session *sim.Session
	cadence *sim.Cadence
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale      int
	patternIdx int
	ruleIdx    int
}

// NewGame constructs a Game around an existing session.
func NewGame(session *sim.Session, scale, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := session.Grid()
	return &Game{
		session:  session,
		cadence:  sim.NewCadence(tps),
		painter:  render.NewGridPainter(g.Rows(), g.Cols()),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	if g.session.Running() {
		for n := g.cadence.Advance(time.Now()); n > 0; n-- {
			g.session.StepOnce()
		}
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleRunning()
		// A fresh cadence window avoids a step burst after a long pause.
		g.cadence.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if g.session.Topology() == core.Wrap {
			g.session.SetTopology(core.Bounded)
		} else {
			g.session.SetTopology(core.Wrap)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		names := core.RuleNames()
		g.ruleIdx = (g.ruleIdx + 1) % len(names)
		if rs, ok := core.LookupRule(names[g.ruleIdx]); ok {
			g.session.SetRules(rs)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		names := pattern.Names()
		if p, ok := pattern.Lookup(names[g.patternIdx]); ok {
			g.session.Stamp(p.Offsets)
		}
		g.patternIdx = (g.patternIdx + 1) % len(names)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		if tps := g.cadence.TPS() / 2; tps >= 1 {
			g.cadence.SetTPS(tps)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.cadence.SetTPS(g.cadence.TPS() * 2)
	}

	grid := g.session.Grid()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.Resize(grid.Rows()-resizeStep, grid.Cols())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.session.Resize(grid.Rows()+resizeStep, grid.Cols())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.session.Resize(grid.Rows(), grid.Cols()-resizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.session.Resize(grid.Rows(), grid.Cols()+resizeStep)
	}

	// Digit d toggles birth(d); with shift held it toggles survive(d).
	// The session validates the count, so errors cannot occur here.
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	for d := 0; d <= core.MaxNeighbors; d++ {
		if !inpututil.IsKeyJustPressed(ebiten.KeyDigit0 + ebiten.Key(d)) {
			continue
		}
		if shift {
			_ = g.session.ToggleSurvive(d)
		} else {
			_ = g.session.ToggleBirth(d)
		}
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	row, col := y/g.scale, x/g.scale
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.BeginStroke(row, col)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.session.PaintAt(row, col)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.session.EndStroke()
	}
}

// Draw renders the board and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.session.Grid()
	if pr, pc := g.painter.Size(); pr != grid.Rows() || pc != grid.Cols() {
		g.painter = render.NewGridPainter(grid.Rows(), grid.Cols())
	}
	g.painter.Blit(screen, grid, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.statusLines())
}

func (g *Game) statusLines() []string {
	s := g.session
	state := "stopped"
	if s.Running() {
		state = "running"
	}
	return []string{
		fmt.Sprintf("%s  %s  %s  gen %d  pop %d",
			s.Rules(), s.Topology(), state, s.Generation(), s.Grid().Population()),
		fmt.Sprintf("%dx%d  %d tps  %.1f steps/s",
			s.Grid().Rows(), s.Grid().Cols(), g.cadence.TPS(), s.Stats().StepsPerSecond),
	}
}

// Layout reports the logical screen size for the current grid.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.session.Grid()
	return grid.Cols() * g.scale, grid.Rows() * g.scale
}
