//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 14
	marginX    = 4
	marginY    = 12
)

var helpLines = []string{
	"space start/stop   n step   r randomize   c clear",
	"t topology   tab rule preset   p stamp pattern",
	"[ ] speed   arrows resize   drag paint",
	"0-8 toggle birth count   shift+0-8 toggle survive",
	"h help   q quit",
}

// Overlay draws the status header and an optional key-binding help block.
type Overlay struct {
	showHelp bool
	shadow   color.Color
	ink      color.Color
}

// NewOverlay constructs an overlay with help hidden.
func NewOverlay() *Overlay {
	return &Overlay{
		shadow: color.Black,
		ink:    color.RGBA{R: 120, G: 255, B: 120, A: 255},
	}
}

// ToggleHelp shows or hides the key-binding block.
func (o *Overlay) ToggleHelp() { o.showHelp = !o.showHelp }

// Draw paints the status lines, followed by the help block when visible.
func (o *Overlay) Draw(screen *ebiten.Image, status []string) {
	lines := status
	if o.showHelp {
		lines = append(append([]string{}, status...), helpLines...)
	}
	y := marginY
	for _, line := range lines {
		// One-pixel shadow keeps the text legible over live cells.
		text.Draw(screen, line, basicfont.Face7x13, marginX+1, y+1, o.shadow)
		text.Draw(screen, line, basicfont.Face7x13, marginX, y, o.ink)
		y += lineHeight
	}
}
