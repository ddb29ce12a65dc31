//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifelab/internal/core"
)

// GridPainter uploads a grid's cells into a single RGBA image, one pixel
// per cell, and draws it scaled. Allocated per grid size; the app swaps
// painters when the board is resized.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows×cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
	}
}

// Size returns the grid dimensions the painter was allocated for.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }

// Blit uploads the grid content and draws it onto dst at the given scale.
// A grid of mismatched dimensions is skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g.Rows() != gp.rows || g.Cols() != gp.cols {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), toRGBA(on), toRGBA(off))
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
