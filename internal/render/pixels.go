package render

import "image/color"

// fillBinaryRGBA writes one RGBA pixel per cell into buf: on for live
// cells, off for dead ones. buf must hold 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		px := off
		if c != 0 {
			px = on
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// toRGBA flattens an arbitrary color.Color to 8-bit RGBA.
func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
