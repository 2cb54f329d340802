package canvas

// Blit copies src onto the canvas with src's origin at (row, col).
// Source cells holding a literal space are skipped so the destination
// shows through; every other cell overwrites. The offset may run off
// any edge; out-of-range cells are clipped.
func (c *Canvas) Blit(src *Canvas, row, col int) {
	c.blit(src, row, col, false)
}

// BlitAll copies every src cell onto the canvas, spaces included.
func (c *Canvas) BlitAll(src *Canvas, row, col int) {
	c.blit(src, row, col, true)
}

func (c *Canvas) blit(src *Canvas, row, col int, opaque bool) {
	if src == nil {
		return
	}
	for r := 0; r < src.rows; r++ {
		dr := row + r
		if dr < 0 || dr >= c.rows {
			continue
		}
		for i := 0; i < src.cols; i++ {
			dc := col + i
			if dc < 0 || dc >= c.cols {
				continue
			}
			cell := src.cells[r][i]
			if !opaque && cell.Blank() {
				continue
			}
			c.cells[dr][dc] = cell
		}
	}
}

// Layer pairs a canvas with its placement for Compose. The canvas is
// borrowed for the duration of the call and never mutated.
type Layer struct {
	Canvas *Canvas
	Row    int
	Col    int
	Opaque bool
}

// Compose paints layers onto the canvas strictly in order, back to
// front, so later layers cover earlier ones. Each layer applies exactly
// as a Blit (or BlitAll when Opaque) at its offset; a nil layer canvas
// is skipped.
func (c *Canvas) Compose(layers []Layer) {
	for _, l := range layers {
		c.blit(l.Canvas, l.Row, l.Col, l.Opaque)
	}
}
