package canvas

import "github.com/rivo/uniseg"

// DrawText writes text starting at (row, col), one grapheme cluster per
// column. Clusters are segmented with uniseg so combining sequences and
// emoji land in a single cell; every cluster advances exactly one
// column. Columns outside the grid are dropped, a row outside the grid
// is a no-op.
func (c *Canvas) DrawText(row, col int, style Style, text string) {
	if row < 0 || row >= c.rows || text == "" {
		return
	}
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		if col >= c.cols {
			return
		}
		if col >= 0 {
			c.cells[row][col] = Cell{Grapheme: cluster, Style: style}
		}
		col++
	}
}

// DrawHLine repeats one glyph across length columns starting at
// (row, col), clipping at the grid edges.
func (c *Canvas) DrawHLine(row, col, length int, g string, style Style) {
	for i := 0; i < length; i++ {
		c.SetChar(row, col+i, g, style)
	}
}

// DrawVLine repeats one glyph down length rows starting at (row, col),
// clipping at the grid edges.
func (c *Canvas) DrawVLine(row, col, length int, g string, style Style) {
	for i := 0; i < length; i++ {
		c.SetChar(row+i, col, g, style)
	}
}

// FillRect fills a width×height rectangle with a repeated glyph,
// clipping at the grid edges.
func (c *Canvas) FillRect(row, col, width, height int, g string, style Style) {
	for r := 0; r < height; r++ {
		for i := 0; i < width; i++ {
			c.SetChar(row+r, col+i, g, style)
		}
	}
}

// DrawBox outlines a width×height rectangle using the glyph set for
// border. Degenerate extents draw only what fits: a single column
// becomes a vertical rule, a single row a horizontal rule, a 1×1 box
// one horizontal glyph. Non-positive extents draw nothing.
func (c *Canvas) DrawBox(row, col, width, height int, border BorderStyle, style Style) {
	if width <= 0 || height <= 0 {
		return
	}
	ch := border.Chars()

	switch {
	case width == 1 && height == 1:
		c.SetChar(row, col, string(ch.Horizontal), style)
		return
	case width == 1:
		c.DrawVLine(row, col, height, string(ch.Vertical), style)
		return
	case height == 1:
		c.DrawHLine(row, col, width, string(ch.Horizontal), style)
		return
	}

	c.SetChar(row, col, string(ch.TopLeft), style)
	c.SetChar(row, col+width-1, string(ch.TopRight), style)
	c.SetChar(row+height-1, col, string(ch.BottomLeft), style)
	c.SetChar(row+height-1, col+width-1, string(ch.BottomRight), style)

	c.DrawHLine(row, col+1, width-2, string(ch.Horizontal), style)
	c.DrawHLine(row+height-1, col+1, width-2, string(ch.Horizontal), style)
	c.DrawVLine(row+1, col, height-2, string(ch.Vertical), style)
	c.DrawVLine(row+1, col+width-1, height-2, string(ch.Vertical), style)
}
