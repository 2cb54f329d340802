package canvas

import (
	"strconv"
	"strings"
)

const (
	escape = "\x1b["
	reset  = "\x1b[0m"
)

// ToANSI serializes the canvas row-major, one output line per row,
// rows joined with \n. Styling is run-aware: the serializer tracks the
// active style and emits one SGR sequence only when a cell's style
// differs from it, so a run of same-styled cells costs a single escape.
// Any row ending in a non-default style appends a reset so attributes
// never bleed past the canvas.
func (c *Canvas) ToANSI() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols + 16))
	for r := 0; r < c.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		active := DefaultStyle()
		for i := 0; i < c.cols; i++ {
			cell := c.cells[r][i]
			if cell.Style != active {
				b.WriteString(sgr(cell.Style))
				active = cell.Style
			}
			b.WriteString(cell.Grapheme)
		}
		if !active.IsDefault() {
			b.WriteString(reset)
		}
	}
	return b.String()
}

// sgr renders a style as one SGR sequence. The sequence leads with a
// reset parameter so it fully replaces whatever style was active,
// which keeps transitions stateless; the default style collapses to
// plain ESC[0m.
func sgr(s Style) string {
	var b strings.Builder
	b.WriteString(escape)
	b.WriteByte('0')
	if s.Bold {
		b.WriteString(";1")
	}
	if s.Dim {
		b.WriteString(";2")
	}
	if s.Underline {
		b.WriteString(";4")
	}
	if s.Reverse {
		b.WriteString(";7")
	}
	writeColor(&b, s.FG, true)
	writeColor(&b, s.BG, false)
	b.WriteByte('m')
	return b.String()
}

// writeColor appends the SGR parameters for one color. Defaults emit
// nothing: the leading reset already restored them. Indices above 255
// are out of palette and ignored.
func writeColor(b *strings.Builder, c Color, fg bool) {
	switch {
	case c < 0 || c > 255:
		return
	case c < 8:
		base := 40
		if fg {
			base = 30
		}
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(base + int(c)))
	case c < 16:
		base := 100
		if fg {
			base = 90
		}
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(base + int(c) - 8))
	default:
		if fg {
			b.WriteString(";38;5;")
		} else {
			b.WriteString(";48;5;")
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
}
