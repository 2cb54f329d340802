// Package canvas implements a styled cell grid for terminal rendering.
// Widgets draw text, lines, and boxes onto a Canvas, composite multiple
// canvases with layered blits, and serialize the result to a string of
// ANSI escape sequences with minimal style churn.
package canvas

// Color is a terminal palette index. Negative values mean the terminal
// default (inherit); 0-255 follow the conventional 256-color palette,
// with 0-7 basic and 8-15 bright.
type Color int

// Default inherits the terminal's configured color.
const Default Color = -1

// Basic ANSI palette indices.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Bright variants occupy palette slots 8-15.
const (
	BrightBlack Color = iota + 8
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Style defines the visual attributes of a cell.
type Style struct {
	FG        Color
	BG        Color
	Bold      bool
	Dim       bool
	Underline bool
	Reverse   bool
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{FG: Default, BG: Default}
}

// WithFG returns a copy with foreground color set.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns a copy with background color set.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// WithBold returns a copy with bold set.
func (s Style) WithBold(b bool) Style {
	s.Bold = b
	return s
}

// WithDim returns a copy with dim set.
func (s Style) WithDim(d bool) Style {
	s.Dim = d
	return s
}

// WithUnderline returns a copy with underline set.
func (s Style) WithUnderline(u bool) Style {
	s.Underline = u
	return s
}

// WithReverse returns a copy with reverse video set.
func (s Style) WithReverse(r bool) Style {
	s.Reverse = r
	return s
}

// IsDefault reports whether the style carries no color or attribute.
func (s Style) IsDefault() bool {
	return s == DefaultStyle()
}

// Cell is a single terminal column: one grapheme cluster plus its style.
// The grapheme may be multi-byte UTF-8 but always occupies one column.
type Cell struct {
	Grapheme string
	Style    Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Grapheme: " ", Style: DefaultStyle()}
}

// Blank reports whether the cell's grapheme is a literal space.
// Blit treats blank cells as transparent regardless of their style.
func (c Cell) Blank() bool {
	return c.Grapheme == " "
}
