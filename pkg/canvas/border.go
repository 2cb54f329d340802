package canvas

// BorderStyle selects the glyph set used by DrawBox and Chars.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters.
	BorderDouble
	// BorderRounded uses single lines with rounded corners.
	BorderRounded
	// BorderHeavy uses thick box-drawing characters.
	BorderHeavy
	// BorderASCII uses plain -, | and + for terminals without
	// box-drawing glyphs.
	BorderASCII
)

// BorderChars holds the glyphs for one border style. Callers drawing
// partial borders (a rule matching the active box style, a tee joint)
// pick individual glyphs from here.
type BorderChars struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Chars returns the glyph set for the border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{
			Horizontal:  '═',
			Vertical:    '║',
			TopLeft:     '╔',
			TopRight:    '╗',
			BottomLeft:  '╚',
			BottomRight: '╝',
		}
	case BorderRounded:
		return BorderChars{
			Horizontal:  '─',
			Vertical:    '│',
			TopLeft:     '╭',
			TopRight:    '╮',
			BottomLeft:  '╰',
			BottomRight: '╯',
		}
	case BorderHeavy:
		return BorderChars{
			Horizontal:  '━',
			Vertical:    '┃',
			TopLeft:     '┏',
			TopRight:    '┓',
			BottomLeft:  '┗',
			BottomRight: '┛',
		}
	case BorderASCII:
		return BorderChars{
			Horizontal:  '-',
			Vertical:    '|',
			TopLeft:     '+',
			TopRight:    '+',
			BottomLeft:  '+',
			BottomRight: '+',
		}
	default:
		return BorderChars{
			Horizontal:  '─',
			Vertical:    '│',
			TopLeft:     '┌',
			TopRight:    '┐',
			BottomLeft:  '└',
			BottomRight: '┘',
		}
	}
}
