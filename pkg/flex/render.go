package flex

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// Render arranges the container's children inside size and returns the
// composed region: size.Rows lines joined with \n, each exactly
// size.Cols visible columns. Every child's Render fires exactly once
// with its final rectangle, including zero-sized ones; with no
// children the result is a blank region of the requested size.
func (c *Container) Render(size Size) string {
	outRows := max(0, size.Rows)
	outCols := max(0, size.Cols)

	content := Size{
		Rows: max(0, outRows-c.Padding.Top-c.Padding.Bottom),
		Cols: max(0, outCols-c.Padding.Left-c.Padding.Right),
	}

	rects := c.layout(content)

	type placement struct {
		rect  Rect
		lines []string
	}
	placed := make([]placement, len(rects))
	for i, ch := range c.Children {
		r := rects[i]
		r.Row += c.Padding.Top
		r.Col += c.Padding.Left
		var text string
		if ch.Render != nil {
			text = ch.Render(r.Size())
		}
		placed[i] = placement{rect: r, lines: splitLines(text)}
	}

	var b strings.Builder
	b.Grow(outRows * (outCols + 1))
	for row := 0; row < outRows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for _, p := range placed {
			if p.rect.Cols <= 0 || row < p.rect.Row || row >= p.rect.Row+p.rect.Rows {
				continue
			}
			if p.rect.Col > col {
				b.WriteString(strings.Repeat(" ", p.rect.Col-col))
				col = p.rect.Col
			}
			line := ""
			if idx := row - p.rect.Row; idx < len(p.lines) {
				line = p.lines[idx]
			}
			b.WriteString(padLine(line, p.rect.Cols))
			col += p.rect.Cols
		}
		if col < outCols {
			b.WriteString(strings.Repeat(" ", outCols-col))
		}
	}
	return b.String()
}

// layout solves main-axis allocation and cross-axis placement for
// every child, returning rectangles relative to the content box.
func (c *Container) layout(content Size) []Rect {
	n := len(c.Children)
	rects := make([]Rect, n)
	if n == 0 {
		return rects
	}

	main := content.Cols
	cross := content.Rows
	gap := c.Gap.Horizontal
	if c.Direction == Column {
		main = content.Rows
		cross = content.Cols
		gap = c.Gap.Vertical
	}
	if gap < 0 {
		gap = 0
	}

	// Gaps sit strictly between children, never at the ends.
	gapTotal := gap * (n - 1)
	remaining := max(0, main-gapTotal)

	sizes := make([]int, n)

	// Fixed pass: Px and Percent claims come off the top in
	// declaration order. Percent is computed against the original
	// content-box extent, then clamped to what is actually left, so
	// over-subscription degrades to zero for later children.
	for i, ch := range c.Children {
		switch ch.Basis.kind {
		case basisPx:
			sizes[i] = clamp(ch.Basis.value, 0, remaining)
			remaining -= sizes[i]
		case basisPercent:
			want := int(math.Round(float64(ch.Basis.value) / 100 * float64(main)))
			sizes[i] = clamp(want, 0, remaining)
			remaining -= sizes[i]
		}
	}

	// Weighted pass: Ratio and Fill split the leftover as one pool.
	// The signed rounding drift lands on the last flexible child so
	// allocations sum exactly to the pool.
	var flexible []int
	weightSum := 0
	for i, ch := range c.Children {
		if ch.Basis.flexible() {
			flexible = append(flexible, i)
			weightSum += ch.Basis.weight()
		}
	}
	if len(flexible) > 0 && weightSum > 0 {
		pool := remaining
		used := 0
		for _, i := range flexible {
			w := c.Children[i].Basis.weight()
			sizes[i] = int(math.Round(float64(pool) * float64(w) / float64(weightSum)))
			used += sizes[i]
		}
		last := flexible[len(flexible)-1]
		sizes[last] = max(0, sizes[last]+pool-used)
	}

	total := gapTotal
	for _, s := range sizes {
		total += s
	}
	leftover := max(0, main-total)

	offset := 0
	between := 0
	extra := 0
	switch c.Justify {
	case JustifyCenter:
		offset = leftover / 2
	case JustifyEnd:
		offset = leftover
	case JustifySpaceBetween:
		if n > 1 {
			between = leftover / (n - 1)
			extra = leftover % (n - 1)
		}
	}

	for i := range c.Children {
		extent, pos := c.crossPlacement(c.Children[i], cross)
		if c.Direction == Row {
			rects[i] = Rect{Row: pos, Col: offset, Rows: extent, Cols: sizes[i]}
		} else {
			rects[i] = Rect{Row: offset, Col: pos, Rows: sizes[i], Cols: extent}
		}
		offset += sizes[i] + gap + between
		// space-between remainder widens the earliest gaps
		if i < extra {
			offset++
		}
	}
	return rects
}

// crossPlacement resolves a child's cross-axis extent and position.
// The explicit override wins when present; otherwise children expose
// no natural extent and every alignment stretches across the box.
func (c *Container) crossPlacement(ch Child, cross int) (extent, pos int) {
	if ch.Cross <= 0 {
		return cross, 0
	}
	extent = min(ch.Cross, cross)
	switch c.AlignItems {
	case AlignCenter:
		pos = (cross - extent) / 2
	case AlignEnd:
		pos = cross - extent
	}
	return extent, pos
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// padLine pads a line with trailing spaces up to width visible
// columns. Lines already at or past the width pass through untouched.
func padLine(s string, width int) string {
	w := visibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// visibleWidth counts the grapheme clusters a terminal would show,
// skipping CSI escape sequences.
func visibleWidth(s string) int {
	if !strings.ContainsRune(s, '\x1b') {
		return uniseg.GraphemeClusterCount(s)
	}
	var plain strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = skipCSI(s, i)
			continue
		}
		plain.WriteByte(s[i])
		i++
	}
	return uniseg.GraphemeClusterCount(plain.String())
}

// skipCSI advances past an ESC [ ... sequence, returning the index of
// the byte after its final byte. A bare ESC advances one byte.
func skipCSI(s string, i int) int {
	j := i + 1
	if j >= len(s) || s[j] != '[' {
		return j
	}
	j++
	for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
		j++
	}
	if j < len(s) {
		j++
	}
	return j
}
