package flex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizeRecorder returns a blank renderer that appends each allotted
// size to the slice, so tests can assert final allocations and that
// callbacks fire exactly once per child.
func sizeRecorder(got *[]Size) RenderFunc {
	return func(size Size) string {
		*got = append(*got, size)
		return ""
	}
}

func TestRowAllocation(t *testing.T) {
	var got []Size
	c := Container{
		Direction: Row,
		Children: []Child{
			{Basis: Px(10), Render: sizeRecorder(&got)},
			{Basis: Percent(30), Render: sizeRecorder(&got)},
			{Basis: Ratio(2), Render: sizeRecorder(&got)},
			{Basis: Fill(), Render: sizeRecorder(&got)},
		},
	}
	c.Render(Size{Rows: 1, Cols: 100})

	require.Len(t, got, 4)
	widths := []int{got[0].Cols, got[1].Cols, got[2].Cols, got[3].Cols}
	assert.Equal(t, []int{10, 30, 40, 20}, widths)
}

func TestPercentUsesOriginalExtent(t *testing.T) {
	var got []Size
	c := Container{
		Direction: Row,
		Children: []Child{
			{Basis: Px(50), Render: sizeRecorder(&got)},
			{Basis: Percent(60), Render: sizeRecorder(&got)},
		},
	}
	c.Render(Size{Rows: 1, Cols: 100})

	require.Len(t, got, 2)
	// percent computes 60 against the original 100, then clamps to
	// the 50 actually left
	assert.Equal(t, 50, got[0].Cols)
	assert.Equal(t, 50, got[1].Cols)
}

func TestOverSubscriptionDegradesToZero(t *testing.T) {
	var got []Size
	c := Container{
		Direction: Row,
		Children: []Child{
			{Basis: Percent(50), Render: sizeRecorder(&got)},
			{Basis: Percent(50), Render: sizeRecorder(&got)},
			{Basis: Percent(50), Render: sizeRecorder(&got)},
			{Basis: Ratio(1), Render: sizeRecorder(&got)},
		},
	}
	c.Render(Size{Rows: 1, Cols: 100})

	require.Len(t, got, 4)
	assert.Equal(t, []int{50, 50, 0, 0}, []int{got[0].Cols, got[1].Cols, got[2].Cols, got[3].Cols})
}

func TestRoundingRemainderGoesToLastChild(t *testing.T) {
	var got []Size
	c := Container{
		Direction: Row,
		Children: []Child{
			{Basis: Ratio(1), Render: sizeRecorder(&got)},
			{Basis: Ratio(1), Render: sizeRecorder(&got)},
			{Basis: Ratio(1), Render: sizeRecorder(&got)},
		},
	}
	c.Render(Size{Rows: 1, Cols: 10})

	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 3, 4}, []int{got[0].Cols, got[1].Cols, got[2].Cols})
	assert.Equal(t, 10, got[0].Cols+got[1].Cols+got[2].Cols, "no drift")
}

func TestGapsBetweenChildrenOnly(t *testing.T) {
	a := func(size Size) string { return strings.Repeat("A", size.Cols) }
	b := func(size Size) string { return strings.Repeat("B", size.Cols) }

	c := Container{
		Direction: Row,
		Gap:       Gap{Horizontal: 2},
		Children: []Child{
			{Basis: Px(3), Render: a},
			{Basis: Px(3), Render: b},
		},
	}
	out := c.Render(Size{Rows: 1, Cols: 10})
	assert.Equal(t, "AAA  BBB  ", out)
}

func TestColumnDirection(t *testing.T) {
	line := func(g string) RenderFunc {
		return func(size Size) string { return strings.Repeat(g, size.Cols) }
	}
	c := Container{
		Direction: Column,
		Gap:       Gap{Vertical: 1},
		Children: []Child{
			{Basis: Px(1), Render: line("A")},
			{Basis: Px(1), Render: line("B")},
		},
	}
	out := c.Render(Size{Rows: 4, Cols: 2})
	assert.Equal(t, "AA\n  \nBB\n  ", out)
}

func TestJustify(t *testing.T) {
	child := func(g string, n int) Child {
		return Child{
			Basis:  Px(n),
			Render: func(size Size) string { return strings.Repeat(g, size.Cols) },
		}
	}

	tests := []struct {
		name    string
		justify Justify
		kids    []Child
		want    string
	}{
		{"start anchors the run", JustifyStart, []Child{child("A", 4)}, "AAAA      "},
		{"end flushes right", JustifyEnd, []Child{child("A", 4)}, "      AAAA"},
		{"center splits leftover", JustifyCenter, []Child{child("A", 4)}, "   AAAA   "},
		{"space between two children", JustifySpaceBetween, []Child{child("A", 2), child("B", 2)}, "AA      BB"},
		{"space between single child acts like start", JustifySpaceBetween, []Child{child("A", 4)}, "AAAA      "},
		{
			"space between remainder widens earliest gaps",
			JustifySpaceBetween,
			[]Child{child("A", 2), child("B", 2), child("C", 2)},
			"AA   BB  CC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Container{Direction: Row, Justify: tt.justify, Children: tt.kids}
			out := c.Render(Size{Rows: 1, Cols: len(tt.want)})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPadding(t *testing.T) {
	var got []Size
	c := Container{
		Direction: Row,
		Padding:   Insets{Top: 1, Left: 2},
		Children: []Child{
			{Basis: Fill(), Render: func(size Size) string {
				got = append(got, size)
				return "abcd\nefgh"
			}},
		},
	}
	out := c.Render(Size{Rows: 3, Cols: 6})

	require.Len(t, got, 1)
	assert.Equal(t, Size{Rows: 2, Cols: 4}, got[0])
	assert.Equal(t, "      \n  abcd\n  efgh", out)
}

func TestCrossOverrideAndAlignment(t *testing.T) {
	child := Child{
		Basis: Px(2),
		Cross: 2,
		Render: func(size Size) string {
			return "ab\ncd"
		},
	}

	tests := []struct {
		name  string
		align Align
		want  string
	}{
		{"start", AlignStart, "ab  \ncd  \n    \n    "},
		{"center", AlignCenter, "    \nab  \ncd  \n    "},
		{"end", AlignEnd, "    \n    \nab  \ncd  "},
		{"stretch keeps the override", AlignStretch, "ab  \ncd  \n    \n    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Container{Direction: Row, AlignItems: tt.align, Children: []Child{child}}
			out := c.Render(Size{Rows: 4, Cols: 4})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNoCrossOverrideStretches(t *testing.T) {
	var got []Size
	c := Container{
		Direction:  Row,
		AlignItems: AlignCenter,
		Children:   []Child{{Basis: Fill(), Render: sizeRecorder(&got)}},
	}
	c.Render(Size{Rows: 5, Cols: 8})

	require.Len(t, got, 1)
	// without a natural extent, alignment degrades to stretch
	assert.Equal(t, Size{Rows: 5, Cols: 8}, got[0])
}

func TestZeroChildren(t *testing.T) {
	c := Container{Direction: Row}
	out := c.Render(Size{Rows: 5, Cols: 20})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat(" ", 20), line)
	}
}

func TestDegenerateSize(t *testing.T) {
	var got []Size
	c := Container{
		Direction: Column,
		Children: []Child{
			{Basis: Px(3), Render: sizeRecorder(&got)},
			{Basis: Fill(), Render: sizeRecorder(&got)},
		},
	}
	out := c.Render(Size{Rows: 0, Cols: 0})

	assert.Equal(t, "", out)
	require.Len(t, got, 2, "render fires exactly once per child even at zero size")
	for _, s := range got {
		assert.Equal(t, Size{}, s)
	}
}

func TestStyledLinesPadByVisibleWidth(t *testing.T) {
	c := Container{
		Direction: Row,
		Children: []Child{
			{Basis: Px(1), Render: func(size Size) string { return "\x1b[0;1mX\x1b[0m" }},
			{Basis: Px(1), Render: func(size Size) string { return "Y" }},
		},
	}
	out := c.Render(Size{Rows: 1, Cols: 4})
	assert.Equal(t, "\x1b[0;1mX\x1b[0mY  ", out)
}

func TestNilRenderIsBlank(t *testing.T) {
	c := Container{
		Direction: Row,
		Children:  []Child{{Basis: Fill()}},
	}
	out := c.Render(Size{Rows: 1, Cols: 3})
	assert.Equal(t, "   ", out)
}

func TestShortChildOutputStillAdvances(t *testing.T) {
	c := Container{
		Direction: Row,
		Children: []Child{
			// returns fewer lines and narrower lines than allotted
			{Basis: Px(3), Render: func(size Size) string { return "a" }},
			{Basis: Px(3), Render: func(size Size) string { return "bbb\nccc" }},
		},
	}
	out := c.Render(Size{Rows: 2, Cols: 6})
	assert.Equal(t, "a  bbb\n   ccc", out)
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"\x1b[0;31mred\x1b[0m", 3},
		{"\x1b[38;5;42mx", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, visibleWidth(tt.in), "input %q", tt.in)
	}
}
