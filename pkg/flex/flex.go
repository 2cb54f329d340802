// Package flex arranges child renderers inside a terminal region using
// flex-box sizing rules. The engine works purely on geometry and the
// text children return for their allotted rectangles; it never touches
// individual cells.
package flex

// Direction selects a container's main axis.
type Direction int

const (
	// Row lays children out left to right; the main axis is columns.
	Row Direction = iota
	// Column lays children out top to bottom; the main axis is rows.
	Column
)

// Align positions children on the cross axis. Without an explicit
// cross-axis override a child exposes no natural extent, so every
// alignment degrades to stretch.
type Align int

const (
	AlignStretch Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// Justify distributes leftover main-axis space once every child has
// its allocation.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	// JustifySpaceBetween spreads leftover strictly between children,
	// never before the first or after the last. A single child behaves
	// like JustifyStart.
	JustifySpaceBetween
)

type basisKind int

const (
	basisFill basisKind = iota
	basisPx
	basisPercent
	basisRatio
)

// Basis declares how a child claims main-axis space. Construct one
// with Px, Percent, Ratio, or Fill; the zero value behaves as Fill.
type Basis struct {
	kind  basisKind
	value int
}

// Px claims a fixed number of main-axis cells, clamped to what remains.
func Px(n int) Basis {
	return Basis{kind: basisPx, value: n}
}

// Percent claims a rounded percentage of the content box's original
// main-axis extent, so sibling percentages never observe each other's
// consumption.
func Percent(p int) Basis {
	return Basis{kind: basisPercent, value: p}
}

// Ratio shares the space left after fixed claims, weighted against the
// other Ratio and Fill children. Negative weights count as zero.
func Ratio(weight int) Basis {
	return Basis{kind: basisRatio, value: weight}
}

// Fill shares remaining space with weight 1.
func Fill() Basis {
	return Basis{kind: basisFill}
}

func (b Basis) flexible() bool {
	return b.kind == basisRatio || b.kind == basisFill
}

func (b Basis) weight() int {
	switch b.kind {
	case basisFill:
		return 1
	case basisRatio:
		return max(0, b.value)
	default:
		return 0
	}
}

// RenderFunc produces a child's text for its allotted size. The text
// is assumed already fitted; the engine neither truncates nor wraps
// it. The function must tolerate a zero size.
type RenderFunc func(size Size) string

// Child pairs a renderer with its sizing rules. Cross, when positive,
// overrides the cross-axis extent that alignment would otherwise pick.
type Child struct {
	Render RenderFunc
	Basis  Basis
	Cross  int
}

// Container lays children out along one axis. It is stateless: each
// Render call computes the layout from scratch.
type Container struct {
	Direction  Direction
	Gap        Gap
	Padding    Insets
	AlignItems Align
	Justify    Justify
	Children   []Child
}
