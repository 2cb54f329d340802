package flex

// Size is a region extent in terminal cells.
type Size struct {
	Rows, Cols int
}

// Rect is a child's allotted region, positioned inside its container.
type Rect struct {
	Row, Col   int
	Rows, Cols int
}

// Size returns the rect's extent.
func (r Rect) Size() Size {
	return Size{Rows: r.Rows, Cols: r.Cols}
}

// Insets reserve space inside a container's edges before layout.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Gap is the blank space inserted between adjacent children.
// Horizontal applies along a Row container's main axis, Vertical along
// a Column's.
type Gap struct {
	Horizontal, Vertical int
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
