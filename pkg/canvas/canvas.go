package canvas

// Canvas is a fixed-size grid of styled cells. It is created with its
// final dimensions; resizing means allocating a new canvas and blitting
// the old content across. A canvas belongs to a single render pass and
// carries no internal synchronization.
type Canvas struct {
	rows  int
	cols  int
	cells [][]Cell
}

// New creates a rows×cols canvas filled with default-style spaces.
// Negative dimensions clamp to zero; a zero-sized canvas is legal and
// ignores all drawing.
func New(rows, cols int) *Canvas {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	c := &Canvas{rows: rows, cols: cols}
	c.cells = make([][]Cell, rows)
	for r := range c.cells {
		row := make([]Cell, cols)
		for i := range row {
			row[i] = EmptyCell()
		}
		c.cells[r] = row
	}
	return c
}

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int {
	return c.cols
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (rows, cols int) {
	return c.rows, c.cols
}

// SetChar places one grapheme at (row, col). Writes outside the grid
// are dropped. An empty grapheme writes a space. This is the
// bounds-checked primitive every other drawing operation builds on.
func (c *Canvas) SetChar(row, col int, g string, style Style) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	if g == "" {
		g = " "
	}
	c.cells[row][col] = Cell{Grapheme: g, Style: style}
}

// Get returns the cell at (row, col), or an empty cell when the
// position is out of bounds.
func (c *Canvas) Get(row, col int) Cell {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return EmptyCell()
	}
	return c.cells[row][col]
}
