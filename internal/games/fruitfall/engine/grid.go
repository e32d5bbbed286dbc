package engine

// Grid is the settled board. Cells are stored row-major: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Kind
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Kind, w*h),
	}
}

// GridFromRows builds a grid from rows listed top to bottom.
// All rows must have the same length.
func GridFromRows(rows [][]Kind) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, k := range row {
			g.Set(C(x, y), k)
		}
	}
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell content, or KindEmpty when out of bounds.
func (g *Grid) Get(c Coord) Kind {
	if !g.InBounds(c) {
		return KindEmpty
	}
	return g.Cells[g.index(c)]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, k Kind) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = k
	}
}

// Occupied returns true if the cell holds anything at all.
func (g *Grid) Occupied(c Coord) bool {
	return g.Get(c) != KindEmpty
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = KindEmpty
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Kind, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal returns true if both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, k := range g.Cells {
		if k != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells satisfy pred.
func (g *Grid) Count(pred func(Kind) bool) int {
	n := 0
	for _, k := range g.Cells {
		if pred(k) {
			n++
		}
	}
	return n
}

// FilledCount returns the number of non-empty cells.
func (g *Grid) FilledCount() int {
	return g.Count(func(k Kind) bool { return k != KindEmpty })
}

// Find returns every coordinate holding kind k, in row-major order.
func (g *Grid) Find(k Kind) []Coord {
	var coords []Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Cells[y*g.W+x] == k {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// Rows returns a copy of the grid as rows, top to bottom.
func (g *Grid) Rows() [][]Kind {
	rows := make([][]Kind, g.H)
	for y := range rows {
		rows[y] = make([]Kind, g.W)
		copy(rows[y], g.Cells[y*g.W:(y+1)*g.W])
	}
	return rows
}
