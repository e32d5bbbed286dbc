package engine

// ColumnLen is the number of tokens in a falling column.
const ColumnLen = 3

// Column is the falling piece: three stacked tokens, top first.
// TopY may be negative while part of the column is above the grid.
type Column struct {
	X     int
	TopY  int
	Cells [ColumnLen]Kind
}

// Rotate shifts the tokens cyclically: [top, mid, bot] becomes [bot, top, mid].
func (c Column) Rotate() Column {
	c.Cells = [ColumnLen]Kind{c.Cells[2], c.Cells[0], c.Cells[1]}
	return c
}

// Coord returns the grid position of slot i (0 is the top).
func (c Column) Coord(i int) Coord {
	return C(c.X, c.TopY+i)
}

// BottomY returns the row of the bottom token.
func (c Column) BottomY() int {
	return c.TopY + ColumnLen - 1
}

// fits reports whether the column could occupy x/topY on g.
// Rows above the grid are never checked against settled cells.
func (c Column) fits(g *Grid, x, topY int) bool {
	if x < 0 || x >= g.W {
		return false
	}
	for i := 0; i < ColumnLen; i++ {
		y := topY + i
		if y < 0 {
			continue
		}
		if y >= g.H || g.Occupied(C(x, y)) {
			return false
		}
	}
	return true
}

// CanMoveDown reports whether the column can fall one row.
func (c Column) CanMoveDown(g *Grid) bool {
	return c.fits(g, c.X, c.TopY+1)
}

// CanMoveLeft reports whether the column can shift one cell left.
func (c Column) CanMoveLeft(g *Grid) bool {
	return c.fits(g, c.X-1, c.TopY)
}

// CanMoveRight reports whether the column can shift one cell right.
func (c Column) CanMoveRight(g *Grid) bool {
	return c.fits(g, c.X+1, c.TopY)
}
