package engine

// move records one token relocated by gravity.
type move struct {
	from Coord
	to   Coord
}

// ApplyGravity compacts every column toward the bottom row, keeping the
// vertical order of tokens and never moving a token sideways.
// Returns true if any cell moved.
func ApplyGravity(g *Grid) bool {
	return len(compact(g)) > 0
}

// compact performs gravity and returns every relocation it made, so the
// engine can follow hazard anchors and overlays down the board.
func compact(g *Grid) []move {
	var moves []move

	for x := 0; x < g.W; x++ {
		writeY := g.H - 1
		for y := g.H - 1; y >= 0; y-- {
			k := g.Get(C(x, y))
			if k == KindEmpty {
				continue
			}
			if y != writeY {
				g.Set(C(x, writeY), k)
				g.Set(C(x, y), KindEmpty)
				moves = append(moves, move{from: C(x, y), to: C(x, writeY)})
			}
			writeY--
		}
	}

	return moves
}
