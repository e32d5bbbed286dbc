package engine

// MinRun is the shortest run of identical fruit that clears.
const MinRun = 3

// FindMatches returns every cell that belongs to a horizontal, vertical or
// diagonal run of at least MinRun identical fruits.
//
// A run is only measured from its first cell: a cell whose predecessor in the
// scan direction holds the same kind is skipped, so no run is counted from
// its middle. Empty cells, specials and markers never start or extend a run.
func FindMatches(g *Grid) *CoordSet {
	matches := NewCoordSet(16)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			start := C(x, y)
			kind := g.Get(start)
			if !kind.IsFruit() {
				continue
			}

			for _, d := range matchDirs {
				prev := start.Step(d.Opposite())
				if g.InBounds(prev) && g.Get(prev) == kind {
					continue
				}

				length := 1
				for next := start.Step(d); g.InBounds(next) && g.Get(next) == kind; next = next.Step(d) {
					length++
				}
				if length < MinRun {
					continue
				}

				c := start
				for i := 0; i < length; i++ {
					matches.Add(c)
					c = c.Step(d)
				}
			}
		}
	}

	return matches
}
