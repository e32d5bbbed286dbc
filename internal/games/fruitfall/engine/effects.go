package engine

// dispatch applies the special at the given cell. Immediate clears are
// returned for the resolution loop; transforms and hazards act in place and
// return an empty set.
func (e *Engine) dispatch(at Coord) *CoordSet {
	k := e.grid.Get(at)

	switch k {
	case KindBomb:
		return bombTargets(e.grid, at)
	case KindGun:
		return gunTargets(e.grid, at, e.cfg.GunDir)
	case KindArrow:
		return arrowTargets(e.grid, at, e.cfg.ArrowDir)
	case KindFire:
		return fireTargets(e.grid, at)
	case KindClown:
		e.scramble(at)
	case KindSkull:
		e.addHazard(at, KindSkull, nil, nil)
	case KindPoop:
		e.soil(at)
	case KindFreeze:
		e.freeze(at)
	}
	return nil
}

// bombTargets clears the bomb and every cell sharing the fruit kind directly
// below it. Over anything else the bomb only removes itself.
func bombTargets(g *Grid, at Coord) *CoordSet {
	set := NewCoordSet(16)
	set.Add(at)

	below := g.Get(at.Step(DirDown))
	if !below.IsFruit() {
		return set
	}
	for _, c := range g.Find(below) {
		set.Add(c)
	}
	return set
}

// gunTargets clears the gun and the contiguous run of occupied non-hazard
// cells next to it in direction d.
func gunTargets(g *Grid, at Coord, d Dir) *CoordSet {
	set := NewCoordSet(g.W)
	set.Add(at)

	for c := at.Step(d); g.InBounds(c); c = c.Step(d) {
		k := g.Get(c)
		if k == KindEmpty || k.IsHazard() {
			break
		}
		set.Add(c)
	}
	return set
}

// arrowTargets clears the arrow and every occupied non-hazard cell on the
// diagonal ray in direction d, up to the edge of the board.
func arrowTargets(g *Grid, at Coord, d Dir) *CoordSet {
	set := NewCoordSet(g.H)
	set.Add(at)

	for c := at.Step(d); g.InBounds(c); c = c.Step(d) {
		k := g.Get(c)
		if k != KindEmpty && !k.IsHazard() {
			set.Add(c)
		}
	}
	return set
}

// fireTargets clears the fire and its occupied, non-special neighbors.
func fireTargets(g *Grid, at Coord) *CoordSet {
	set := NewCoordSet(9)
	set.Add(at)

	for _, d := range neighborDirs {
		c := at.Step(d)
		k := g.Get(c)
		if k != KindEmpty && !k.IsInert() {
			set.Add(c)
		}
	}
	return set
}

// scramble turns the clown and its occupied non-special neighbors into new
// fruit, each different from what the cell held before.
func (e *Engine) scramble(at Coord) {
	e.grid.Set(at, e.randomFruitExcept(KindClown))

	for _, d := range neighborDirs {
		c := at.Step(d)
		k := e.grid.Get(c)
		if k == KindEmpty || k.IsInert() {
			continue
		}
		e.grid.Set(c, e.randomFruitExcept(k))
	}
}

// soil overlays the poop's occupied non-special neighbors and remembers what
// they were so the cleanup can put them back.
func (e *Engine) soil(at Coord) {
	var affected []Coord
	var remembered []Kind

	for _, d := range neighborDirs {
		c := at.Step(d)
		k := e.grid.Get(c)
		if k == KindEmpty || k.IsInert() {
			continue
		}
		affected = append(affected, c)
		remembered = append(remembered, k)
		e.grid.Set(c, KindSoiled)
	}

	e.addHazard(at, KindPoop, affected, remembered)
}

// freeze covers every cell of the freeze's row and all rows below it. Frozen
// cells are not restorable; the cleanup removes them.
func (e *Engine) freeze(at Coord) {
	var affected []Coord

	for y := at.Y; y < e.grid.H; y++ {
		for x := 0; x < e.grid.W; x++ {
			c := C(x, y)
			if c == at {
				continue
			}
			e.grid.Set(c, KindFrozen)
			affected = append(affected, c)
		}
	}

	e.addHazard(at, KindFreeze, affected, nil)
}
