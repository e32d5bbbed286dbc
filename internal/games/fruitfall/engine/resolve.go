package engine

// beginClear marks set as exploding and schedules the actual clear after
// the explode delay. Big sets get the big marker.
func (e *Engine) beginClear(set *CoordSet) {
	if set.Len() == 0 {
		e.resolve()
		return
	}

	marker := KindExploding
	if set.Len() >= e.cfg.BigClearSize {
		marker = KindBigExploding
	}
	for _, c := range set.Coords() {
		e.grid.Set(c, marker)
	}

	e.resolving = true
	e.phase = PhaseResolving
	e.sched.schedule(e.elapsed+e.cfg.ExplodeDelay, taskClear, 0)
}

// finishClear removes every exploding cell, awards points, compacts the
// board and rescans.
func (e *Engine) finishClear() {
	n := 0
	for i, k := range e.grid.Cells {
		if k == KindExploding || k == KindBigExploding {
			e.grid.Cells[i] = KindEmpty
			n++
		}
	}

	if n > 0 {
		points := ScoreFor(n)
		big := n >= e.cfg.BigClearSize
		if big {
			points += ScoreFor(n)
		}
		e.emit(Event{Type: EventMatchCleared, Count: n, Points: points})
		if big {
			e.emit(Event{Type: EventBigClear, Count: n, Points: points})
		}
		e.addScore(points)
	}

	e.settle()
	e.resolve()
}

// resolve runs the match detector. Matches start another clear; a stable
// board ends the cascade.
func (e *Engine) resolve() {
	matches := FindMatches(e.grid)
	if matches.Len() > 0 {
		e.beginClear(matches)
		return
	}

	e.resolving = false
	if e.phase == PhaseGameOver {
		return
	}
	if e.col != nil {
		e.phase = PhaseFalling
	} else {
		e.phase = PhaseIdle
	}
}

// settle applies gravity and keeps hazard records attached to their cells.
func (e *Engine) settle() {
	e.hazards.relocate(compact(e.grid))
}
