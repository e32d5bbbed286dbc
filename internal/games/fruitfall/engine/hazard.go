package engine

import (
	"time"

	"github.com/kamstrup/intmap"
)

// hazard is an in-flight delayed effect. The anchor cell must still hold
// kind when the hazard arms and when it triggers; otherwise it cancels.
//
// affected lists the cells the hazard overlaid (poop: soiled neighbors,
// freeze: frozen cells). remembered holds the original kinds of a poop
// overlay, index-aligned with affected.
type hazard struct {
	id         uint64
	kind       Kind
	anchor     Coord
	affected   []Coord
	remembered []Kind
	armAt      time.Duration
	triggerAt  time.Duration
	armed      bool
}

// HazardView is the read-only form of a pending hazard.
type HazardView struct {
	Kind      Kind
	Anchor    Coord
	Armed     bool
	ArmAt     time.Duration
	TriggerAt time.Duration
	Affected  int
}

// hazardTable keys pending hazards by anchor cell and by id, and keeps
// creation order for stable snapshots.
type hazardTable struct {
	byAnchor *intmap.Map[uint32, *hazard]
	ids      *intmap.Map[uint64, *hazard]
	list     []*hazard
}

func newHazardTable() *hazardTable {
	return &hazardTable{
		byAnchor: intmap.New[uint32, *hazard](8),
		ids:      intmap.New[uint64, *hazard](8),
	}
}

// put stores h and returns the hazard it displaced at the same anchor, if any.
func (t *hazardTable) put(h *hazard) *hazard {
	key := packCoord(h.anchor)
	old, ok := t.byAnchor.Get(key)
	if ok {
		t.drop(old)
	}
	t.byAnchor.Put(key, h)
	t.ids.Put(h.id, h)
	t.list = append(t.list, h)
	if ok {
		return old
	}
	return nil
}

// drop removes h from the table. It is a no-op for unknown hazards.
func (t *hazardTable) drop(h *hazard) {
	for i, other := range t.list {
		if other != h {
			continue
		}
		t.list = append(t.list[:i], t.list[i+1:]...)
		t.ids.Del(h.id)
		key := packCoord(h.anchor)
		if cur, ok := t.byAnchor.Get(key); ok && cur == h {
			t.byAnchor.Del(key)
		}
		return
	}
}

func (t *hazardTable) lookup(id uint64) *hazard {
	h, _ := t.ids.Get(id)
	return h
}

func (t *hazardTable) at(c Coord) *hazard {
	h, _ := t.byAnchor.Get(packCoord(c))
	return h
}

func (t *hazardTable) len() int {
	return len(t.list)
}

// relocate follows gravity moves so anchors and overlays keep pointing at
// the tokens they were attached to.
func (t *hazardTable) relocate(moves []move) {
	if len(moves) == 0 || len(t.list) == 0 {
		return
	}

	dest := intmap.New[uint32, Coord](len(moves))
	for _, m := range moves {
		dest.Put(packCoord(m.from), m.to)
	}
	follow := func(c Coord) Coord {
		if to, ok := dest.Get(packCoord(c)); ok {
			return to
		}
		return c
	}

	t.byAnchor = intmap.New[uint32, *hazard](len(t.list))
	for _, h := range t.list {
		h.anchor = follow(h.anchor)
		for i, c := range h.affected {
			h.affected[i] = follow(c)
		}
		t.byAnchor.Put(packCoord(h.anchor), h)
	}
}

func (t *hazardTable) reset() {
	t.byAnchor = intmap.New[uint32, *hazard](8)
	t.ids = intmap.New[uint64, *hazard](8)
	t.list = nil
}

func (t *hazardTable) views() []HazardView {
	if len(t.list) == 0 {
		return nil
	}
	out := make([]HazardView, len(t.list))
	for i, h := range t.list {
		out[i] = HazardView{
			Kind:      h.kind,
			Anchor:    h.anchor,
			Armed:     h.armed,
			ArmAt:     h.armAt,
			TriggerAt: h.triggerAt,
			Affected:  len(h.affected),
		}
	}
	return out
}

// addHazard registers a delayed effect anchored at at and schedules its arm
// and trigger tasks. A hazard already anchored there is cancelled.
func (e *Engine) addHazard(at Coord, k Kind, affected []Coord, remembered []Kind) {
	timing := e.cfg.Hazards[k]
	e.hazardSeq++
	h := &hazard{
		id:         e.hazardSeq,
		kind:       k,
		anchor:     at,
		affected:   affected,
		remembered: remembered,
		armAt:      e.elapsed + timing.Arm,
		triggerAt:  e.elapsed + timing.Trigger,
	}

	if old := e.hazards.put(h); old != nil {
		e.cancelHazard(old)
	}
	e.sched.schedule(h.armAt, taskArm, h.id)
	e.sched.schedule(h.triggerAt, taskTrigger, h.id)
}

func (e *Engine) armHazard(id uint64) {
	h := e.hazards.lookup(id)
	if h == nil || h.armed {
		return
	}
	if e.grid.Get(h.anchor) != h.kind {
		e.cancelHazard(h)
		return
	}
	h.armed = true
	e.emit(Event{Type: EventHazardArmed, Kind: h.kind, At: h.anchor})
}

// cancelHazard drops h silently. A poop overlay is lifted so no soiled
// cell outlives its anchor.
func (e *Engine) cancelHazard(h *hazard) {
	e.hazards.drop(h)
	if h.kind == KindPoop {
		e.restoreOverlay(h)
	}
}

// triggerHazard resolves h: the anchor and its overlays leave the board,
// then gravity and a rescan follow. Hazards award no points.
func (e *Engine) triggerHazard(id uint64) {
	h := e.hazards.lookup(id)
	if h == nil {
		return
	}
	if e.grid.Get(h.anchor) != h.kind {
		e.cancelHazard(h)
		return
	}
	e.hazards.drop(h)

	switch h.kind {
	case KindPoop:
		e.restoreOverlay(h)
	case KindFreeze:
		for _, c := range h.affected {
			if e.grid.Get(c) == KindFrozen {
				e.grid.Set(c, KindEmpty)
			}
		}
	}
	e.grid.Set(h.anchor, KindEmpty)
	e.emit(Event{Type: EventHazardResolved, Kind: h.kind, At: h.anchor, Count: len(h.affected)})

	e.settle()
	e.resolve()
}

// restoreOverlay puts back every soiled cell of a poop hazard. Kinds that
// left the palette since are resampled.
func (e *Engine) restoreOverlay(h *hazard) {
	for i, c := range h.affected {
		if e.grid.Get(c) != KindSoiled {
			continue
		}
		k := h.remembered[i]
		if !e.allowed(k) {
			k = e.randomFruit()
		}
		e.grid.Set(c, k)
	}
}
