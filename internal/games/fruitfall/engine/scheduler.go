package engine

import (
	"container/heap"
	"time"
)

type taskKind uint8

const (
	taskClear taskKind = iota
	taskArm
	taskTrigger
)

// task is a deferred engine callback, due at an elapsed game time.
// hazard is the hazard id for arm and trigger tasks.
type task struct {
	due    time.Duration
	seq    uint64
	kind   taskKind
	hazard uint64
	gen    uint64
}

type taskHeap []task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// scheduler orders deferred tasks by due time, ties broken by insertion.
// Reset bumps the generation so any task handed out earlier is recognizable
// as stale.
type scheduler struct {
	tasks taskHeap
	seq   uint64
	gen   uint64
}

func (s *scheduler) schedule(due time.Duration, kind taskKind, hazard uint64) {
	s.seq++
	heap.Push(&s.tasks, task{due: due, seq: s.seq, kind: kind, hazard: hazard, gen: s.gen})
}

// popDue removes and returns the earliest task due at or before now.
func (s *scheduler) popDue(now time.Duration) (task, bool) {
	for len(s.tasks) > 0 && s.tasks[0].due <= now {
		t := heap.Pop(&s.tasks).(task)
		if t.gen != s.gen {
			continue
		}
		return t, true
	}
	return task{}, false
}

// requeue puts a postponed task back with its original ordering key.
func (s *scheduler) requeue(t task) {
	heap.Push(&s.tasks, t)
}

func (s *scheduler) reset() {
	s.gen++
	s.tasks = s.tasks[:0]
}

func (s *scheduler) pending() int {
	return len(s.tasks)
}
