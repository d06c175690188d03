package engine

import (
	"container/heap"
)

// Deferred is an action due at a future simulation tick
type Deferred struct {
	Due    uint64
	Label  string
	Action func()

	seq uint64
}

// deferredHeap orders by due tick, then by scheduling order
type deferredHeap []*Deferred

func (h deferredHeap) Len() int { return len(h) }

func (h deferredHeap) Less(i, j int) bool {
	if h[i].Due != h[j].Due {
		return h[i].Due < h[j].Due
	}
	return h[i].seq < h[j].seq
}

func (h deferredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *deferredHeap) Push(x any) { *h = append(*h, x.(*Deferred)) }

func (h *deferredHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Scheduler is the single deferred-event queue of a world
// Due times are simulation ticks, which only advance while unpaused
type Scheduler struct {
	queue deferredHeap
	seq   uint64
}

// At schedules fn to run once the clock reaches due
func (s *Scheduler) At(due uint64, label string, fn func()) {
	s.seq++
	heap.Push(&s.queue, &Deferred{Due: due, Label: label, Action: fn, seq: s.seq})
}

// RunDue fires every action due at or before now in due order
// Actions scheduled while draining also fire if already due
func (s *Scheduler) RunDue(now uint64) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].Due <= now {
		d := heap.Pop(&s.queue).(*Deferred)
		d.Action()
		fired++
	}
	return fired
}

// NextDue returns the earliest pending due tick
func (s *Scheduler) NextDue() (uint64, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].Due, true
}

// Pending counts scheduled actions with the given label
func (s *Scheduler) Pending(label string) int {
	n := 0
	for _, d := range s.queue {
		if d.Label == label {
			n++
		}
	}
	return n
}

// Len returns the number of pending actions
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Clear drops all pending actions
func (s *Scheduler) Clear() {
	s.queue = nil
	s.seq = 0
}
