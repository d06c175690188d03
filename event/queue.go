package event

import (
	"github.com/lixenwraith/orbit-defense/parameter"
)

// EventQueue is a fixed ring buffer between the tick pipeline and the visual sink
// Producer and consumer are the simulation goroutine, no synchronization
// Overflow: oldest events are overwritten and counted in Dropped
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}

// Reset discards pending events and the drop counter
func (eq *EventQueue) Reset() {
	*eq = EventQueue{}
}
