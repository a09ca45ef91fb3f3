package midi

import (
	"cmp"
	"slices"
)

// EventQueue collects the events of one processing block and hands them
// out ordered by sample offset. Events with equal offsets keep their
// insertion order.
//
// A queue belongs to the goroutine rendering the block and is not safe for
// concurrent use. Events from other goroutines go through
// soyboy.Controller.
type EventQueue struct {
	events []Event
	sorted bool
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]Event, 0, 128),
		sorted: true,
	}
}

func (q *EventQueue) Add(event Event) {
	q.events = append(q.events, event)
	q.sorted = false
}

// Events returns the queued events sorted by offset. The slice is owned by
// the queue and is valid until the next Add or Clear.
func (q *EventQueue) Events() []Event {
	if !q.sorted {
		slices.SortStableFunc(q.events, func(a, b Event) int {
			return cmp.Compare(a.SampleOffset(), b.SampleOffset())
		})
		q.sorted = true
	}
	return q.events
}

func (q *EventQueue) Clear() {
	q.events = q.events[:0]
	q.sorted = true
}

func (q *EventQueue) Size() int {
	return len(q.events)
}

func (q *EventQueue) IsEmpty() bool {
	return len(q.events) == 0
}
