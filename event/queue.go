package event

import "sync"

// Queue is a FIFO buffer of events
// Producers push during a tick; the game loop consumes after the tick completes
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
