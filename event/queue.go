package event

// Queue collects events emitted during one tick
// Single producer and consumer: the game loop
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}
