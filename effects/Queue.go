package effects

// MaxPending is the default number of flashes a Queue holds before it
// starts dropping the oldest
const MaxPending = 4

// Queue holds pending effect requests in the order they were pushed.
// A Queue holds at most a fixed number of flashes; pushing onto a full
// queue drops the oldest pending flash, so an undrained queue never
// grows past its capacity.
type Queue struct {
	pending  []*Flash
	capacity int
}

// NewQueue returns a new, empty Queue holding at most capacity flashes.
// A non-positive capacity uses MaxPending.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = MaxPending
	}
	return &Queue{
		pending:  make([]*Flash, 0, capacity),
		capacity: capacity,
	}
}

// Push adds a flash to the back of the queue, dropping the oldest
// pending flash if the queue is full
func (q *Queue) Push(f *Flash) {
	if len(q.pending) == q.capacity {
		copy(q.pending, q.pending[1:])
		q.pending = q.pending[:len(q.pending)-1]
	}
	q.pending = append(q.pending, f)
}

// Drain removes and returns all pending flashes, oldest first
func (q *Queue) Drain() []*Flash {
	drained := make([]*Flash, len(q.pending))
	copy(drained, q.pending)
	q.pending = q.pending[:0]
	return drained
}

// Len returns the number of pending flashes
func (q *Queue) Len() int {
	return len(q.pending)
}

// Cap returns the maximum number of pending flashes
func (q *Queue) Cap() int {
	return q.capacity
}
