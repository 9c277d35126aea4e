package tetris

// SpawnRequested asks the spawner for a new piece.
type SpawnRequested struct{}

// GameOver reports that a locked cell sits above the visible rows.
type GameOver struct{}

// Queue holds events produced earlier in the current tick until a later step
// drains them. Nothing is carried across ticks unless a producer runs after
// its consumer.
type Queue[T any] struct {
	pending []T
}

// Send appends an event.
func (q *Queue[T]) Send(ev T) {
	q.pending = append(q.pending, ev)
}

// Drain returns all pending events and empties the queue.
func (q *Queue[T]) Drain() []T {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	return len(q.pending)
}
