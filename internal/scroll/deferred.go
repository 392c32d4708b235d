package scroll

// Deferrer runs a callback once, after the next layout pass has settled.
type Deferrer interface {
	AfterLayout(fn func())
}

// Queue is a Deferrer whose callbacks run when the owner calls Flush after
// laying out. Each callback runs exactly once.
type Queue struct {
	pending []func()
}

// AfterLayout queues fn for the next Flush.
func (q *Queue) AfterLayout(fn func()) {
	if fn != nil {
		q.pending = append(q.pending, fn)
	}
}

// Pending reports whether callbacks are waiting for a layout pass.
func (q *Queue) Pending() bool {
	return len(q.pending) > 0
}

// Flush runs the queued callbacks in order. Callbacks queued while flushing
// wait for the next pass.
func (q *Queue) Flush() {
	pending := q.pending
	q.pending = nil
	for _, fn := range pending {
		fn()
	}
}
