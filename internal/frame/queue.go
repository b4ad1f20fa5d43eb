package frame

type request struct {
	handle Handle
	cb     Callback
}

// Queue is a Scheduler flushed by its host once per frame. Callbacks
// requested while a flush runs are deferred to the following flush, so a
// callback that re-requests itself runs exactly once per frame.
//
// Queue is not safe for concurrent use. Hosts request, cancel and flush from
// their frame goroutine.
type Queue struct {
	next    Handle
	pending []request

	// handles of the batch being flushed that were cancelled mid-flush
	flushing  bool
	cancelled map[Handle]bool
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{cancelled: make(map[Handle]bool)}
}

// Request schedules cb for the next flush.
func (q *Queue) Request(cb Callback) Handle {
	q.next++
	q.pending = append(q.pending, request{handle: q.next, cb: cb})
	return q.next
}

// Cancel drops a pending callback. Unknown or spent handles are ignored.
func (q *Queue) Cancel(h Handle) {
	for i, r := range q.pending {
		if r.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	if q.flushing {
		q.cancelled[h] = true
	}
}

// Len reports the number of pending callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Flush runs the callbacks pending at the time of the call and returns how
// many ran. A callback cancelled by an earlier one in the same flush is
// skipped.
func (q *Queue) Flush() int {
	batch := q.pending
	q.pending = nil
	q.flushing = true
	defer func() {
		q.flushing = false
		clear(q.cancelled)
	}()

	ran := 0
	for _, r := range batch {
		if q.cancelled[r.handle] {
			continue
		}
		r.cb()
		ran++
	}
	return ran
}
