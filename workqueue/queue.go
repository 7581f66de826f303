package workqueue

import "context"

// enqueueOptions collects the settings EnqueueOption values apply.
type enqueueOptions struct {
	outOfBand bool
}

// EnqueueOption configures a single Enqueue call.
type EnqueueOption func(*enqueueOptions)

// OutOfBand routes an enqueued item to the out-of-band lane, which is
// always drained ahead of the normal lane.
func OutOfBand() EnqueueOption {
	return func(o *enqueueOptions) { o.outOfBand = true }
}

// Queue is a multi-producer/single-consumer work queue with two FIFO
// lanes. The zero Queue is ready to use.
//
// A Queue must not be copied after first use, and must have at most one
// concurrent Dequeue/TryDequeue caller at a time — delivering to two
// consumers concurrently is undefined, matching the single-consumer
// contract the rest of Sparkles relies on.
type Queue struct {
	free   freeList
	oob    lane
	normal lane
	event  countingEvent
}

// Enqueue appends item to the normal lane, or to the out-of-band lane if
// OutOfBand() is passed. It never blocks.
func (q *Queue) Enqueue(item func(), opts ...EnqueueOption) {
	var o enqueueOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := q.free.get()
	n.work = item
	if o.outOfBand {
		q.oob.push(n)
	} else {
		q.normal.push(n)
	}
	q.event.increment()
}

// Dequeue blocks until an item is available or ctx is done, returning
// (nil, false) in the latter case.
func (q *Queue) Dequeue(ctx context.Context) (func(), bool) {
	if !q.event.waitUntilPositive(ctx) {
		return nil, false
	}
	return q.popOne()
}

// TryDequeue returns immediately, with ok false if both lanes are empty.
func (q *Queue) TryDequeue() (func(), bool) {
	if !q.event.decrementIfPositive() {
		return nil, false
	}
	return q.popOne()
}

// popOne assumes the counting event has already accounted for one
// available item and drains the out-of-band lane ahead of the normal lane.
func (q *Queue) popOne() (func(), bool) {
	n := q.oob.pop()
	if n == nil {
		n = q.normal.pop()
	}
	if n == nil {
		// The counting event and the lanes disagree, which would mean an
		// Enqueue incremented the event without having pushed a node yet;
		// push happens strictly before increment, so this cannot happen.
		return nil, false
	}
	item := n.work
	q.free.put(n)
	return item, true
}
