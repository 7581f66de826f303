// Package workqueue implements the multi-producer/single-consumer work
// queue that the remote package uses to deliver promise fulfillment and
// broken-promise notifications onto a single consumer goroutine.
//
// A Queue holds two FIFO lanes, out-of-band and normal. Out-of-band items
// enqueued before a Dequeue call returns are always delivered before any
// normal item still waiting at that point; within a lane, enqueue order is
// preserved exactly.
package workqueue
