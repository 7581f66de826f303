// Package remote implements the cross-goroutine bridge between a producer
// goroutine holding a Promise[T] and a consumer goroutine holding the
// matching RemoteOperation[T], joined through a workqueue.Queue.
//
// A Promise[T] is fulfilled at most once. Fulfillment enqueues a closure
// that, when the consumer eventually drains the queue, writes the result
// onto the RemoteOperation[T] if it is still reachable. A promise dropped
// while still needed synthesizes a broken-promise exception through the
// same delivery path; a remote dropped before fulfillment marks its promise
// no longer needed, so a producer polling StillNeeded can cancel early.
package remote
