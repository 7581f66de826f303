package remote

import (
	"github.com/sparkles-go/sparkles/operation"
	"github.com/sparkles-go/sparkles/workqueue"
)

// RemoteOperation[T] is the consumer-side half of the bridge: a
// dependency-free operation.Operation[T] whose result is written only by
// closures delivered through the queue it shares with its Promise.
type RemoteOperation[T any] struct {
	*operation.Operation[T]
	set operation.Setter[T]
}

// New creates a linked RemoteOperation[T]/Promise[T] pair bound to q. The
// remote belongs to the calling goroutine; the promise is safe to hand to a
// producer on any other goroutine.
func New[T any](q *workqueue.Queue) (*RemoteOperation[T], *Promise[T]) {
	op, set := operation.NewLeaf[T]()
	remote := &RemoteOperation[T]{Operation: op, set: set}
	return remote, newPromise(remote, q)
}
