package remote

import (
	"runtime"
	"sync/atomic"
	"weak"

	"github.com/pkg/errors"

	"github.com/sparkles-go/sparkles/result"
	"github.com/sparkles-go/sparkles/workqueue"
)

const (
	unfulfilledNeeded int32 = iota
	unfulfilledAbandoned
	fulfilled
)

// promiseCore holds everything a Promise[T]'s cleanup callback needs. It is
// held only through runtime.AddCleanup's arg parameter, never through a
// closure over the Promise itself — closing over the Promise would keep it
// reachable forever and the cleanup would never fire.
type promiseCore[T any] struct {
	remote weak.Pointer[RemoteOperation[T]]
	queue  *workqueue.Queue
	state  atomic.Int32
}

// Promise[T] is the producer-side half of the bridge. It is fulfilled at
// most once; see SetResult, SetBadResultError, SetBadResultException.
type Promise[T any] struct {
	core *promiseCore[T]
}

func newPromise[T any](remote *RemoteOperation[T], q *workqueue.Queue) *Promise[T] {
	core := &promiseCore[T]{
		remote: weak.Make(remote),
		queue:  q,
	}
	p := &Promise[T]{core: core}

	runtime.AddCleanup(p, brokenPromiseCleanup[T], core)
	runtime.AddCleanup(remote, abandonPromiseCleanup[T], core)

	return p
}

// brokenPromiseCleanup fires when the Promise itself becomes unreachable.
// If it was still needed, it synthesizes ErrBrokenPromise and enqueues the
// delivery closure; any failure to do so is swallowed, since a cleanup must
// never panic outward.
func brokenPromiseCleanup[T any](core *promiseCore[T]) {
	if !core.state.CompareAndSwap(unfulfilledNeeded, fulfilled) {
		return
	}
	exc := errors.WithStack(ErrBrokenPromise)
	core.queue.Enqueue(func() {
		remote := core.remote.Value()
		if remote == nil {
			return
		}
		_ = remote.set.SetBadResultException(exc)
	})
}

// abandonPromiseCleanup fires when the RemoteOperation becomes unreachable.
// It marks the promise no longer needed so StillNeeded reports false to a
// producer that is polling for early cancellation; nothing is enqueued,
// since there is no longer a remote to deliver to.
func abandonPromiseCleanup[T any](core *promiseCore[T]) {
	core.state.CompareAndSwap(unfulfilledNeeded, unfulfilledAbandoned)
}

// StillNeeded reports whether this promise is neither fulfilled nor
// abandoned by its remote. This is a direct liveness check against the weak
// pointer rather than a read of the abandoned flag, since
// abandonPromiseCleanup only runs when the garbage collector gets around to
// it and a producer polling StillNeeded to skip unnecessary work needs the
// answer as soon as the remote is actually gone, not whenever the cleanup
// happens to be scheduled.
func (p *Promise[T]) StillNeeded() bool {
	return p.core.state.Load() != fulfilled && p.core.remote.Value() != nil
}

// Fulfilled reports whether this promise has already been fulfilled.
func (p *Promise[T]) Fulfilled() bool {
	return p.core.state.Load() == fulfilled
}

// SetResult fulfills the promise with v.
func (p *Promise[T]) SetResult(v T) error {
	return p.fulfill(func(remote *RemoteOperation[T]) error { return remote.set.SetResult(v) })
}

// SetBadResultError fulfills the promise with an error result.
func (p *Promise[T]) SetBadResultError(e result.ErrorCode) error {
	if e == nil {
		return errors.WithStack(result.ErrInvalidArgument)
	}
	return p.fulfill(func(remote *RemoteOperation[T]) error { return remote.set.SetBadResultError(e) })
}

// SetBadResultException fulfills the promise with a captured-exception
// result.
func (p *Promise[T]) SetBadResultException(x result.CapturedException) error {
	if x == nil {
		return errors.WithStack(result.ErrInvalidArgument)
	}
	return p.fulfill(func(remote *RemoteOperation[T]) error { return remote.set.SetBadResultException(x) })
}

// fulfill performs the CAS to fulfilled and, if the remote is still
// (or was, at the moment of the CAS) reachable, enqueues a closure that
// re-upgrades the weak pointer on the consumer side and writes the result
// if the remote is still live when the closure actually runs.
func (p *Promise[T]) fulfill(apply func(remote *RemoteOperation[T]) error) error {
	for {
		s := p.core.state.Load()
		if s == fulfilled {
			return errors.WithStack(result.ErrInvalidResult)
		}
		if p.core.state.CompareAndSwap(s, fulfilled) {
			break
		}
	}

	if p.core.remote.Value() == nil {
		// The remote is already gone; nothing will ever drain this
		// closure, so there is no point enqueueing it.
		return nil
	}

	p.core.queue.Enqueue(func() {
		remote := p.core.remote.Value()
		if remote == nil {
			return
		}
		_ = apply(remote)
	})
	return nil
}

// SetResultVoid fulfills a Promise[result.Void], the Go substitute for an
// argument-free SetResult overload.
func SetResultVoid(p *Promise[result.Void]) error {
	return p.SetResult(result.Void{})
}
