package workgroup

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sparkles-go/sparkles/remote"
	"github.com/sparkles-go/sparkles/semaphore"
)

// Group[K] runs bounded-concurrency goroutines, serialized per key: a task
// submitted under a key does not start until the previously submitted task
// under that same key has returned. Tasks under different keys may run
// concurrently, up to the group's limit.
//
// The zero Group has no concurrency limit.
type Group[K comparable] struct {
	mu    sync.Mutex
	gates map[K]chan struct{}
	sem   semaphore.Semaphore
	eg    errgroup.Group
}

// NewGroup returns a Group with the given concurrency limit. A negative
// limit means unlimited, matching semaphore.New.
func NewGroup[K comparable](limit int) *Group[K] {
	return &Group[K]{
		gates: make(map[K]chan struct{}),
		sem:   semaphore.New(limit),
	}
}

// Go spawns f in a new goroutine once the group's concurrency limit
// permits it and any previously submitted task sharing key has returned.
// The first error returned by any spawned f is recorded and returned by
// Wait; every task still runs to completion regardless.
func (g *Group[K]) Go(key K, f func() error) {
	g.mu.Lock()
	if g.gates == nil {
		g.gates = make(map[K]chan struct{})
	}
	prevGate := g.gates[key]
	myGate := make(chan struct{})
	g.gates[key] = myGate
	g.mu.Unlock()

	g.sem.Acquire()
	g.eg.Go(func() error {
		defer g.sem.Release()
		defer close(myGate)
		if prevGate != nil {
			<-prevGate
		}
		return f()
	})
}

// Wait blocks until every task submitted via Go has returned, then returns
// the first non-nil error any of them returned.
func (g *Group[K]) Wait() error {
	return g.eg.Wait()
}

// SetLimit changes the group's concurrency limit. It panics if any
// goroutine spawned by Go is still active, matching the discipline the
// teacher's causalgroup.SetLimit enforces on its own semaphore.
func (g *Group[K]) SetLimit(n int) {
	if g.sem.Value() != 0 {
		panic(errors.Errorf("workgroup: modify limit while %d goroutines in the group are still active", g.sem.Value()))
	}
	g.sem = semaphore.New(n)
}

// GoPromise spawns f under the same scheduling rules as Group.Go and
// fulfills p with whatever f returns: a returned error fulfills p with
// SetBadResultError, a panic recovered from f fulfills p with
// SetBadResultException, and otherwise p is fulfilled with f's value.
func GoPromise[K comparable, T any](g *Group[K], key K, p *remote.Promise[T], f func() (T, error)) {
	g.Go(key, func() error {
		v, err, exc := runRecovering(f)
		switch {
		case exc != nil:
			return p.SetBadResultException(exc)
		case err != nil:
			return p.SetBadResultError(err)
		default:
			return p.SetResult(v)
		}
	})
}

func runRecovering[T any](f func() (T, error)) (v T, err, exc error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				exc = errors.WithStack(e)
			} else {
				exc = errors.Errorf("workgroup: recovered panic: %v", rec)
			}
		}
	}()
	v, err = f()
	return v, err, nil
}
