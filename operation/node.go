package operation

import (
	"sync"
	"weak"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Dependency is satisfied by anything that can be depended upon in the
// operation graph — in practice, every instantiation of Operation[T] plus
// the cross-thread bridge types in package remote.
type Dependency interface {
	Node() *Node
}

// Node is the untyped half of the operation graph: dependency/dependent
// bookkeeping and the finish protocol. Concrete operation types embed a
// *Node and supply their own "what happens when a dependency finishes"
// closure via Bind.
//
// A Node belongs to exactly one owning goroutine at a time, except for its
// dependents map, which is guarded by mu because a dependent's owner may
// live on a different goroutine (see the multithreadedDependencies flag and
// package remote).
type Node struct {
	id uuid.UUID

	mu        sync.RWMutex
	finished  bool
	dependents map[uuid.UUID]weak.Pointer[Node]

	// dependencies is owned and mutated only by this node's owning
	// goroutine; per the original design it needs no lock.
	dependencies map[uuid.UUID]*Node

	// multithreadedDependencies, when true, skips the detach-from-
	// dependencies step of Finish: the dependencies may belong to another
	// goroutine's object graph and must not be touched from here.
	multithreadedDependencies bool

	onDependencyFinished func(dep *Node) error
}

// New constructs a Node with the given dependencies. multithreadedDeps
// marks a node whose dependencies belong to another goroutine's graph (see
// the Node.multithreadedDependencies field doc). The returned Node is not
// yet usable as a dependent of its dependencies until Bind is called.
func New(multithreadedDeps bool, deps ...*Node) *Node {
	n := &Node{
		id:                        uuid.New(),
		dependencies:              make(map[uuid.UUID]*Node, len(deps)),
		multithreadedDependencies: multithreadedDeps,
	}
	for _, d := range deps {
		if d == nil {
			continue
		}
		n.dependencies[d.id] = d
	}
	return n
}

// ID returns this node's identity, used as the map key for both the
// dependency and dependent collections so that supplying the same operation
// twice collapses to a single graph edge.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Bind registers hook as this node's dependency-finished callback and, for
// each dependency declared at construction, registers this node as that
// dependency's dependent. It must be called exactly once, immediately after
// construction; a dependency that has already finished by then calls hook
// from within Bind instead of being stored. Concrete operation constructors
// call it once they have a stable address for hook to close over, mirroring the original design's requirement that a node
// cannot hand out a weak self-reference before its shared identity exists.
func (n *Node) Bind(hook func(dep *Node) error) {
	n.onDependencyFinished = hook
	for _, d := range n.dependencies {
		d.addDependent(n)
	}
}

// Finished reports whether Finish has been called on this node.
func (n *Node) Finished() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.finished
}

// Dependencies returns a snapshot of this node's current dependency set.
// Intended for diagnostics and tests; callers must not mutate the result.
func (n *Node) Dependencies() []*Node {
	deps := make([]*Node, 0, len(n.dependencies))
	for _, d := range n.dependencies {
		deps = append(deps, d)
	}
	return deps
}

// addDependent registers dependent as a dependent of n. If n has already
// finished, dependent is notified immediately instead of being stored,
// matching the original design's add_dependent semantics exactly.
func (n *Node) addDependent(dependent *Node) {
	n.mu.Lock()
	if n.finished {
		n.mu.Unlock()
		_ = dependent.DependencyFinished(n)
		return
	}
	if n.dependents == nil {
		n.dependents = make(map[uuid.UUID]weak.Pointer[Node])
	}
	n.dependents[dependent.id] = weak.Make(dependent)
	n.mu.Unlock()
}

// removeDependent erases the dependent keyed by id, if present.
func (n *Node) removeDependent(id uuid.UUID) {
	n.mu.Lock()
	delete(n.dependents, id)
	n.mu.Unlock()
}

// RemoveDependency releases the owning reference to the dependency keyed by
// id, unregistering this node from that dependency's dependent set. It is
// valid both before and after Finish. Removing an identity this node does
// not currently depend on fails with ErrBadDependency.
func (n *Node) RemoveDependency(id uuid.UUID) error {
	dep, ok := n.dependencies[id]
	if !ok {
		return errors.WithStack(ErrBadDependency)
	}
	dep.removeDependent(n.id)
	delete(n.dependencies, id)
	return nil
}

// DependencyFinished is the entry point a finished dependency calls on each
// of its live dependents. It fails with ErrBadDependency if dep is not a
// dependency this node recognizes; otherwise it delegates to the hook
// supplied to Bind.
func (n *Node) DependencyFinished(dep *Node) error {
	if _, ok := n.dependencies[dep.id]; !ok {
		return errors.WithStack(ErrBadDependency)
	}
	return n.onDependencyFinished(dep)
}

// Finish marks this node as finished, detaches it from its dependencies
// (unless multithreadedDependencies is set), and drains its dependents map,
// notifying each live dependent exactly once. Finish is idempotent: a
// second call is a no-op.
//
// The drain removes one dependent at a time and re-reads the map after each
// notification rather than snapshotting it up front, so that a notified
// dependent's own Finish call may safely remove a sibling from this node's
// map during the loop.
func (n *Node) Finish() {
	n.mu.Lock()
	if n.finished {
		n.mu.Unlock()
		return
	}
	n.finished = true
	n.mu.Unlock()

	if !n.multithreadedDependencies {
		for id, dep := range n.dependencies {
			dep.removeDependent(n.id)
			delete(n.dependencies, id)
		}
	}

	for {
		n.mu.Lock()
		var (
			key   uuid.UUID
			wp    weak.Pointer[Node]
			found bool
		)
		for k, v := range n.dependents {
			key, wp, found = k, v, true
			break
		}
		if found {
			delete(n.dependents, key)
		}
		n.mu.Unlock()

		if !found {
			return
		}
		if dependent := wp.Value(); dependent != nil {
			_ = dependent.DependencyFinished(n)
		}
	}
}
