package operation

import (
	"github.com/pkg/errors"

	"github.com/sparkles-go/sparkles/result"
)

// Operation[T] is a Node that owns a result.Result[T]. Finished implies the
// Result is non-Empty, except once DestroyRawResult has taken the Result
// back out — see Setter's documentation for how further writes behave in
// that case.
type Operation[T any] struct {
	node   *Node
	result result.Result[T]
}

// NewLeaf returns a dependency-free Operation[T], ready for producer code
// to set a result on directly via its Setter.
func NewLeaf[T any]() (*Operation[T], Setter[T]) {
	return NewDependent[T](false)
}

// NewDependent returns an Operation[T] with the given dependencies, paired
// with the Setter that is the only way to write its Result. Callers must
// call Node().Bind with their own dependency-finished hook; until Bind is
// called, the operation is not yet wired into the graph, and a dependency
// that has already finished when Bind runs is reported to the hook at once.
func NewDependent[T any](multithreadedDeps bool, deps ...*Node) (*Operation[T], Setter[T]) {
	op := &Operation[T]{node: New(multithreadedDeps, deps...)}
	return op, Setter[T]{op: op}
}

// Node returns the underlying graph node, satisfying Dependency.
func (o *Operation[T]) Node() *Node {
	return o.node
}

// Finished reports whether this operation has finished.
func (o *Operation[T]) Finished() bool {
	return o.node.Finished()
}

// IsValid reports whether this operation finished with a value.
func (o *Operation[T]) IsValid() bool {
	return o.result.Tag() == result.Value
}

// IsError reports whether this operation finished with an error code.
func (o *Operation[T]) IsError() bool {
	return o.result.Tag() == result.Error
}

// IsException reports whether this operation finished with a captured
// exception.
func (o *Operation[T]) IsException() bool {
	return o.result.Tag() == result.Exception
}

// Result returns the held value, panicking per result.Result.Peek's rules
// if this operation has not finished with a value.
func (o *Operation[T]) Result() T {
	return o.result.Peek()
}

// Error returns the held error code, or nil if this operation did not
// finish with an Error. It never panics.
func (o *Operation[T]) Error() result.ErrorCode {
	e, _ := o.result.TryError()
	return e
}

// Exception returns the held captured exception, or nil if this operation
// did not finish with an Exception. It never panics.
func (o *Operation[T]) Exception() result.CapturedException {
	x, _ := o.result.TryException()
	return x
}

// RawResult returns a copy of the held Result. If this operation has not
// finished, or its Result was already taken via DestroyRawResult, the
// returned Result is Empty.
func (o *Operation[T]) RawResult() result.Result[T] {
	var dst result.Result[T]
	_ = o.result.CopyTo(&dst)
	return dst
}

// DestroyRawResult moves the held Result out of this operation, resetting
// it to Empty, and returns the moved copy. Further Setter calls on this
// operation become no-ops — see Setter's documentation.
func (o *Operation[T]) DestroyRawResult() result.Result[T] {
	var dst result.Result[T]
	_ = o.result.MoveTo(&dst)
	return dst
}

// Setter is the write side of an Operation[T], returned only by
// NewDependent/NewLeaf. Go has no "protected" access, so this split — a
// read-only Operation[T] and a separately-held Setter[T] — is how Sparkles
// restricts mutation to the package that constructed the operation (the
// deferred and remote combinators), matching the original design's intent
// that typed setters are reachable only by subclasses.
type Setter[T any] struct {
	op *Operation[T]
}

// SetResult transitions the operation to Value(v) and finishes it. Once the
// operation has already finished — including the case where its Result was
// already taken via DestroyRawResult — this is a silent no-op, the resolved
// behavior for the original design's documented "unspecified but safe"
// post-finish write.
func (s Setter[T]) SetResult(v T) error {
	if s.op.node.Finished() {
		return nil
	}
	if err := s.op.result.SetValue(v); err != nil {
		return err
	}
	s.op.node.Finish()
	return nil
}

// SetBadResultError transitions the operation to Error(e) and finishes it,
// with the same post-finish no-op behavior as SetResult.
func (s Setter[T]) SetBadResultError(e result.ErrorCode) error {
	if s.op.node.Finished() {
		return nil
	}
	if err := s.op.result.SetError(e); err != nil {
		return err
	}
	s.op.node.Finish()
	return nil
}

// SetBadResultException transitions the operation to Exception(x) and
// finishes it, with the same post-finish no-op behavior as SetResult.
func (s Setter[T]) SetBadResultException(x result.CapturedException) error {
	if s.op.node.Finished() {
		return nil
	}
	if err := s.op.result.SetException(x); err != nil {
		return err
	}
	s.op.node.Finish()
	return nil
}

// SetRawResult transitions the operation to match r's tag and finishes it,
// with the same post-finish no-op behavior as SetResult. r must not be
// Empty.
func (s Setter[T]) SetRawResult(r result.Result[T]) error {
	if s.op.node.Finished() {
		return nil
	}
	var err error
	switch r.Tag() {
	case result.Value:
		v, _ := r.TryValue()
		err = s.op.result.SetValue(v)
	case result.Error:
		e, _ := r.TryError()
		err = s.op.result.SetError(e)
	case result.Exception:
		x, _ := r.TryException()
		err = s.op.result.SetException(x)
	default:
		err = errors.WithStack(result.ErrInvalidResult)
	}
	if err != nil {
		return err
	}
	s.op.node.Finish()
	return nil
}

// Node returns the underlying graph node of the operation this setter
// writes to. It is occasionally useful for combinators that need to Bind a
// hook after constructing both halves.
func (s Setter[T]) Node() *Node {
	return s.op.node
}
