package deferred

import (
	"github.com/sparkles-go/sparkles/operation"
	"github.com/sparkles-go/sparkles/result"
)

// operand is the untyped view of an argument operation that the readiness
// protocol needs — every field of T has already been peeled away by the
// time a value reaches this interface, which is what lets a single
// fail-fast loop walk arguments of different types.
type operand interface {
	Node() *operation.Node
	Finished() bool
	IsError() bool
	IsException() bool
	Error() result.ErrorCode
	Exception() result.CapturedException
}

// Arg[A] wraps one argument to a deferred call: either a live dependency
// (From) or a value lifted directly into an already-finished operation
// (Literal), which contributes no dependency edge.
type Arg[A any] struct {
	op    *operation.Operation[A]
	isDep bool
}

// From wraps a dependency operation as a deferred call argument.
func From[A any](op *operation.Operation[A]) Arg[A] {
	return Arg[A]{op: op, isDep: true}
}

// Literal lifts a plain value into a deferred call argument. The value is
// wrapped in an already-finished operation so that argument reads stay
// uniform, but it is never added to the resulting operation's dependency
// set.
func Literal[A any](v A) Arg[A] {
	op, set := operation.NewLeaf[A]()
	// A fresh leaf can only fail this call if it were somehow already
	// finished, which cannot happen immediately after construction.
	_ = set.SetResult(v)
	return Arg[A]{op: op, isDep: false}
}

func (a Arg[A]) value() A {
	return a.op.Result()
}

type argEntry struct {
	operand operand
	isDep   bool
}

func (a Arg[A]) entry() argEntry {
	return argEntry{operand: a.op, isDep: a.isDep}
}
