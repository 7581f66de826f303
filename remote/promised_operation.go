package remote

import (
	"github.com/sparkles-go/sparkles/operation"
	"github.com/sparkles-go/sparkles/result"
)

// PromisedOperation[T] bridges the reverse direction of RemoteOperation: it
// is a local operation.Operation[T] whose sole dependency is another local
// operation, and which forwards that dependency's raw result onto a remote
// Promise[T] as soon as the dependency finishes.
//
// Supplying p's own remote as local creates a cross-thread cycle; nothing
// in this type can detect or prevent that, same as the original design.
type PromisedOperation[T any] struct {
	*operation.Operation[T]
}

// NewPromisedOperation returns a PromisedOperation[T] that forwards local's
// result onto p once local finishes.
func NewPromisedOperation[T any](p *Promise[T], local *operation.Operation[T]) *PromisedOperation[T] {
	op, set := operation.NewDependent[T](false, local.Node())
	po := &PromisedOperation[T]{Operation: op}

	op.Node().Bind(func(dep *operation.Node) error {
		raw := local.RawResult()
		switch raw.Tag() {
		case result.Value:
			v, _ := raw.TryValue()
			_ = p.SetResult(v)
		case result.Error:
			e, _ := raw.TryError()
			_ = p.SetBadResultError(e)
		case result.Exception:
			x, _ := raw.TryException()
			_ = p.SetBadResultException(x)
		}
		return set.SetRawResult(raw)
	})

	return po
}
