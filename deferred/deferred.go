package deferred

import (
	"github.com/sparkles-go/sparkles/operation"
	"github.com/sparkles-go/sparkles/result"
)

// Builder1 holds a one-argument function awaiting its argument operation.
type Builder1[A1, R any] struct {
	f func(A1) R
}

// Defer1 wraps f so that it can be applied once its argument operation is
// ready.
func Defer1[A1, R any](f func(A1) R) *Builder1[A1, R] {
	return &Builder1[A1, R]{f: f}
}

// Until returns an operation that becomes ready once a1 is ready, carrying
// f(a1)'s return value or the first propagated failure.
func (b *Builder1[A1, R]) Until(a1 Arg[A1]) *operation.Operation[R] {
	entries := []argEntry{a1.entry()}
	invoke := func() R { return b.f(a1.value()) }

	op, set := operation.NewDependent[R](false, collectDeps(entries)...)
	op.Node().Bind(func(dep *operation.Node) error {
		return tryAdvance(op, set, entries, invoke)
	})
	_ = tryAdvance(op, set, entries, invoke)
	return op
}

// DeferVoid1 wraps a side-effecting f into a Defer1 whose result is
// result.Void on success.
func DeferVoid1[A1 any](f func(A1)) *Builder1[A1, result.Void] {
	return Defer1(func(a1 A1) result.Void { f(a1); return result.Void{} })
}

// Builder2 holds a two-argument function awaiting its argument operations.
type Builder2[A1, A2, R any] struct {
	f func(A1, A2) R
}

// Defer2 wraps f so that it can be applied once both argument operations
// are ready.
func Defer2[A1, A2, R any](f func(A1, A2) R) *Builder2[A1, A2, R] {
	return &Builder2[A1, A2, R]{f: f}
}

// Until returns an operation that becomes ready once a1 and a2 are ready,
// carrying f(a1, a2)'s return value or the first propagated failure.
func (b *Builder2[A1, A2, R]) Until(a1 Arg[A1], a2 Arg[A2]) *operation.Operation[R] {
	entries := []argEntry{a1.entry(), a2.entry()}
	invoke := func() R { return b.f(a1.value(), a2.value()) }

	op, set := operation.NewDependent[R](false, collectDeps(entries)...)
	op.Node().Bind(func(dep *operation.Node) error {
		return tryAdvance(op, set, entries, invoke)
	})
	_ = tryAdvance(op, set, entries, invoke)
	return op
}

// DeferVoid2 wraps a side-effecting f into a Defer2 whose result is
// result.Void on success.
func DeferVoid2[A1, A2 any](f func(A1, A2)) *Builder2[A1, A2, result.Void] {
	return Defer2(func(a1 A1, a2 A2) result.Void { f(a1, a2); return result.Void{} })
}

// Builder3 holds a three-argument function awaiting its argument operations.
type Builder3[A1, A2, A3, R any] struct {
	f func(A1, A2, A3) R
}

// Defer3 wraps f so that it can be applied once all three argument
// operations are ready.
func Defer3[A1, A2, A3, R any](f func(A1, A2, A3) R) *Builder3[A1, A2, A3, R] {
	return &Builder3[A1, A2, A3, R]{f: f}
}

// Until returns an operation that becomes ready once a1, a2 and a3 are
// ready, carrying f(a1, a2, a3)'s return value or the first propagated
// failure.
func (b *Builder3[A1, A2, A3, R]) Until(a1 Arg[A1], a2 Arg[A2], a3 Arg[A3]) *operation.Operation[R] {
	entries := []argEntry{a1.entry(), a2.entry(), a3.entry()}
	invoke := func() R { return b.f(a1.value(), a2.value(), a3.value()) }

	op, set := operation.NewDependent[R](false, collectDeps(entries)...)
	op.Node().Bind(func(dep *operation.Node) error {
		return tryAdvance(op, set, entries, invoke)
	})
	_ = tryAdvance(op, set, entries, invoke)
	return op
}

// DeferVoid3 wraps a side-effecting f into a Defer3 whose result is
// result.Void on success.
func DeferVoid3[A1, A2, A3 any](f func(A1, A2, A3)) *Builder3[A1, A2, A3, result.Void] {
	return Defer3(func(a1 A1, a2 A2, a3 A3) result.Void { f(a1, a2, a3); return result.Void{} })
}

// Builder4 holds a four-argument function awaiting its argument operations.
type Builder4[A1, A2, A3, A4, R any] struct {
	f func(A1, A2, A3, A4) R
}

// Defer4 wraps f so that it can be applied once all four argument
// operations are ready. Arities above four are not generated; chain
// deferrals instead — see the package doc.
func Defer4[A1, A2, A3, A4, R any](f func(A1, A2, A3, A4) R) *Builder4[A1, A2, A3, A4, R] {
	return &Builder4[A1, A2, A3, A4, R]{f: f}
}

// Until returns an operation that becomes ready once a1 through a4 are
// ready, carrying f(a1, a2, a3, a4)'s return value or the first propagated
// failure.
func (b *Builder4[A1, A2, A3, A4, R]) Until(a1 Arg[A1], a2 Arg[A2], a3 Arg[A3], a4 Arg[A4]) *operation.Operation[R] {
	entries := []argEntry{a1.entry(), a2.entry(), a3.entry(), a4.entry()}
	invoke := func() R { return b.f(a1.value(), a2.value(), a3.value(), a4.value()) }

	op, set := operation.NewDependent[R](false, collectDeps(entries)...)
	op.Node().Bind(func(dep *operation.Node) error {
		return tryAdvance(op, set, entries, invoke)
	})
	_ = tryAdvance(op, set, entries, invoke)
	return op
}

// DeferVoid4 wraps a side-effecting f into a Defer4 whose result is
// result.Void on success.
func DeferVoid4[A1, A2, A3, A4 any](f func(A1, A2, A3, A4)) *Builder4[A1, A2, A3, A4, result.Void] {
	return Defer4(func(a1 A1, a2 A2, a3 A3, a4 A4) result.Void { f(a1, a2, a3, a4); return result.Void{} })
}
