// Package operation implements the DAG of deferred computations at the
// heart of Sparkles: Node, the untyped graph bookkeeping, and Operation[T],
// the typed wrapper that owns a result.Result[T].
//
// # Ownership
//
// A Node owns its dependencies with ordinary Go pointers — Go's garbage
// collector already reclaims cycles, so there is no manual reference
// counting here. A Node's dependents, by contrast, are held as
// weak.Pointer[Node] values: a dependent that its own owner has dropped can
// still be collected even though a stale dependency edge names it, which is
// exactly the mechanism the rest of Sparkles (in particular package remote)
// relies on for cooperative cancellation.
//
// # Subclassing without inheritance
//
// Go has no abstract methods, so every concrete operation type that has
// dependencies (the deferred combinator's internal operation,
// PromisedOperation) supplies its own "what happens when a dependency
// finishes" behavior as a plain closure, handed to Node at construction
// time — after the concrete type has a stable address to close over. This
// mirrors the original design's own observation that a node cannot publish
// a weak self-reference before its shared identity exists.
package operation
