// Package workgroup spawns bounded-concurrency goroutines that resolve
// remote.Promise[T] values, serialized per key the way the teacher
// repository's causal-ordering groups serialize tasks sharing a partition,
// but gated with plain done-channels rather than an operation.Node, since
// operation.Node belongs to a single owning goroutine at a time and must
// never be waited on from another.
package workgroup
