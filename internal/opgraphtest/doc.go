// Package opgraphtest provides shared scaffolding for asserting that
// operations across the operation, deferred, and remote packages finish in
// an order consistent with their declared dependencies.
//
// Unlike a goroutine-per-event harness, Recorder observes operation.Node
// values directly: Sparkles' graph resolves synchronously as results are
// set, so there is no blocking wait to spawn a goroutine around — Observe
// attaches a small probe dependent to its target, and whenever a probe is
// notified the Recorder records the token of every observed node that has
// finished and is not yet recorded.
package opgraphtest
