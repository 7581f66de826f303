// Package result provides Result, a four-state value carrier used throughout
// Sparkles to represent the outcome of a deferred computation: empty (not yet
// produced), a value, an error code, or a captured exception.
//
// # Why a fourth state
//
// A plain (T, error) pair cannot distinguish "not yet computed" from "failed
// with no useful error," and it cannot distinguish an expected failure code
// from an unexpected panic that was recovered along the way. Result keeps
// those three failure-adjacent states apart so that the operation graph can
// decide, without guessing, whether a dependency is simply not ready yet or
// has already failed in a specific way.
//
// # Once-write discipline
//
// A Result starts Empty and accepts exactly one successful Set call. Every
// subsequent Set call fails with ErrInvalidResult, with one exception: moving
// a Result into another Result (MoveTo), or taking its payload out (Take),
// resets the source back to Empty, after which a fresh Set call on the
// source succeeds again.
//
// # Throwing vs. non-throwing accessors
//
// Peek and Take panic when the tag does not hold a usable value, mirroring
// the "exceptions as values" design this package's caller,
// operation.Operation, relies on: the panic carries either the captured exception itself
// (re-raised unmodified) or a SystemError wrapping the error code. Tag,
// TryValue, TryError, and TryException never panic, for callers that would
// rather branch on a tag than recover from a panic.
package result
