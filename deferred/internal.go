package deferred

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sparkles-go/sparkles/operation"
)

// collectDeps reduces the From-wrapped entries to their node set, deduped
// by identity so that supplying the same operation twice still contributes
// only one dependency edge, per the original design's resolution of that
// Open Question. Literal entries are skipped entirely — they are already
// finished and were never meant to gate readiness.
func collectDeps(entries []argEntry) []*operation.Node {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	deps := make([]*operation.Node, 0, len(entries))
	for _, e := range entries {
		if !e.isDep {
			continue
		}
		n := e.operand.Node()
		if _, ok := seen[n.ID()]; ok {
			continue
		}
		seen[n.ID()] = struct{}{}
		deps = append(deps, n)
	}
	return deps
}

// tryAdvance runs the readiness protocol for a deferred call: short-circuit
// on any operand's exception or error, otherwise wait for every operand to
// finish before invoking the suspended call. It is safe to call both
// immediately after construction (covering the all-literal, zero-dependency
// case) and from the Bind hook on every dependency-finished notification.
func tryAdvance[R any](op *operation.Operation[R], set operation.Setter[R], entries []argEntry, invoke func() R) error {
	if op.Finished() {
		return nil
	}

	for _, e := range entries {
		if e.operand.IsException() {
			return set.SetBadResultException(e.operand.Exception())
		}
	}
	for _, e := range entries {
		if e.operand.IsError() {
			return set.SetBadResultError(e.operand.Error())
		}
	}
	for _, e := range entries {
		if !e.operand.Finished() {
			return nil
		}
	}

	return invokeSafely(set, invoke)
}

// invokeSafely runs the suspended call, setting a value result on success
// and converting a recovered panic into a captured exception, mirroring the
// original design's treatment of exceptions as an ordinary result state.
func invokeSafely[R any](set operation.Setter[R], invoke func() R) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if exc, ok := rec.(error); ok {
				err = set.SetBadResultException(errors.WithStack(exc))
			} else {
				err = set.SetBadResultException(errors.Errorf("deferred: recovered panic: %v", rec))
			}
		}
	}()
	v := invoke()
	err = set.SetResult(v)
	return err
}
