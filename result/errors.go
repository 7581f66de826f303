package result

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidResult is returned (wrapped) by a setter called on a Result that
// is not Empty and by CopyTo/MoveTo when either side is in the wrong state;
// Peek and Take panic with it (wrapped) when called on an Empty Result.
var ErrInvalidResult = errors.New("result: invalid operation for current state")

// ErrInvalidArgument is returned (wrapped) by SetError or SetException when
// given a nil ErrorCode or CapturedException, respectively.
var ErrInvalidArgument = errors.New("result: invalid argument")

// ErrorCode is the collaborator type consumed by Result's Error variant. Any
// error value works; nil means "no error" and is rejected by SetError. The
// concrete error-kind types used in tests are an external concern the result
// package deliberately does not define.
type ErrorCode = error

// CapturedException is the collaborator type consumed by Result's Exception
// variant: an opaque, re-throwable failure, typically produced by recovering
// a panic. A nil CapturedException is rejected by SetException.
type CapturedException = error

// SystemError wraps an ErrorCode so that Peek and Take have something to
// panic with when the underlying Result holds an Error rather than an
// Exception — the original error code is always available via errors.Unwrap
// (so errors.Is/errors.As see it) or SystemError.Code.
type SystemError struct {
	Code ErrorCode
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("result: operation failed with error code: %v", e.Code)
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped code.
func (e *SystemError) Unwrap() error {
	return e.Code
}
