package result

import (
	"github.com/pkg/errors"
)

// Void is the payload type for operations whose success carries no value.
// A Result[Void] with tag Value and a zero Void is distinct from a Result
// still tagged Empty — "succeeded with nothing to report" is not the same
// as "has not reported yet."
type Void struct{}

// Tag identifies which of Result's four states is currently held.
type Tag int

const (
	// Empty is the zero value of Tag: no value, error, or exception has
	// been set yet.
	Empty Tag = iota
	// Value means a successful payload of type T is held, including the
	// Void payload used for success-with-no-value.
	Value
	// Error means an ErrorCode is held.
	Error
	// Exception means a CapturedException is held.
	Exception
)

func (t Tag) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Value:
		return "Value"
	case Error:
		return "Error"
	case Exception:
		return "Exception"
	default:
		return "Unknown"
	}
}

// Result is a tagged union over {Empty, Value(T), Error(ErrorCode),
// Exception(CapturedException)}, with a once-write discipline enforced by
// Set*. Result is not safe for concurrent use; each Result is owned by
// exactly one goroutine at a time, exactly like the operation.Node that
// typically embeds it.
type Result[T any] struct {
	tag   Tag
	value T
	err   ErrorCode
	exc   CapturedException
}

// New returns an Empty Result[T], ready to use. The zero value of Result[T]
// is also Empty and ready to use; New exists only for readability at call
// sites that construct one explicitly.
func New[T any]() Result[T] {
	return Result[T]{}
}

// Tag reports which state this Result currently holds.
func (r *Result[T]) Tag() Tag {
	return r.tag
}

// SetValue transitions this Result from Empty to Value(v).
func (r *Result[T]) SetValue(v T) error {
	if r.tag != Empty {
		return errors.WithStack(ErrInvalidResult)
	}
	r.tag = Value
	r.value = v
	return nil
}

// SetError transitions this Result from Empty to Error(e). e must be
// non-nil.
func (r *Result[T]) SetError(e ErrorCode) error {
	if e == nil {
		return errors.WithStack(ErrInvalidArgument)
	}
	if r.tag != Empty {
		return errors.WithStack(ErrInvalidResult)
	}
	r.tag = Error
	r.err = e
	return nil
}

// SetException transitions this Result from Empty to Exception(x). x must
// be non-nil.
func (r *Result[T]) SetException(x CapturedException) error {
	if x == nil {
		return errors.WithStack(ErrInvalidArgument)
	}
	if r.tag != Empty {
		return errors.WithStack(ErrInvalidResult)
	}
	r.tag = Exception
	r.exc = x
	return nil
}

// TryValue returns the held value and true if the tag is Value, or the zero
// value and false otherwise. It never panics.
func (r *Result[T]) TryValue() (T, bool) {
	if r.tag != Value {
		var zero T
		return zero, false
	}
	return r.value, true
}

// TryError returns the held error code and true if the tag is Error, or nil
// and false otherwise. It never panics.
func (r *Result[T]) TryError() (ErrorCode, bool) {
	if r.tag != Error {
		return nil, false
	}
	return r.err, true
}

// TryException returns the held exception and true if the tag is Exception,
// or nil and false otherwise. It never panics.
func (r *Result[T]) TryException() (CapturedException, bool) {
	if r.tag != Exception {
		return nil, false
	}
	return r.exc, true
}

// Peek returns the held value, or panics: with ErrInvalidResult if the tag
// is still Empty, by re-raising the held exception unmodified if the tag is
// Exception, or with a *SystemError wrapping the held code if the tag is
// Error.
func (r *Result[T]) Peek() T {
	switch r.tag {
	case Value:
		return r.value
	case Error:
		panic(&SystemError{Code: r.err})
	case Exception:
		panic(r.exc)
	default:
		panic(errors.WithStack(ErrInvalidResult))
	}
}

// Take behaves like Peek but additionally resets this Result to Empty
// before returning (or before panicking, in the Error/Exception cases the
// reset still happens first so the Result is never left half-consumed).
func (r *Result[T]) Take() T {
	tag, value, err, exc := r.tag, r.value, r.err, r.exc
	*r = Result[T]{}
	switch tag {
	case Value:
		return value
	case Error:
		panic(&SystemError{Code: err})
	case Exception:
		panic(exc)
	default:
		panic(errors.WithStack(ErrInvalidResult))
	}
}

// CopyTo copies this Result's tag and payload onto dst. dst must be Empty
// and this Result must not be Empty.
func (r *Result[T]) CopyTo(dst *Result[T]) error {
	if dst.tag != Empty {
		return errors.WithStack(ErrInvalidResult)
	}
	if r.tag == Empty {
		return errors.WithStack(ErrInvalidResult)
	}
	*dst = *r
	return nil
}

// MoveTo behaves like CopyTo, additionally resetting this Result to Empty
// on success.
func (r *Result[T]) MoveTo(dst *Result[T]) error {
	if err := r.CopyTo(dst); err != nil {
		return err
	}
	*r = Result[T]{}
	return nil
}
