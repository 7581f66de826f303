package remote

import "github.com/pkg/errors"

// ErrBrokenPromise is the captured exception synthesized when a Promise is
// garbage-collected while still unfulfilled and still needed.
var ErrBrokenPromise = errors.New("remote: promise dropped before it was fulfilled")
