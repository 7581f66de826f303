package operation

import (
	"github.com/pkg/errors"
)

// ErrBadDependency is returned by DependencyFinished for a dependency the
// node does not recognize, and by RemoveDependency for an identity that is
// not currently in the node's dependency set.
var ErrBadDependency = errors.New("operation: unrecognized dependency")
