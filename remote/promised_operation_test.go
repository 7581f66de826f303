package remote_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkles-go/sparkles/operation"
	"github.com/sparkles-go/sparkles/remote"
	"github.com/sparkles-go/sparkles/workqueue"
)

func TestPromisedOperationForwardsValue(t *testing.T) {
	var q workqueue.Queue
	r, p := remote.New[int](&q)

	local, localSet := operation.NewLeaf[int]()
	po := remote.NewPromisedOperation[int](p, local)

	require.NoError(t, localSet.SetResult(42))
	assert.True(t, po.Finished())
	assert.Equal(t, 42, po.Result())

	item, ok := q.TryDequeue()
	require.True(t, ok)
	item()
	assert.Equal(t, 42, r.Result())
}

func TestPromisedOperationForwardsError(t *testing.T) {
	var q workqueue.Queue
	r, p := remote.New[int](&q)
	cause := errors.New("local failed")

	local, localSet := operation.NewLeaf[int]()
	_ = remote.NewPromisedOperation[int](p, local)

	require.NoError(t, localSet.SetBadResultError(cause))

	item, ok := q.TryDequeue()
	require.True(t, ok)
	item()
	assert.True(t, r.IsError())
	assert.ErrorIs(t, r.Error(), cause)
}
