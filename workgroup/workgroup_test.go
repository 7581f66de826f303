package workgroup_test

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sparkles-go/sparkles/remote"
	"github.com/sparkles-go/sparkles/workgroup"
	"github.com/sparkles-go/sparkles/workqueue"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGoRunsTasksConcurrentlyAcrossKeys(t *testing.T) {
	g := workgroup.NewGroup[string](4)
	var mu sync.Mutex
	var ran []string

	for _, key := range []string{"a", "b", "c"} {
		key := key
		g.Go(key, func() error {
			mu.Lock()
			ran = append(ran, key)
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ran)
}

func TestGoSerializesTasksSharingAKey(t *testing.T) {
	g := workgroup.NewGroup[string](4)
	var mu sync.Mutex
	var order []int

	for i := 0; i < 5; i++ {
		i := i
		g.Go("same-key", func() error {
			time.Sleep(time.Millisecond)
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestWaitReturnsFirstError(t *testing.T) {
	g := workgroup.NewGroup[int](2)
	cause := errors.New("task failed")
	g.Go(1, func() error { return cause })
	g.Go(2, func() error { return nil })

	err := g.Wait()
	assert.ErrorIs(t, err, cause)
}

func TestSetLimitPanicsWhileActive(t *testing.T) {
	g := workgroup.NewGroup[int](1)
	release := make(chan struct{})
	started := make(chan struct{})
	g.Go(1, func() error {
		close(started)
		<-release
		return nil
	})
	<-started

	assert.Panics(t, func() { g.SetLimit(2) })
	close(release)
	require.NoError(t, g.Wait())
}

func TestGoPromiseFulfillsWithValue(t *testing.T) {
	var q workqueue.Queue
	g := workgroup.NewGroup[string](2)
	r, p := remote.New[int](&q)

	workgroup.GoPromise(g, "k", p, func() (int, error) { return 42, nil })
	require.NoError(t, g.Wait())

	item, ok := q.TryDequeue()
	require.True(t, ok)
	item()
	assert.Equal(t, 42, r.Result())
}

func TestGoPromiseFulfillsWithErrorOnBusinessFailure(t *testing.T) {
	var q workqueue.Queue
	g := workgroup.NewGroup[string](2)
	r, p := remote.New[int](&q)
	cause := errors.New("business failure")

	workgroup.GoPromise(g, "k", p, func() (int, error) { return 0, cause })
	require.NoError(t, g.Wait())

	item, ok := q.TryDequeue()
	require.True(t, ok)
	item()
	assert.True(t, r.IsError())
	assert.ErrorIs(t, r.Error(), cause)
}

func TestGoPromiseFulfillsWithExceptionOnPanic(t *testing.T) {
	var q workqueue.Queue
	g := workgroup.NewGroup[string](2)
	r, p := remote.New[int](&q)

	workgroup.GoPromise(g, "k", p, func() (int, error) {
		panic(errors.New("unexpected"))
	})
	require.NoError(t, g.Wait())

	item, ok := q.TryDequeue()
	require.True(t, ok)
	item()
	assert.True(t, r.IsException())
}
