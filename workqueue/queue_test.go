package workqueue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sparkles-go/sparkles/workqueue"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTryDequeueEmptyFails(t *testing.T) {
	var q workqueue.Queue
	_, ok := q.TryDequeue()
	assert.False(t, ok)
}

func TestFIFOWithinNormalLane(t *testing.T) {
	var q workqueue.Queue
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		q.Enqueue(func() { order = append(order, i) })
	}
	for i := 0; i < 3; i++ {
		item, ok := q.TryDequeue()
		require.True(t, ok)
		item()
	}
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestOutOfBandPrecedence is S6: an item enqueued out-of-band is delivered
// ahead of normal items already queued.
func TestOutOfBandPrecedence(t *testing.T) {
	var q workqueue.Queue
	var order []string

	q.Enqueue(func() { order = append(order, "normal-1") })
	q.Enqueue(func() { order = append(order, "normal-2") })
	q.Enqueue(func() { order = append(order, "oob-1") }, workqueue.OutOfBand())

	for i := 0; i < 3; i++ {
		item, ok := q.TryDequeue()
		require.True(t, ok)
		item()
	}
	assert.Equal(t, []string{"oob-1", "normal-1", "normal-2"}, order)
}

func TestMultipleOutOfBandItemsStayFIFOAmongThemselves(t *testing.T) {
	var q workqueue.Queue
	var order []string

	q.Enqueue(func() { order = append(order, "normal") })
	q.Enqueue(func() { order = append(order, "oob-1") }, workqueue.OutOfBand())
	q.Enqueue(func() { order = append(order, "oob-2") }, workqueue.OutOfBand())

	for i := 0; i < 3; i++ {
		item, ok := q.TryDequeue()
		require.True(t, ok)
		item()
	}
	assert.Equal(t, []string{"oob-1", "oob-2", "normal"}, order)
}

func TestDequeueBlocksUntilEnqueue(t *testing.T) {
	var q workqueue.Queue
	done := make(chan struct{})

	go func() {
		defer close(done)
		item, ok := q.Dequeue(context.Background())
		if ok {
			item()
		}
	}()

	select {
	case <-done:
		t.Fatal("Dequeue returned before any item was enqueued")
	case <-time.After(20 * time.Millisecond):
	}

	ran := make(chan struct{})
	q.Enqueue(func() { close(ran) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dequeue never woke up after Enqueue")
	}
	<-ran
}

func TestDequeueReturnsFalseOnContextCancellation(t *testing.T) {
	var q workqueue.Queue
	ctx, cancel := context.WithCancel(context.Background())

	result := make(chan bool, 1)
	go func() {
		_, ok := q.Dequeue(ctx)
		result <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Dequeue never observed context cancellation")
	}
}

func TestRecycledNodesDoNotLeakStaleWork(t *testing.T) {
	var q workqueue.Queue
	calls := 0
	q.Enqueue(func() { calls++ })
	item, ok := q.TryDequeue()
	require.True(t, ok)
	item()

	q.Enqueue(func() { calls += 10 })
	item, ok = q.TryDequeue()
	require.True(t, ok)
	item()

	assert.Equal(t, 11, calls)
}
