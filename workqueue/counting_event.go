package workqueue

import (
	"context"
	"sync"
)

// countingEvent is a mutex-and-condition-variable counting semaphore
// emulation: exactly the fallback the original design allows when no
// bounded-capacity primitive fits, since the queue's pending-item count has
// no fixed upper bound the way a buffered channel would require.
type countingEvent struct {
	initOnce sync.Once
	mu       sync.Mutex
	cond     *sync.Cond
	count    int
}

func (c *countingEvent) init() *sync.Cond {
	c.initOnce.Do(func() { c.cond = sync.NewCond(&c.mu) })
	return c.cond
}

// increment records one available item and wakes a single waiter.
func (c *countingEvent) increment() {
	cond := c.init()
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	cond.Signal()
}

// decrementIfPositive claims one available item without blocking.
func (c *countingEvent) decrementIfPositive() bool {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return false
	}
	c.count--
	return true
}

// waitUntilPositive blocks until an item is available or ctx is done. A
// background goroutine translates ctx's cancellation into a Broadcast,
// since sync.Cond has no native context support; it exits as soon as this
// call returns, whichever way.
func (c *countingEvent) waitUntilPositive(ctx context.Context) bool {
	cond := c.init()

	if done := ctx.Done(); done != nil {
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			select {
			case <-done:
				c.mu.Lock()
				cond.Broadcast()
				c.mu.Unlock()
			case <-stop:
			}
		}()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for c.count == 0 {
		if ctx.Err() != nil {
			return false
		}
		cond.Wait()
	}
	c.count--
	return true
}
