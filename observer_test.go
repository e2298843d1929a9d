package observe

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func countingHandlers(next, errs, completes *atomic.Int32) Handlers[int] {
	return Handlers[int]{
		OnNext: func(int) Status {
			next.Inc()
			return 200
		},
		OnError: func(int) Status {
			errs.Inc()
			return 500
		},
		OnComplete: func() {
			completes.Inc()
		},
	}
}

func TestObserverNext(t *testing.T) {
	rec := NewRecorder[int]()
	obs := newObserver[int](rec.Handlers())
	obs.Next(1)
	obs.Next(2)
	assert.Equal(t, []int{1, 2}, rec.Values())
	assert.False(t, obs.Closed())
}

func TestObserverNextReturnsStatus(t *testing.T) {
	var next, errs, completes atomic.Int32
	obs := newObserver[int](countingHandlers(&next, &errs, &completes))
	assert.Equal(t, Status(200), obs.Next(1))
	assert.Equal(t, Status(500), obs.Error(2))
	assert.Equal(t, Status(0), obs.Next(3))
	assert.Equal(t, Status(0), obs.Error(4))
}

func TestObserverAbsentHandlers(t *testing.T) {
	obs := newObserver[int](Handlers[int]{})
	assert.NotPanics(t, func() {
		assert.Equal(t, Status(0), obs.Next(1))
		obs.Complete()
		obs.Unsubscribe()
	})
	assert.True(t, obs.Closed())

	obs = newObserver[int](nil)
	assert.NotPanics(t, func() {
		obs.Error(1)
	})
}

func TestObserverNoEventsAfterComplete(t *testing.T) {
	var next, errs, completes atomic.Int32
	obs := newObserver[int](countingHandlers(&next, &errs, &completes))
	obs.Next(1)
	obs.Complete()

	obs.Next(2)
	obs.Error(3)
	obs.Complete()

	assert.Equal(t, int32(1), next.Load())
	assert.Equal(t, int32(0), errs.Load())
	assert.Equal(t, int32(1), completes.Load())
}

func TestObserverNoEventsAfterError(t *testing.T) {
	var next, errs, completes atomic.Int32
	obs := newObserver[int](countingHandlers(&next, &errs, &completes))
	obs.Error(1)

	obs.Next(2)
	obs.Error(3)
	obs.Complete()

	assert.Equal(t, int32(0), next.Load())
	assert.Equal(t, int32(1), errs.Load())
	assert.Equal(t, int32(0), completes.Load())
}

func TestObserverUnsubscribeRunsTeardownOnce(t *testing.T) {
	var torn int
	obs := newObserver[int](Handlers[int]{})
	obs.setTeardown(func() { torn++ })
	obs.Unsubscribe()
	obs.Unsubscribe()
	assert.Equal(t, 1, torn)

	obs.Complete()
	obs.Error(1)
	assert.Equal(t, 1, torn)
}

func TestObserverTerminalRunsTeardownAfterHandler(t *testing.T) {
	calls := make([]string, 0)
	obs := newObserver[int](Handlers[int]{
		OnComplete: func() { calls = append(calls, "complete") },
	})
	obs.setTeardown(func() { calls = append(calls, "teardown") })
	obs.Complete()
	obs.Unsubscribe()
	assert.Equal(t, []string{"complete", "teardown"}, calls)
}

func TestObserverTeardownAttachedAfterTermination(t *testing.T) {
	var torn int
	obs := newObserver[int](Handlers[int]{})
	obs.Complete()
	obs.setTeardown(func() { torn++ })
	assert.Equal(t, 1, torn)
	obs.Unsubscribe()
	assert.Equal(t, 1, torn)
}

func TestObserverNilTeardown(t *testing.T) {
	obs := newObserver[int](Handlers[int]{})
	obs.setTeardown(nil)
	assert.NotPanics(t, obs.Unsubscribe)
}

func TestObserverDropsReentrantNextFromTerminalHandler(t *testing.T) {
	rec := NewRecorder[int]()
	var obs *Observer[int]
	obs = newObserver[int](Handlers[int]{
		OnNext: rec.Handlers().OnNext,
		OnComplete: func() {
			obs.Next(99)
		},
	})
	obs.Complete()
	assert.Empty(t, rec.Values())
}

func TestObserverHandlerPanicPropagates(t *testing.T) {
	var torn int
	obs := newObserver[int](Handlers[int]{
		OnError: func(int) Status { panic("boom") },
	})
	obs.setTeardown(func() { torn++ })
	assert.PanicsWithValue(t, "boom", func() { obs.Error(1) })
	assert.True(t, obs.Closed())
	assert.Equal(t, 1, torn)
}

func TestObserverConcurrentTerminalEvents(t *testing.T) {
	for i := 0; i < 50; i++ {
		var next, errs, completes, torn atomic.Int32
		obs := newObserver[int](countingHandlers(&next, &errs, &completes))
		obs.setTeardown(func() { torn.Inc() })

		var wg sync.WaitGroup
		start := make(chan struct{})
		for j := 0; j < 8; j++ {
			wg.Add(3)
			go func() {
				defer wg.Done()
				<-start
				obs.Error(1)
			}()
			go func() {
				defer wg.Done()
				<-start
				obs.Complete()
			}()
			go func() {
				defer wg.Done()
				<-start
				obs.Unsubscribe()
			}()
		}
		close(start)
		wg.Wait()

		assert.LessOrEqual(t, errs.Load()+completes.Load(), int32(1))
		assert.Equal(t, int32(1), torn.Load())
		assert.True(t, obs.Closed())
	}
}
