package observe

import (
	"sync"

	"go.uber.org/atomic"
)

// Teardown releases whatever a producer acquired for one subscription.
type Teardown func()

// Observer gates a handler behind a live/unsubscribed flag. Once unsubscribed
// it stays unsubscribed and no handler is called again.
type Observer[T any] struct {
	handler      Handler[T]
	unsubscribed *atomic.Bool

	mu       sync.Mutex
	teardown Teardown
}

func newObserver[T any](handler Handler[T]) *Observer[T] {
	if handler == nil {
		handler = Handlers[T]{}
	}
	return &Observer[T]{
		handler:      handler,
		unsubscribed: atomic.NewBool(false),
	}
}

// Next forwards v while the observer is live. Afterwards it is dropped.
func (o *Observer[T]) Next(v T) Status {
	if o.unsubscribed.Load() {
		return 0
	}
	return o.handler.HandleNext(v)
}

// Error delivers a terminal failure and unsubscribes.
func (o *Observer[T]) Error(v T) Status {
	if !o.unsubscribed.CompareAndSwap(false, true) {
		return 0
	}
	defer o.runTeardown()
	return o.handler.HandleError(v)
}

// Complete delivers normal termination and unsubscribes.
func (o *Observer[T]) Complete() {
	if !o.unsubscribed.CompareAndSwap(false, true) {
		return
	}
	defer o.runTeardown()
	o.handler.HandleComplete()
}

// Unsubscribe is idempotent; the teardown runs on the first call only.
func (o *Observer[T]) Unsubscribe() {
	if o.unsubscribed.CompareAndSwap(false, true) {
		o.runTeardown()
	}
}

func (o *Observer[T]) Closed() bool {
	return o.unsubscribed.Load()
}

// setTeardown attaches the producer's teardown. If the producer already
// terminated the observer, the teardown runs right away.
func (o *Observer[T]) setTeardown(td Teardown) {
	if td == nil {
		return
	}
	o.mu.Lock()
	if o.unsubscribed.Load() {
		o.mu.Unlock()
		td()
		return
	}
	o.teardown = td
	o.mu.Unlock()
}

func (o *Observer[T]) runTeardown() {
	o.mu.Lock()
	td := o.teardown
	o.teardown = nil
	o.mu.Unlock()
	if td != nil {
		td()
	}
}
