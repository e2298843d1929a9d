package observe

// Producer drives one subscription. It is called once per Subscribe with a
// fresh Observer and may return a Teardown (or nil).
type Producer[T any] func(*Observer[T]) Teardown

// Observable is a cold stream: every Subscribe runs the producer anew.
type Observable[T any] struct {
	producer Producer[T]
}

func New[T any](producer Producer[T]) *Observable[T] {
	if producer == nil {
		panic("observe: producer is nil")
	}
	return &Observable[T]{
		producer: producer,
	}
}

// Subscribe runs the producer synchronously against a new Observer wrapping
// handler and returns the handle that cancels it. A nil handler subscribes
// with no callbacks.
func (o *Observable[T]) Subscribe(handler Handler[T]) Subscription {
	observer := newObserver(handler)
	observer.setTeardown(o.producer(observer))
	return Subscription{
		unsubscribe: observer.Unsubscribe,
	}
}

// Subscription is the caller's only handle on a subscription.
type Subscription struct {
	unsubscribe func()
}

func (s Subscription) Unsubscribe() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
