package observe

// Status is the result a handler hands back to whoever emitted the value.
// The observer never interprets it.
type Status int

type Handler[T any] interface {
	HandleNext(T) Status
	HandleError(T) Status
	HandleComplete()
}

// Handlers is a set of optional callbacks. A nil callback is a no-op.
type Handlers[T any] struct {
	OnNext     func(T) Status
	OnError    func(T) Status
	OnComplete func()
}

func (h Handlers[T]) HandleNext(v T) Status {
	if h.OnNext != nil {
		return h.OnNext(v)
	}
	return 0
}

func (h Handlers[T]) HandleError(v T) Status {
	if h.OnError != nil {
		return h.OnError(v)
	}
	return 0
}

func (h Handlers[T]) HandleComplete() {
	if h.OnComplete != nil {
		h.OnComplete()
	}
}
