package observe

import "sync"

// ForEach calls f for every value and ignores errors and completion.
func ForEach[T any](f func(T)) Handlers[T] {
	return Handlers[T]{
		OnNext: func(v T) Status {
			f(v)
			return 0
		},
	}
}

// Recorder collects everything delivered to its handlers.
type Recorder[T any] struct {
	m         sync.Mutex
	values    []T
	errors    []T
	completes int
}

func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{
		values: make([]T, 0),
		errors: make([]T, 0),
	}
}

func (r *Recorder[T]) Handlers() Handlers[T] {
	return Handlers[T]{
		OnNext: func(v T) Status {
			r.m.Lock()
			defer r.m.Unlock()
			r.values = append(r.values, v)
			return 0
		},
		OnError: func(v T) Status {
			r.m.Lock()
			defer r.m.Unlock()
			r.errors = append(r.errors, v)
			return 0
		},
		OnComplete: func() {
			r.m.Lock()
			defer r.m.Unlock()
			r.completes++
		},
	}
}

func (r *Recorder[T]) Values() []T {
	r.m.Lock()
	defer r.m.Unlock()
	return append([]T(nil), r.values...)
}

func (r *Recorder[T]) Errors() []T {
	r.m.Lock()
	defer r.m.Unlock()
	return append([]T(nil), r.errors...)
}

func (r *Recorder[T]) Completes() int {
	r.m.Lock()
	defer r.m.Unlock()
	return r.completes
}
