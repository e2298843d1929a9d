package observe

type options struct {
	logger Logger
}

type Option func(*options)

// WithLogger sets the sink a source reports its lifecycle to.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts ...Option) options {
	o := options{
		logger: DiscardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// From emits every value of slice in order and completes. Each subscription
// walks the slice from the start.
func From[T any](slice []T, opts ...Option) *Observable[T] {
	o := buildOptions(opts...)
	return New(func(observer *Observer[T]) Teardown {
		var emitted int
		for _, v := range slice {
			if observer.Closed() {
				break
			}
			observer.Next(v)
			emitted++
		}
		observer.Complete()

		return func() {
			o.logger.With(map[string]interface{}{
				"emitted": emitted,
				"size":    len(slice),
			}).Debug("unsubscribed")
		}
	})
}

func Of[T any](values ...T) *Observable[T] {
	return From(values)
}
