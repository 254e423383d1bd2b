package bloom

// Options configures New. Unset fields take the defaults.
type Options[T comparable] struct {
	hasher    *Hasher[T]
	hasherSet bool
}

type Option[T comparable] func(*Options[T])

// WithHasher selects the hash function. Passing a built-in hasher is the same
// as passing no option. Passing nil fails New with ErrTypeMismatch.
func WithHasher[T comparable](h *Hasher[T]) Option[T] {
	return func(opts *Options[T]) {
		opts.hasher = h
		opts.hasherSet = true
	}
}

// NewOptions applies opts in order.
func NewOptions[T comparable](opts ...Option[T]) Options[T] {
	var o Options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
