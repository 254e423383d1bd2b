package bloom

import (
	"fmt"
	"hash/maphash"
)

// defaultSeed is chosen at random once per process. Hashes computed with it
// are not reproducible across processes, which is why filters using the
// default hash refuse to be saved.
var defaultSeed = maphash.MakeSeed()

// Hasher is the hash capability a filter derives bit positions from.
//
// Two filters share a hash function only when they hold the same *Hasher.
// Hashers built from functions that behave identically are still distinct.
type Hasher[T any] struct {
	fn      func(T) (Hash, error)
	builtin bool
}

// NewHasher wraps fn. A nil fn is rejected with ErrTypeMismatch.
func NewHasher[T any](fn func(T) (Hash, error)) (*Hasher[T], error) {
	if fn == nil {
		return nil, ErrTypeMismatch
	}
	return &Hasher[T]{fn: fn}, nil
}

// NewInt64Hasher wraps a function returning a signed 64-bit hash, which is
// sign-extended to 128 bits.
func NewInt64Hasher[T any](fn func(T) int64) (*Hasher[T], error) {
	if fn == nil {
		return nil, ErrTypeMismatch
	}
	return NewHasher(func(v T) (Hash, error) { return HashInt64(fn(v)), nil })
}

// NewUint64Hasher wraps a function returning an unsigned 64-bit hash, which
// is zero-extended to 128 bits.
func NewUint64Hasher[T any](fn func(T) uint64) (*Hasher[T], error) {
	if fn == nil {
		return nil, ErrTypeMismatch
	}
	return NewHasher(func(v T) (Hash, error) { return HashUint64(fn(v)), nil })
}

// DefaultHasher returns the built-in hash for T. It hashes the value with
// hash/maphash using a per-process seed. Every default hasher is treated as
// the same hash function.
func DefaultHasher[T comparable]() *Hasher[T] {
	return &Hasher[T]{fn: hashDefault[T], builtin: true}
}

// IsDefault reports whether h is the built-in hash. A nil Hasher is the
// built-in hash.
func (h *Hasher[T]) IsDefault() bool {
	return h == nil || h.builtin
}

// Sum hashes v.
func (h *Hasher[T]) Sum(v T) (Hash, error) {
	hash, err := h.fn(v)
	if err != nil {
		return Hash{}, fmt.Errorf("%w: %w", ErrHashFunction, err)
	}
	return hash, nil
}

func hashDefault[T comparable](v T) (Hash, error) {
	// The built-in hash is a signed machine word.
	return HashInt64(int64(maphash.Comparable(defaultSeed, v))), nil
}

func checkHasher[T any](h *Hasher[T]) error {
	if h == nil || (h.fn == nil && !h.builtin) {
		return ErrTypeMismatch
	}
	return nil
}

// sameHasher reports whether a and b are the same hash function, treating
// nil and built-in hashers as the single default.
func sameHasher[T any](a, b *Hasher[T]) bool {
	if a.IsDefault() || b.IsDefault() {
		return a.IsDefault() && b.IsDefault()
	}
	return a == b
}
