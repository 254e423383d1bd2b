package bloom

import "errors"

const (
	// HeaderBytes is the size of the persisted header: k as a little-endian
	// uint64.
	HeaderBytes = 8
)

var (
	ErrInvalidArgument     = errors.New("bloom: invalid argument")
	ErrTypeMismatch        = errors.New("bloom: hash function must be callable")
	ErrIncompatibleFilters = errors.New("bloom: incompatible filters")
	ErrInvalidState        = errors.New("bloom: cannot save a bloom filter that uses the built-in hash function")
	ErrHashFunction        = errors.New("bloom: hash function failed")
	ErrSizeTooLarge        = errors.New("bloom: too many bits")

	ErrShortHeader   = errors.New("bloom: header truncated")
	ErrCorruptFilter = errors.New("bloom: filter body empty for non-zero k")
)

// Hash is a 128-bit two's complement signed integer. It is the output of
// every hash function a filter uses.
type Hash struct {
	Hi uint64
	Lo uint64
}

// HashInt64 sign-extends v to 128 bits.
func HashInt64(v int64) Hash {
	return Hash{Hi: uint64(v >> 63), Lo: uint64(v)}
}

// HashUint64 zero-extends v to 128 bits.
func HashUint64(v uint64) Hash {
	return Hash{Lo: v}
}

// IsNegative reports whether the signed value is below zero.
func (h Hash) IsNegative() bool { return int64(h.Hi) < 0 }
