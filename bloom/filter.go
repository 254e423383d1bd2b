package bloom

import (
	"fmt"
	"math"

	"github.com/forestrie/go-rbloom/bitline"
	"github.com/forestrie/go-rbloom/lcg"
)

// Filter is a Bloom filter over elements of type T.
//
// The number of indices per element (k) and the size of the bit array are
// fixed when the filter is created; only the bits change afterwards. A Filter
// is not safe for concurrent use: readers may share it, writers need
// exclusive access.
//
// Filters have no content hash. They are mutable sets and only compare by
// value through Equal.
type Filter[T comparable] struct {
	bits *bitline.BitLine
	k    uint64

	// nil selects the built-in hash.
	hasher *Hasher[T]
}

// New creates a filter sized for expectedItems elements at the given
// false-positive rate. See Params for the sizing rules.
func New[T comparable](expectedItems uint64, falsePositiveRate float64, opts ...Option[T]) (*Filter[T], error) {
	o := NewOptions(opts...)

	sizeInBits, k, err := Params(expectedItems, falsePositiveRate)
	if err != nil {
		return nil, err
	}

	var hasher *Hasher[T]
	if o.hasherSet {
		if err := checkHasher(o.hasher); err != nil {
			return nil, err
		}
		if !o.hasher.IsDefault() {
			hasher = o.hasher
		}
	}

	bits, err := bitline.New(sizeInBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSizeTooLarge, err)
	}
	return &Filter[T]{bits: bits, k: k, hasher: hasher}, nil
}

// SizeInBits returns the number of bits in the filter.
func (f *Filter[T]) SizeInBits() uint64 { return f.bits.Len() }

// K returns the number of bit positions derived per element.
func (f *Filter[T]) K() uint64 { return f.k }

// Hasher returns the hash function in use. For filters using the built-in
// hash a built-in Hasher is returned.
func (f *Filter[T]) Hasher() *Hasher[T] {
	if f.hasher == nil {
		return DefaultHasher[T]()
	}
	return f.hasher
}

// UsesDefaultHash reports whether the filter uses the built-in hash.
func (f *Filter[T]) UsesDefaultHash() bool { return f.hasher == nil }

// Bytes returns the bit array. It is only valid until the filter is next
// modified.
func (f *Filter[T]) Bytes() []byte { return f.bits.Bytes() }

func (f *Filter[T]) hash(v T) (Hash, error) {
	if f.hasher == nil {
		return hashDefault(v)
	}
	return f.hasher.Sum(v)
}

// Add inserts v. If hashing fails the filter is left unchanged.
func (f *Filter[T]) Add(v T) error {
	h, err := f.hash(v)
	if err != nil {
		return err
	}
	for i := range lcg.GenerateIndexes(h.Hi, h.Lo, f.k, f.bits.Len()) {
		f.bits.Set(i)
	}
	return nil
}

// AddAll inserts each of vs in turn, stopping at the first failure. Elements
// before the failing one remain inserted.
func (f *Filter[T]) AddAll(vs ...T) error {
	for _, v := range vs {
		if err := f.Add(v); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether v may have been added. A false result is
// definite.
func (f *Filter[T]) Contains(v T) (bool, error) {
	h, err := f.hash(v)
	if err != nil {
		return false, err
	}
	for i := range lcg.GenerateIndexes(h.Hi, h.Lo, f.k, f.bits.Len()) {
		if !f.bits.Get(i) {
			return false, nil
		}
	}
	return true, nil
}

// ApproxItems estimates the number of distinct elements added:
//
//	|m/k * ln(1 - x/m)|
//
// where m is the size in bits and x the number of set bits. A saturated
// filter (x == m) returns +Inf.
func (f *Filter[T]) ApproxItems() float64 {
	m := float64(f.bits.Len())
	x := float64(f.bits.Sum())
	return math.Abs(m / float64(f.k) * math.Log(1-x/m))
}

// IsEmpty reports whether no bit is set. An empty filter contains nothing.
func (f *Filter[T]) IsEmpty() bool { return f.bits.IsEmpty() }

// Clear resets every bit. k, size and hash function are unchanged.
func (f *Filter[T]) Clear() { f.bits.Clear() }

// Copy returns an independent copy of the bits. The hash function is shared.
func (f *Filter[T]) Copy() *Filter[T] {
	return &Filter[T]{bits: f.bits.Clone(), k: f.k, hasher: f.hasher}
}

// zeroedClone returns an empty filter of identical shape and hash function.
func (f *Filter[T]) zeroedClone() *Filter[T] {
	return &Filter[T]{bits: bitline.FromBytes(make([]byte, len(f.bits.Bytes()))), k: f.k, hasher: f.hasher}
}

// String makes it clear the filter cannot be reconstructed from its text.
func (f *Filter[T]) String() string {
	return fmt.Sprintf("<Bloom size_in_bits=%d approx_items=%.1f>", f.SizeInBits(), f.ApproxItems())
}
