package bitline

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var ErrSizeTooLarge = errors.New("bitline: too many bits")

// maxBytes bounds a single line to what the runtime can allocate.
const maxBytes = min(math.MaxInt, 1<<47)

// BitLine is a fixed length line of bits backed by a byte slice.
//
// Bit i is bit (i&7) of byte i>>3, counting from the least-significant bit
// (LSB0), so bit 0 is the least-significant bit of byte 0. The length in bits is always
// a multiple of 8 and never changes once the line is created.
type BitLine struct {
	bits []byte
}

// New returns a zeroed BitLine able to hold at least sizeInBits bits.
func New(sizeInBits uint64) (*BitLine, error) {
	n := BytesFor(sizeInBits)
	if n > maxBytes {
		return nil, fmt.Errorf("%w: %d bits", ErrSizeTooLarge, sizeInBits)
	}
	return &BitLine{bits: make([]byte, int(n))}, nil
}

// FromBytes returns a BitLine holding a copy of b.
func FromBytes(b []byte) *BitLine {
	bits := make([]byte, len(b))
	copy(bits, b)
	return &BitLine{bits: bits}
}

// BytesFor returns ceil(sizeInBits/8).
func BytesFor(sizeInBits uint64) uint64 {
	q, r := sizeInBits>>3, sizeInBits&7
	if r != 0 {
		q++
	}
	return q
}

// Bytes returns the backing storage. The caller must not retain it across
// mutations of the line.
func (b *BitLine) Bytes() []byte { return b.bits }

// Len returns the number of bits in the line.
func (b *BitLine) Len() uint64 { return uint64(len(b.bits)) * 8 }

// Set sets bit i. i must be < Len().
func (b *BitLine) Set(i uint64) {
	b.mustIndex(i)
	b.bits[i>>3] |= 1 << (i & 7)
}

// Get reports whether bit i is set. i must be < Len().
func (b *BitLine) Get(i uint64) bool {
	b.mustIndex(i)
	return b.bits[i>>3]&(1<<(i&7)) != 0
}

func (b *BitLine) mustIndex(i uint64) {
	if i >= b.Len() {
		panic(fmt.Sprintf("bitline: index %d out of range [0, %d)", i, b.Len()))
	}
}

// Clear zeroes every bit in place.
func (b *BitLine) Clear() { clear(b.bits) }

// Sum returns the number of set bits.
func (b *BitLine) Sum() uint64 {
	var n uint64
	for _, w := range b.bits {
		n += uint64(bits.OnesCount8(w))
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (b *BitLine) IsEmpty() bool {
	for _, w := range b.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (b *BitLine) Clone() *BitLine { return FromBytes(b.bits) }
