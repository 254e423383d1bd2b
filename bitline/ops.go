package bitline

import (
	"bytes"
	"fmt"
)

// The binary operations below require operands of equal length. Callers
// enforce this before calling (a mismatch is a programming error and panics).

func mustSameLen(a, b *BitLine) {
	if len(a.bits) != len(b.bits) {
		panic(fmt.Sprintf("bitline: length mismatch %d != %d", a.Len(), b.Len()))
	}
}

// Equal reports whether both lines hold identical bits.
func (b *BitLine) Equal(other *BitLine) bool {
	return bytes.Equal(b.bits, other.bits)
}

// IsSubset reports whether every bit set in b is also set in other.
func (b *BitLine) IsSubset(other *BitLine) bool {
	mustSameLen(b, other)
	for i, lhs := range b.bits {
		rhs := other.bits[i]
		if lhs|rhs != rhs {
			return false
		}
	}
	return true
}

// IsStrictSubset reports whether b is a subset of other and not equal to it.
func (b *BitLine) IsStrictSubset(other *BitLine) bool {
	mustSameLen(b, other)
	equal := true
	for i, lhs := range b.bits {
		rhs := other.bits[i]
		if lhs|rhs != rhs {
			return false
		}
		equal = equal && lhs == rhs
	}
	return !equal
}

// OrWith sets b = b | other.
func (b *BitLine) OrWith(other *BitLine) {
	mustSameLen(b, other)
	for i, rhs := range other.bits {
		b.bits[i] |= rhs
	}
}

// AndWith sets b = b & other.
func (b *BitLine) AndWith(other *BitLine) {
	mustSameLen(b, other)
	for i, rhs := range other.bits {
		b.bits[i] &= rhs
	}
}

// Or returns a new line holding b | other.
func (b *BitLine) Or(other *BitLine) *BitLine {
	out := b.Clone()
	out.OrWith(other)
	return out
}

// And returns a new line holding b & other.
func (b *BitLine) And(other *BitLine) *BitLine {
	out := b.Clone()
	out.AndWith(other)
	return out
}
