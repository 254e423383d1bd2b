package lcg

import "math/bits"

// The multiplier C = 47026247687942121848144207491837418733, split into
// 64-bit halves. The increment is 1.
const (
	multHi uint64 = 0x2360ed051fc65da4
	multLo uint64 = 0x4385df649fcb5ced
)

// Random is a 128-bit linear congruential generator:
//
//	state = state*C + 1 (mod 2^128)
//
// Each step yields bits [32, 96) of the new state. It spreads the entropy of
// a single wide hash over as many 64-bit values as needed.
type Random struct {
	hi, lo uint64
}

// Seed returns a generator whose state is the 128-bit value hi:lo. A signed
// 128-bit hash is used as-is, reinterpreted as unsigned.
func Seed(hi, lo uint64) *Random {
	return &Random{hi: hi, lo: lo}
}

// Next advances the state and returns the next output.
func (r *Random) Next() uint64 {
	hi, lo := bits.Mul64(r.lo, multLo)
	hi += r.hi*multLo + r.lo*multHi

	var carry uint64
	lo, carry = bits.Add64(lo, 1, 0)
	hi += carry

	r.hi, r.lo = hi, lo
	return hi<<32 | lo>>32
}
