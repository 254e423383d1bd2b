package lcg

import "iter"

// GenerateIndexes returns exactly k bit positions in [0, n) derived from the
// 128-bit hash hi:lo.
//
// The result is a pure function of its arguments: every range over the
// returned sequence reseeds, so it may be consumed more than once. Positions
// within one sequence may repeat.
//
// n must be non-zero when k is non-zero.
func GenerateIndexes(hi, lo, k, n uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		r := Seed(hi, lo)
		for range k {
			if !yield(r.Next() % n) {
				return
			}
		}
	}
}

// AppendIndexes appends the positions GenerateIndexes would produce to dst.
func AppendIndexes(dst []uint64, hi, lo, k, n uint64) []uint64 {
	r := Seed(hi, lo)
	for range k {
		dst = append(dst, r.Next()%n)
	}
	return dst
}
