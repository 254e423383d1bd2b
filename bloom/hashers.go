package bloom

import (
	"crypto/sha256"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Reproducible hashers for string elements. Their output only depends on the
// element, so filters built with them can be saved and loaded again. Each is
// a single process-wide value, so filters built with the same one are
// compatible.
var (
	// XXHash is the 64-bit xxHash digest, zero-extended.
	XXHash = &Hasher[string]{fn: xxHashString}

	// Murmur3 is the 128-bit x64 MurmurHash3 digest.
	Murmur3 = &Hasher[string]{fn: murmur3String}

	// SHA256 takes the first 16 bytes of the SHA-256 digest as an unsigned
	// big-endian integer and subtracts 2^127, centering it on zero.
	SHA256 = &Hasher[string]{fn: sha256String}
)

func xxHashString(s string) (Hash, error) {
	return HashUint64(xxhash.Sum64String(s)), nil
}

func murmur3String(s string) (Hash, error) {
	h1, h2 := murmur3.Sum128([]byte(s))
	return Hash{Hi: h1, Lo: h2}, nil
}

func sha256String(s string) (Hash, error) {
	sum := sha256.Sum256([]byte(s))
	// Subtracting 2^127 from an unsigned 128-bit value flips its top bit.
	return Hash{
		Hi: readU64BE(sum[0:8]) ^ (1 << 63),
		Lo: readU64BE(sum[8:16]),
	}, nil
}
