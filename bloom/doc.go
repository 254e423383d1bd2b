package bloom

/*

# Bloom filters with a single wide hash

This package provides a classic Bloom filter: a fixed size bit array that
answers "may this element be in the set" with false positives but never with
false negatives.

- If the filter says "not present", the element was never added.
- If the filter says "maybe present", it may or may not have been added.

## Sizing

A filter is created from the number of elements it is expected to hold (n)
and the desired false-positive rate (p):

	m = -n * ln(p) / ln(2)^2    bits
	k = m / n * ln(2)           bit positions per element

Both are truncated to integers, and the bit array is rounded up to whole
bytes. See Params.

## One hash, k positions

Elements are hashed exactly once, to a signed 128-bit value (Hash). The k bit
positions are drawn from a 128-bit linear congruential generator seeded with
that value (package lcg), each reduced modulo the size of the bit array. The
hash is assumed to carry enough entropy on its own; the generator only
spreads it.

## Hash functions and compatibility

A filter either uses the built-in hash, which is hash/maphash with a seed
chosen once per process, or a caller supplied Hasher. Filters can only be
combined (union, intersection, comparison) when they are compatible: same k,
same size and the same hash function. Hash functions are compared by
identity, so two Hashers wrapping identical code are still different hash
functions. All built-in hashers count as one.

## Persistence

	+----------------------+  8 bytes, k little-endian
	| k                    |
	+----------------------+  the rest, LSB0 bit numbering
	| bit array            |
	+----------------------+

There is no magic number, version or checksum. Filters using the built-in
hash cannot be saved, and loading always requires an explicit, non built-in
Hasher, because the built-in hash is not reproducible across processes.

*/
