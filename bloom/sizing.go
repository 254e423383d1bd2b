package bloom

import (
	"fmt"
	"math"
)

// Sizes at or above maxSizeInBits are rejected before converting to uint64.
const maxSizeInBits = float64(1 << 63)

// Params derives the bit array size and the number of indices per element
// for the expected number of items and the target false-positive rate:
//
//	m = -n * ln(p) / ln(2)^2
//	sizeInBits = uint64(m)
//	k = uint64(m / n * ln(2))
//
// Both conversions truncate. The bit array backing a filter rounds
// sizeInBits up to a whole number of bytes.
func Params(expectedItems uint64, falsePositiveRate float64) (sizeInBits uint64, k uint64, err error) {
	if err := CheckParams(expectedItems, falsePositiveRate); err != nil {
		return 0, 0, err
	}

	n := float64(expectedItems)
	m := -n * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2)
	if m >= maxSizeInBits {
		return 0, 0, fmt.Errorf("%w: %g bits", ErrSizeTooLarge, m)
	}
	return uint64(m), uint64(m / n * math.Ln2), nil
}

// CheckParams validates the construction parameters.
func CheckParams(expectedItems uint64, falsePositiveRate float64) error {
	// NaN fails both comparisons, so test for the valid range.
	if !(falsePositiveRate > 0 && falsePositiveRate < 1) {
		return fmt.Errorf("%w: false_positive_rate must be between 0 and 1", ErrInvalidArgument)
	}
	if expectedItems == 0 {
		return fmt.Errorf("%w: expected_items must be greater than 0", ErrInvalidArgument)
	}
	return nil
}
