package bloom

import (
	"fmt"
	"io"
)

// DecodeHeader returns k from the first HeaderBytes of b.
func DecodeHeader(b []byte) (uint64, error) {
	if len(b) < HeaderBytes {
		return 0, fmt.Errorf("%w: %d of %d bytes: %w", ErrShortHeader, len(b), HeaderBytes, io.ErrUnexpectedEOF)
	}
	return readU64LE(b[:HeaderBytes]), nil
}

// EncodeHeader writes k into the first HeaderBytes of b.
func EncodeHeader(b []byte, k uint64) error {
	if len(b) < HeaderBytes {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortHeader, len(b), HeaderBytes)
	}
	writeU64LE(b[:HeaderBytes], k)
	return nil
}

// checkBody rejects bodies that cannot be indexed into.
func checkBody(k uint64, bodyBytes int) error {
	if k > 0 && bodyBytes == 0 {
		return fmt.Errorf("%w: k=%d", ErrCorruptFilter, k)
	}
	return nil
}
