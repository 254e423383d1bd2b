package bitline

import (
	"io"
)

// WriteTo writes the raw bytes of the line to w. No length prefix is written,
// the length is implied by the enclosing record.
func (b *BitLine) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.bits)
	return int64(n), err
}

// Load reads r to EOF and returns a line holding everything read.
func Load(r io.Reader) (*BitLine, error) {
	bits, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &BitLine{bits: bits}, nil
}
