package bloom

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/forestrie/go-rbloom/bitline"
)

// The persisted form of a filter is
//
//	offset 0      : k, uint64 little-endian
//	offset 8..end : the bit array, LSB0 within each byte
//
// There is no magic, version or checksum. The size of the bit array is
// whatever follows the header.

// WriteTo writes the persisted form of f to w.
//
// Filters using the built-in hash cannot be saved: the built-in hash is
// seeded per process, so the saved bits would be meaningless to any other
// process.
func (f *Filter[T]) WriteTo(w io.Writer) (int64, error) {
	if f.hasher == nil {
		return 0, ErrInvalidState
	}
	var hdr [HeaderBytes]byte
	if err := EncodeHeader(hdr[:], f.k); err != nil {
		return 0, err
	}
	n, err := w.Write(hdr[:])
	if err != nil {
		return int64(n), err
	}
	m, err := f.bits.WriteTo(w)
	return int64(n) + m, err
}

// MarshalBinary returns the persisted form of f.
func (f *Filter[T]) MarshalBinary() ([]byte, error) {
	if f.hasher == nil {
		return nil, ErrInvalidState
	}
	body := f.bits.Bytes()
	data := make([]byte, HeaderBytes+len(body))
	if err := EncodeHeader(data, f.k); err != nil {
		return nil, err
	}
	copy(data[HeaderBytes:], body)
	return data, nil
}

// SaveFile writes the persisted form of f to path, creating or truncating
// it. If the write fails the file is removed.
func (f *Filter[T]) SaveFile(path string) error {
	if f.hasher == nil {
		return ErrInvalidState
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = f.WriteTo(file)

	// Prioritize the write error but always close the file.
	if err1 := file.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Load reads a persisted filter from r, consuming r to EOF. h must be the
// hash function the filter was built with; the built-in hash is rejected.
func Load[T comparable](r io.Reader, h *Hasher[T]) (*Filter[T], error) {
	if err := checkLoadHasher(h); err != nil {
		return nil, err
	}

	var hdr [HeaderBytes]byte
	n, err := io.ReadFull(r, hdr[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %d of %d bytes: %w", ErrShortHeader, n, HeaderBytes, io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	k, err := DecodeHeader(hdr[:])
	if err != nil {
		return nil, err
	}

	bits, err := bitline.Load(r)
	if err != nil {
		return nil, err
	}
	if err := checkBody(k, len(bits.Bytes())); err != nil {
		return nil, err
	}
	return &Filter[T]{bits: bits, k: k, hasher: h}, nil
}

// LoadBytes decodes a persisted filter from data. See Load.
func LoadBytes[T comparable](data []byte, h *Hasher[T]) (*Filter[T], error) {
	if err := checkLoadHasher(h); err != nil {
		return nil, err
	}
	k, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	body := data[HeaderBytes:]
	if err := checkBody(k, len(body)); err != nil {
		return nil, err
	}
	return &Filter[T]{bits: bitline.FromBytes(body), k: k, hasher: h}, nil
}

// LoadFile reads a persisted filter from path. See Load.
func LoadFile[T comparable](path string, h *Hasher[T]) (*Filter[T], error) {
	if err := checkLoadHasher(h); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Load(file, h)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return f, nil
}

func checkLoadHasher[T any](h *Hasher[T]) error {
	if err := checkHasher(h); err != nil {
		return err
	}
	if h.IsDefault() {
		return fmt.Errorf("%w: cannot load a bloom filter that uses the built-in hash function", ErrInvalidArgument)
	}
	return nil
}
