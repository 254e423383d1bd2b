package bloom

import "fmt"

// CheckCompatible returns ErrIncompatibleFilters unless a and b have the same
// k, the same size and the same hash function. Every operation combining two
// filters calls it before touching any bits.
func CheckCompatible[T comparable](a, b *Filter[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil filter", ErrInvalidArgument)
	}
	if a.k != b.k || a.bits.Len() != b.bits.Len() {
		return fmt.Errorf("%w: size and max false positive rate must be the same for both filters", ErrIncompatibleFilters)
	}
	if !sameHasher(a.hasher, b.hasher) {
		return fmt.Errorf("%w: bloom filters must have the same hash function", ErrIncompatibleFilters)
	}
	return nil
}

// Equal reports whether f and other hold identical bits.
func (f *Filter[T]) Equal(other *Filter[T]) (bool, error) {
	if err := CheckCompatible(f, other); err != nil {
		return false, err
	}
	return f.bits.Equal(other.bits), nil
}

// NotEqual is the negation of Equal.
func (f *Filter[T]) NotEqual(other *Filter[T]) (bool, error) {
	eq, err := f.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// IsStrictSubset reports whether f is a subset of other and not equal to it.
func (f *Filter[T]) IsStrictSubset(other *Filter[T]) (bool, error) {
	if err := CheckCompatible(f, other); err != nil {
		return false, err
	}
	return f.bits.IsStrictSubset(other.bits), nil
}

// IsStrictSuperset reports whether other is a strict subset of f.
func (f *Filter[T]) IsStrictSuperset(other *Filter[T]) (bool, error) {
	if err := CheckCompatible(f, other); err != nil {
		return false, err
	}
	return other.bits.IsStrictSubset(f.bits), nil
}

// IsSubset reports whether every element in f may be in other.
//
// False positives are possible: true may be returned when f holds an element
// other does not. A false result is definite.
func (f *Filter[T]) IsSubset(other Source[T]) (bool, error) {
	o, err := f.asFilter(other)
	if err != nil {
		return false, err
	}
	return f.bits.IsSubset(o.bits), nil
}

// IsSuperset reports whether every element in other may be in f. As with
// IsSubset, a true result may be a false positive.
func (f *Filter[T]) IsSuperset(other Source[T]) (bool, error) {
	o, err := f.asFilter(other)
	if err != nil {
		return false, err
	}
	return o.bits.IsSubset(f.bits), nil
}

// asFilter returns other when it is a compatible filter, otherwise a filter
// of the same shape as f holding every element of the stream.
func (f *Filter[T]) asFilter(other Source[T]) (*Filter[T], error) {
	if of, ok := other.filter(); ok {
		if err := CheckCompatible(f, of); err != nil {
			return nil, err
		}
		return of, nil
	}
	tmp := f.zeroedClone()
	if err := tmp.addSeq(other.elements()); err != nil {
		return nil, err
	}
	return tmp, nil
}
