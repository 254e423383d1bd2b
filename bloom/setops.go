package bloom

import (
	"iter"
	"slices"
)

// Source is an operand of the multi-operand set operations: either another
// *Filter or a stream of elements made with Items or Seq.
type Source[T comparable] interface {
	filter() (*Filter[T], bool)
	elements() iter.Seq[T]
}

func (f *Filter[T]) filter() (*Filter[T], bool) { return f, true }
func (f *Filter[T]) elements() iter.Seq[T]      { return nil }

// Elements is a stream of elements used as a set operand.
type Elements[T comparable] iter.Seq[T]

func (e Elements[T]) filter() (*Filter[T], bool) { return nil, false }
func (e Elements[T]) elements() iter.Seq[T]      { return iter.Seq[T](e) }

// Items returns vs as a set operand.
func Items[T comparable](vs ...T) Elements[T] {
	return Elements[T](slices.Values(vs))
}

// Seq returns seq as a set operand.
func Seq[T comparable](seq iter.Seq[T]) Elements[T] {
	return Elements[T](seq)
}

func (f *Filter[T]) addSeq(seq iter.Seq[T]) error {
	if seq == nil {
		return nil
	}
	for v := range seq {
		if err := f.Add(v); err != nil {
			return err
		}
	}
	return nil
}

// Union returns a new filter holding f and every operand.
func (f *Filter[T]) Union(others ...Source[T]) (*Filter[T], error) {
	result := f.Copy()
	if err := result.Update(others...); err != nil {
		return nil, err
	}
	return result, nil
}

// Intersection returns a new filter holding what f has in common with every
// operand.
func (f *Filter[T]) Intersection(others ...Source[T]) (*Filter[T], error) {
	result := f.Copy()
	if err := result.IntersectionUpdate(others...); err != nil {
		return nil, err
	}
	return result, nil
}

// Update adds every operand to f. Filters are merged bitwise, element streams
// are inserted one element at a time. Operands are applied in order and a
// failure leaves the earlier ones applied.
func (f *Filter[T]) Update(others ...Source[T]) error {
	for _, other := range others {
		if of, ok := other.filter(); ok {
			if err := f.OrInPlace(of); err != nil {
				return err
			}
			continue
		}
		if err := f.addSeq(other.elements()); err != nil {
			return err
		}
	}
	return nil
}

// IntersectionUpdate keeps only what f has in common with every operand.
//
// An element stream is first inserted into a scratch filter of the same
// shape, which f is then intersected with. The scratch filter is allocated
// once and cleared between stream operands.
func (f *Filter[T]) IntersectionUpdate(others ...Source[T]) error {
	var scratch *Filter[T]
	for _, other := range others {
		if of, ok := other.filter(); ok {
			if err := f.AndInPlace(of); err != nil {
				return err
			}
			continue
		}

		if scratch == nil {
			scratch = f.zeroedClone()
		} else {
			scratch.Clear()
		}
		if err := scratch.addSeq(other.elements()); err != nil {
			return err
		}
		f.bits.AndWith(scratch.bits)
	}
	return nil
}

// Or returns f | other.
func (f *Filter[T]) Or(other *Filter[T]) (*Filter[T], error) {
	if err := CheckCompatible(f, other); err != nil {
		return nil, err
	}
	return &Filter[T]{bits: f.bits.Or(other.bits), k: f.k, hasher: f.hasher}, nil
}

// And returns f & other.
func (f *Filter[T]) And(other *Filter[T]) (*Filter[T], error) {
	if err := CheckCompatible(f, other); err != nil {
		return nil, err
	}
	return &Filter[T]{bits: f.bits.And(other.bits), k: f.k, hasher: f.hasher}, nil
}

// OrInPlace sets f = f | other.
func (f *Filter[T]) OrInPlace(other *Filter[T]) error {
	if err := CheckCompatible(f, other); err != nil {
		return err
	}
	f.bits.OrWith(other.bits)
	return nil
}

// AndInPlace sets f = f & other.
func (f *Filter[T]) AndInPlace(other *Filter[T]) error {
	if err := CheckCompatible(f, other); err != nil {
		return err
	}
	f.bits.AndWith(other.bits)
	return nil
}
