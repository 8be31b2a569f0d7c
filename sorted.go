// Package sorted provides an ordered set of unique elements backed by a
// single contiguous slice, with linear-time merge and alignment operations
// for combining two sets.
package sorted

import (
	"cmp"
	"errors"
	"iter"
	"slices"
)

var (
	// ErrDuplicate is returned by Insert when an equal element already exists.
	ErrDuplicate = errors.New("sorted: element already exists")

	// ErrOutOfOrder is returned by Push when the element does not strictly
	// exceed the current maximum.
	ErrOutOfOrder = errors.New("sorted: element is not greater than the current maximum")
)

// Set represents a strictly ascending sequence of unique elements. For every
// adjacent pair the comparator must report the left element as smaller, which
// enforces order and uniqueness with a single predicate. All operations except
// writes through Values preserve this invariant.
type Set[T any] struct {
	cmp  func(a, b T) int
	data []T
}

// New creates an empty set using the natural order of T.
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc[T](cmp.Compare)
}

// WithCapacity creates an empty set using the natural order of T, with room
// preallocated for the given number of elements.
func WithCapacity[T cmp.Ordered](capacity int) *Set[T] {
	return WithCapacityFunc[T](cmp.Compare, capacity)
}

// NewFunc creates an empty set ordered by the given comparator. The comparator
// must describe a strict total order: it may project a key out of T, which
// allows distinct instances to compare equal while carrying different payloads.
func NewFunc[T any](compare func(a, b T) int) *Set[T] {
	return WithCapacityFunc(compare, 0)
}

// WithCapacityFunc creates an empty set ordered by the given comparator, with
// room preallocated for the given number of elements.
func WithCapacityFunc[T any](compare func(a, b T) int, capacity int) *Set[T] {
	return &Set[T]{
		cmp:  compare,
		data: make([]T, 0, capacity),
	}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.data)
}

// Contains checks whether an element equal to v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.search(v)
	return ok
}

// Get returns a copy of the element at position i. It panics if i is out of
// range, consistent with slice indexing.
func (s *Set[T]) Get(i int) T {
	return s.data[i]
}

// Values returns the backing slice in ascending order. Reading through it is
// always safe. Writing through it can break the order/uniqueness invariant;
// a caller that does so must restore the invariant before using the set again.
func (s *Set[T]) Values() []T {
	return s.data
}

// Range calls fn for each element in ascending order.
func (s *Set[T]) Range(fn func(v T)) {
	for _, v := range s.data {
		fn(v)
	}
}

// All returns an in-order iterator over the elements.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Insert adds v at its sorted position, shifting later elements. It returns
// ErrDuplicate and leaves the set unchanged if an equal element exists.
func (s *Set[T]) Insert(v T) error {
	i, found := s.search(v)
	if found {
		return ErrDuplicate
	}

	s.data = slices.Insert(s.data, i, v)
	return nil
}

// Push appends v at the end. It requires v to be strictly greater than the
// current maximum (or the set to be empty) and returns ErrOutOfOrder
// otherwise. This is what lets Merge and Align build their output in linear
// time without searching.
func (s *Set[T]) Push(v T) error {
	if n := len(s.data); n > 0 && s.cmp(s.data[n-1], v) >= 0 {
		return ErrOutOfOrder
	}

	s.data = append(s.data, v)
	return nil
}

// Retain keeps only the elements for which keep returns true, in place.
// Removal cannot reorder survivors, so the invariant holds automatically.
func (s *Set[T]) Retain(keep func(v T) bool) {
	out := s.data[:0]
	for _, v := range s.data {
		if keep(v) {
			out = append(out, v)
		}
	}
	s.data = out
}

// Clone returns an independent copy of the set sharing the comparator.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		cmp:  s.cmp,
		data: slices.Clone(s.data),
	}
}

// mustPush appends v during a merge or alignment scan. The scan visits keys
// in ascending order, so a Push failure here means the algorithm itself (or a
// misbehaving comparator) is broken and we cannot trust the output.
func (s *Set[T]) mustPush(v T) {
	if err := s.Push(v); err != nil {
		panic("sorted: out-of-order append while building result")
	}
}
