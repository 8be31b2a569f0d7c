// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package sorted

// Kind classifies one element visited during an alignment scan, relative to
// the shared scan position in both inputs.
type Kind uint8

const (
	// Match marks a key present in both sets.
	Match Kind = iota

	// ExcessLeftHead marks a left-only key visited before the right cursor
	// has consumed any element, i.e. part of a leading run on the left.
	ExcessLeftHead

	// ExcessRightHead is the symmetric leading run on the right.
	ExcessRightHead

	// DisjointLeft marks a left-only key visited after the right side has
	// already consumed at least one element: an interior gap, not a head run.
	DisjointLeft

	// DisjointRight is the symmetric interior gap on the right.
	DisjointRight

	// ExcessLeftTail marks a left-only key visited after the right side ran
	// out entirely.
	ExcessLeftTail

	// ExcessRightTail is the symmetric trailing run on the right.
	ExcessRightTail
)

// Alignment is one classified element of an alignment scan. Value is the
// instance that produced the case (the left instance for a match) and
// Counterpart is the right instance, set only when Kind is Match. Both are
// views into the inputs valid for the duration of the classifier call.
type Alignment[T any] struct {
	Kind        Kind
	Value       T
	Counterpart T
}

// Align walks s and other in lock step, routes every element from either
// side through classify exactly once in ascending key order, and collects the
// survivors into a new set. Both inputs must be ordered by the same
// comparator; neither is modified.
//
// The classifier returns (replacement, true) to keep the element or
// (_, false) to drop it. A replacement must compare equal to the element that
// produced the case: it may be a different instance carrying the same key,
// but injecting a new key would corrupt the output order and panics.
func (s *Set[T]) Align(other *Set[T], classify func(al Alignment[T]) (T, bool)) *Set[T] {
	out := WithCapacityFunc(s.cmp, len(s.data)+len(other.data))
	a, b := s.data, other.data

	// i and j double as consumption counters for the head/disjoint split
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch c := s.cmp(a[i], b[j]); {
		case c < 0:
			kind := DisjointLeft
			if j == 0 {
				kind = ExcessLeftHead
			}
			out.classified(Alignment[T]{Kind: kind, Value: a[i]}, classify)
			i++
		case c > 0:
			kind := DisjointRight
			if i == 0 {
				kind = ExcessRightHead
			}
			out.classified(Alignment[T]{Kind: kind, Value: b[j]}, classify)
			j++
		default:
			out.classified(Alignment[T]{Kind: Match, Value: a[i], Counterpart: b[j]}, classify)
			i++
			j++
		}
	}

	// The remaining elements have no counterpart left to meet, so they all
	// classify as tail excess. One of the two loops is a no-op.
	for ; i < len(a); i++ {
		out.classified(Alignment[T]{Kind: ExcessLeftTail, Value: a[i]}, classify)
	}
	for ; j < len(b); j++ {
		out.classified(Alignment[T]{Kind: ExcessRightTail, Value: b[j]}, classify)
	}
	return out
}

// classified routes one alignment through the classifier and appends the
// survivor, enforcing the equal-key replacement contract.
func (s *Set[T]) classified(al Alignment[T], classify func(al Alignment[T]) (T, bool)) {
	v, keep := classify(al)
	if !keep {
		return
	}

	if s.cmp(al.Value, v) != 0 {
		panic("sorted: classifier replaced an element with a different key")
	}
	s.mustPush(v)
}
