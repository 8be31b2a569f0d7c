// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package sorted

// Side selects which of two equal elements survives a merge.
type Side uint8

const (
	Left Side = iota
	Right
)

// Merge combines s and other into a new set containing every key present in
// either input exactly once. Both inputs must be ordered by the same
// comparator; neither is modified. When a key is present on both sides, pick
// receives both instances and decides which one is kept. The scan is a single
// lock-step pass over both inputs, O(n+m) with no re-sorting.
func (s *Set[T]) Merge(other *Set[T], pick func(left, right T) Side) *Set[T] {
	out := WithCapacityFunc(s.cmp, len(s.data)+len(other.data))
	a, b := s.data, other.data
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch c := s.cmp(a[i], b[j]); {
		case c < 0:
			// Only on the left
			out.mustPush(a[i])
			i++
		case c > 0:
			// Only on the right
			out.mustPush(b[j])
			j++
		default:
			// On both sides, keep the chosen instance
			if pick(a[i], b[j]) == Right {
				out.mustPush(b[j])
			} else {
				out.mustPush(a[i])
			}
			i++
			j++
		}
	}

	// Drain whichever side still has elements. One of them is empty now.
	for ; i < len(a); i++ {
		out.mustPush(a[i])
	}
	for ; j < len(b); j++ {
		out.mustPush(b[j])
	}
	return out
}
