package sorted

// search performs a binary search for v in the backing slice.
// Returns (index, found) where index is the insertion point if not found.
func (s *Set[T]) search(v T) (int, bool) {
	return searchBy(s.data, func(x T) int {
		return s.cmp(x, v)
	})
}

// IndexBy performs a binary search using a caller-supplied probe against an
// implicit key. The probe must return the three-way comparison of its
// argument against the target and be monotone with respect to the set order.
// Returns (index, found) where index is the insertion point if not found.
func (s *Set[T]) IndexBy(probe func(v T) int) (int, bool) {
	return searchBy(s.data, probe)
}

// FindBy is like IndexBy but returns the element itself when found.
func (s *Set[T]) FindBy(probe func(v T) int) (T, bool) {
	if i, ok := searchBy(s.data, probe); ok {
		return s.data[i], true
	}

	var zero T
	return zero, false
}

// searchBy locates the element matching the probe in a sorted slice.
// Bounds are checked first so hits on either end cost two comparisons, then
// small slices fall back to a linear scan which beats binary search on
// cache-resident data.
func searchBy[T any](data []T, probe func(v T) int) (int, bool) {
	n := len(data)
	switch {
	case n == 0:
		return 0, false
	case probe(data[0]) > 0:
		return 0, false
	case probe(data[0]) == 0:
		return 0, true
	case probe(data[n-1]) < 0:
		return n, false
	case probe(data[n-1]) == 0:
		return n - 1, true
	case n <= 16:
		// Simple linear search for small slices
		for i, v := range data {
			switch c := probe(v); {
			case c == 0:
				return i, true
			case c > 0:
				return i, false
			}
		}
		return n, false
	default:
		lo, hi := 0, n
		for lo < hi {
			mid := lo + (hi-lo)>>1
			if probe(data[mid]) < 0 {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		return lo, lo < n && probe(data[lo]) == 0
	}
}
