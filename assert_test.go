package sorted

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/kelindar/bitmap"
	"github.com/stretchr/testify/assert"
)

// newInts builds an int set from values given in any order (must be unique)
func newInts(values ...int) *Set[int] {
	s := New[int]()
	for _, v := range values {
		if err := s.Insert(v); err != nil {
			panic(err)
		}
	}
	return s
}

// entry is a keyed element with a payload, ordered by key only
type entry struct {
	Key int
	Tag string
}

func byKey(a, b entry) int {
	return cmp.Compare(a.Key, b.Key)
}

func newEntries(elems ...entry) *Set[entry] {
	s := NewFunc(byKey)
	for _, e := range elems {
		if err := s.Insert(e); err != nil {
			panic(err)
		}
	}
	return s
}

// keepLeft and keepRight are fixed tie-breaks for merging
func keepLeft[T any](l, r T) Side  { return Left }
func keepRight[T any](l, r T) Side { return Right }

// passThrough keeps every aligned element unchanged
func passThrough[T any](al Alignment[T]) (T, bool) {
	return al.Value, true
}

// dropAll vetoes every aligned element
func dropAll[T any](al Alignment[T]) (T, bool) {
	var zero T
	return zero, false
}

// assertSorted verifies the strict-ascending invariant of a set
func assertSorted[T any](t *testing.T, s *Set[T]) {
	v := s.Values()
	for i := 1; i < len(v); i++ {
		assert.Negative(t, s.cmp(v[i-1], v[i]), "adjacent pair out of order at %d", i)
	}
}

// ---------------------------------------- Test Helpers ----------------------------------------

// testPair creates both our set and a reference bitmap with the same data
func testPair(data []uint32) (*Set[uint32], *bitmap.Bitmap) {
	our := New[uint32]()
	var ref bitmap.Bitmap
	for _, v := range data {
		if !ref.Contains(v) {
			ref.Set(v)
			if err := our.Insert(v); err != nil {
				panic(err)
			}
		}
	}
	return our, &ref
}

// valuesOf collects the set contents into a slice
func valuesOf[T any](s *Set[T]) []T {
	out := make([]T, 0, s.Len())
	s.Range(func(v T) {
		out = append(out, v)
	})
	return out
}

// ---------------------------------------- Data Generators ----------------------------------------

type dataGen = func() ([]uint32, string)

// genSeq creates consecutive integers starting from offset
func genSeq(size int, offset uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = offset + uint32(i)
		}
		return data, "seq"
	}
}

// genRand creates random integers within a range
func genRand(size int, maxVal uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(int(maxVal)))
		}
		return data, "rnd"
	}
}

// genSparse creates sparse integers (large gaps)
func genSparse(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(i * 1000)
		}
		return data, "sps"
	}
}
