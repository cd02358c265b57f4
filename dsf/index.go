package dsf

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// keyIndex maps keys to dense ids, keeping keys sorted so they can be
// walked in order.
type keyIndex[K constraints.Ordered] struct {
	keys []K
	ids  []int
}

func newKeyIndex[K constraints.Ordered](initialCapacity uint) *keyIndex[K] {
	return &keyIndex[K]{
		keys: make([]K, 0, initialCapacity),
		ids:  make([]int, 0, initialCapacity),
	}
}

func (s keyIndex[K]) Len() int {
	return len(s.keys)
}

func (s keyIndex[K]) String() string {
	return fmt.Sprintf("KeyIndex(size=%d, keys=%v)", len(s.keys), s.keys)
}

// Add records key under id. It returns false, leaving the index
// unchanged, if key is already present.
func (s *keyIndex[K]) Add(key K, id int) bool {
	idx := s.findIndex(key)

	if idx < len(s.keys) && s.keys[idx] == key {
		return false
	}

	var zero K
	s.keys = append(s.keys, zero)
	s.ids = append(s.ids, 0)

	copy(s.keys[idx+1:], s.keys[idx:])
	copy(s.ids[idx+1:], s.ids[idx:])

	s.keys[idx] = key
	s.ids[idx] = id

	return true
}

// Find returns the id stored for key.
func (s keyIndex[K]) Find(key K) (int, bool) {
	idx := s.findIndex(key)

	if idx < s.Len() && s.keys[idx] == key {
		return s.ids[idx], true
	}

	return 0, false
}

func (s keyIndex[K]) findIndex(key K) int {
	// Linear scan beats binary search on very small indexes.
	if len(s.keys) < 30 {
		for i, k := range s.keys {
			if k >= key {
				return i
			}
		}
		return len(s.keys)
	}

	return sort.Search(len(s.keys), func(i int) bool {
		return s.keys[i] >= key
	})
}

// Iterate calls f for every key in ascending order until f returns
// false.
func (s keyIndex[K]) Iterate(f func(key K, id int) bool) {
	for i := 0; i < s.Len(); i++ {
		if !f(s.keys[i], s.ids[i]) {
			break
		}
	}
}
