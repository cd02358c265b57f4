// Package dsf implements a disjoint-set forest: a collection of
// elements partitioned into non-overlapping sets, with near-constant
// time union and membership queries.
//
// Each set is a tree whose root is the set's representative. Union by
// rank keeps the trees shallow and path compression flattens them
// further on every lookup, so both United and Unite run in
// O(α(n) log n), where the log n factor comes from locating the
// element's id in the ordered key index.
package dsf

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ErrUnknownElement is returned when an operation names an element
// that was never added with MakeSet.
var ErrUnknownElement = errors.New("dsf: unknown element")

// Forest is a disjoint-set forest over keys of type K. The zero value
// is not usable; create forests with New.
type Forest[K constraints.Ordered] struct {
	index *keyIndex[K]
	root  []int
	rank  []int
	sets  int
}

// New returns an empty forest.
func New[K constraints.Ordered]() *Forest[K] {
	return &Forest[K]{index: newKeyIndex[K](0)}
}

// Elements returns the number of elements added so far.
func (f *Forest[K]) Elements() int {
	return len(f.root)
}

// Sets returns the number of disjoint sets.
func (f *Forest[K]) Sets() int {
	return f.sets
}

func (f *Forest[K]) String() string {
	return fmt.Sprintf("DSF<elements=%d, sets=%d>", f.Elements(), f.sets)
}

// MakeSet adds x as a new singleton set. It returns false if x is
// already in the forest.
func (f *Forest[K]) MakeSet(x K) bool {
	id := len(f.root)
	if !f.index.Add(x, id) {
		return false
	}
	f.root = append(f.root, id)
	f.rank = append(f.rank, 0)
	f.sets++
	return true
}

func (f *Forest[K]) findRoot(id int) int {
	if f.root[id] != id {
		f.root[id] = f.findRoot(f.root[id])
	}
	return f.root[id]
}

func (f *Forest[K]) lookup(x K) (int, error) {
	id, ok := f.index.Find(x)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownElement, "%v", x)
	}
	return f.findRoot(id), nil
}

// United reports whether x and y belong to the same set.
func (f *Forest[K]) United(x, y K) (bool, error) {
	rx, err := f.lookup(x)
	if err != nil {
		return false, err
	}
	ry, err := f.lookup(y)
	if err != nil {
		return false, err
	}
	return rx == ry, nil
}

// Unite merges the sets containing x and y.
func (f *Forest[K]) Unite(x, y K) error {
	r1, err := f.lookup(x)
	if err != nil {
		return err
	}
	r2, err := f.lookup(y)
	if err != nil {
		return err
	}
	if r1 == r2 {
		return nil
	}
	f.sets--
	if f.rank[r1] < f.rank[r2] {
		f.root[r1] = r2
		return nil
	}
	f.root[r2] = r1
	if f.rank[r1] == f.rank[r2] {
		f.rank[r1]++
	}
	return nil
}

// All returns every set. Sets are ordered by when their representative
// was added, and each set lists its members in ascending order.
func (f *Forest[K]) All() [][]K {
	byRoot := make(map[int][]K, f.sets)
	f.index.Iterate(func(key K, id int) bool {
		r := f.findRoot(id)
		byRoot[r] = append(byRoot[r], key)
		return true
	})
	out := make([][]K, 0, len(byRoot))
	for id := range f.root {
		if members, ok := byRoot[id]; ok {
			out = append(out, members)
		}
	}
	return out
}
