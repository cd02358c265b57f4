// Package fenwick provides lists of numbers supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, is a space-efficient list
// data structure that can efficiently update elements and calculate
// prefix sums in a list of numbers. Both operations run in O(log n)
// time while using the same amount of memory as a plain slice. This is
// achieved by representing the list as an implicit tree, where the
// value of each node is the sum of the numbers in that subtree.
//
// RangeList pairs two such trees to also support adding a value to a
// whole range of elements in O(log n).
package fenwick

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// List represents a list of numbers with support for efficient
// prefix sum computation. The zero value is an empty list.
type List[T Number] struct {
	// tree[k] holds the sum of t[k&(k+1)] through t[k] of the
	// underlying array t. The prefix sum t[0] + ... + t[k-1] is the sum
	// of tree entries found by repeatedly clearing the lowest set bit
	// of k.
	tree []T
}

// New creates a new list with the given elements.
func New[T Number](values ...T) *List[T] {
	n := len(values)
	tree := make([]T, n)
	copy(tree, values)
	for i := range tree {
		if j := i | (i + 1); j < n {
			tree[j] += tree[i]
		}
	}
	return &List[T]{tree: tree}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.tree)
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) T {
	return l.SumRange(i, i+1)
}

// Set sets the element at index i to x.
func (l *List[T]) Set(i int, x T) {
	l.Add(i, x-l.Get(i))
}

// Add adds x to the element at index i.
func (l *List[T]) Add(i int, x T) {
	for n := len(l.tree); i < n; i |= i + 1 {
		l.tree[i] += x
	}
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List[T]) Sum(i int) T {
	var sum T
	for i > 0 {
		sum += l.tree[i-1]
		i &= i - 1
	}
	return sum
}

// SumRange returns the sum of the elements from index i to index j-1.
func (l *List[T]) SumRange(i, j int) T {
	var sum T
	for j > i {
		sum += l.tree[j-1]
		j &= j - 1
	}
	for i > j {
		sum -= l.tree[i-1]
		i &= i - 1
	}
	return sum
}
