// Package segtree provides a fixed-size sequence supporting range
// aggregation queries and range updates in O(log n) time.
//
// The tree is an implicit binary tree laid out in a flat slice, where
// each node holds the aggregate of a contiguous index range. Updates
// covering a whole node are not pushed to the node's children right
// away: they are recorded as a pending delta and only propagated one
// level down when a later query or update has to look inside the node
// (lazy propagation).
//
// What "aggregate" and "update" mean is up to the caller and is
// supplied as an Algebra. See algebra.go for the stock instantiations.
package segtree

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrOutOfRange is returned when an index or index range does not
	// lie within [0, Len()-1].
	ErrOutOfRange = errors.New("segtree: index out of range")

	// ErrInvalidArgument is returned when a tree is constructed with a
	// negative size.
	ErrInvalidArgument = errors.New("segtree: invalid argument")
)

// Algebra describes how values aggregate and how deltas modify them.
//
// V is the element (and aggregate) type and D the update type. The
// methods must be free of side effects and satisfy:
//
//   - JoinValues(x, JoinValues(y, z)) == JoinValues(JoinValues(x, y), z)
//   - JoinDeltas(d1, JoinDeltas(d2, d3)) == JoinDeltas(JoinDeltas(d1, d2), d3)
//   - ApplyDelta of d to the aggregate of m equal values equals the
//     aggregate of m copies of ApplyDelta(v, d, 1)
//   - applying d1, ..., dm one after another is the same as applying
//     JoinDeltas(d1, ..., dm) once
//
// None of this is checked at runtime; an algebra that breaks these laws
// makes the tree return wrong aggregates.
type Algebra[V, D any] interface {
	// JoinValues combines the aggregates of two adjacent ranges.
	JoinValues(a, b V) V
	// ApplyDelta returns the aggregate of length leaves, previously
	// aggregating to v, after d has been applied to each of them.
	ApplyDelta(v V, d D, length int) V
	// JoinDeltas returns a delta equivalent to applying older and then
	// newer.
	JoinDeltas(older, newer D) D
}

type node[V, D any] struct {
	value V
	delta D
	// pending is set when delta has been applied to neither value nor
	// the node's children.
	pending bool
}

// Tree is a lazy-propagation segment tree over n elements. The zero
// value is not usable; create trees with New or FromSlice.
//
// A Tree must not be used concurrently.
type Tree[V, D any, A Algebra[V, D]] struct {
	alg   A
	n     int
	nodes []node[V, D]
}

// New creates a tree of n elements, each set to fill.
func New[V, D any, A Algebra[V, D]](n int, fill V, alg A) (*Tree[V, D, A], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative size %d", n)
	}
	t := newTree[V, D](n, alg)
	if n > 0 {
		t.build(0, 0, n-1, func(int) V { return fill })
	}
	return t, nil
}

// FromSlice creates a tree whose elements are a copy of values, in
// order. The tree does not retain values.
func FromSlice[V, D any, A Algebra[V, D]](values []V, alg A) (*Tree[V, D, A], error) {
	n := len(values)
	t := newTree[V, D](n, alg)
	if n > 0 {
		t.build(0, 0, n-1, func(i int) V { return values[i] })
	}
	return t, nil
}

func newTree[V, D any, A Algebra[V, D]](n int, alg A) *Tree[V, D, A] {
	// 4n slots cover the deepest node index of the mid-split layout for
	// any n, power of two or not.
	return &Tree[V, D, A]{
		alg:   alg,
		n:     n,
		nodes: make([]node[V, D], 4*n),
	}
}

func (t *Tree[V, D, A]) build(i, lo, hi int, leaf func(int) V) {
	if lo == hi {
		t.nodes[i].value = leaf(lo)
		return
	}
	mid := lo + (hi-lo)/2
	l, r := 2*i+1, 2*i+2
	t.build(l, lo, mid, leaf)
	t.build(r, mid+1, hi, leaf)
	t.nodes[i].value = t.alg.JoinValues(t.nodes[l].value, t.nodes[r].value)
}

// Len returns the number of elements in the tree.
func (t *Tree[V, D, A]) Len() int {
	return t.n
}

func (t *Tree[V, D, A]) String() string {
	return fmt.Sprintf("SegTree<size=%d>", t.n)
}

// checkRange reports whether [lo, hi] is a non-empty range of valid
// indices.
func (t *Tree[V, D, A]) checkRange(op string, lo, hi int) error {
	if lo < 0 || hi >= t.n || lo > hi {
		return errors.Wrapf(ErrOutOfRange, "%s [%d, %d] on tree of size %d", op, lo, hi, t.n)
	}
	return nil
}

// push applies the pending delta of node i, covering [lo, hi], to the
// node's value and hands it down to the node's children.
func (t *Tree[V, D, A]) push(i, lo, hi int) {
	nd := &t.nodes[i]
	if !nd.pending {
		return
	}
	nd.value = t.alg.ApplyDelta(nd.value, nd.delta, hi-lo+1)
	if lo != hi {
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			child := &t.nodes[c]
			if child.pending {
				child.delta = t.alg.JoinDeltas(child.delta, nd.delta)
			} else {
				child.delta = nd.delta
				child.pending = true
			}
		}
	}
	var zero D
	nd.delta = zero
	nd.pending = false
}

// At returns the element at index i.
func (t *Tree[V, D, A]) At(i int) (V, error) {
	if err := t.checkRange("at", i, i); err != nil {
		var zero V
		return zero, err
	}
	return t.query(0, 0, t.n-1, i, i), nil
}

// Query returns the aggregate of the elements in [lo, hi], inclusive.
func (t *Tree[V, D, A]) Query(lo, hi int) (V, error) {
	if err := t.checkRange("query", lo, hi); err != nil {
		var zero V
		return zero, err
	}
	return t.query(0, 0, t.n-1, lo, hi), nil
}

func (t *Tree[V, D, A]) query(i, lo, hi, qlo, qhi int) V {
	// Callers clip the target to the node, so it must be a non-empty
	// subrange of [lo, hi].
	if qlo < lo || qhi > hi || qlo > qhi {
		panic(errors.AssertionFailedf("query target [%d, %d] escapes node %d covering [%d, %d]",
			qlo, qhi, i, lo, hi))
	}
	t.push(i, lo, hi)
	if lo == qlo && hi == qhi {
		return t.nodes[i].value
	}
	mid := lo + (hi-lo)/2
	switch {
	case qhi <= mid:
		return t.query(2*i+1, lo, mid, qlo, qhi)
	case qlo > mid:
		return t.query(2*i+2, mid+1, hi, qlo, qhi)
	}
	return t.alg.JoinValues(
		t.query(2*i+1, lo, mid, qlo, mid),
		t.query(2*i+2, mid+1, hi, mid+1, qhi),
	)
}

// Update applies d to the element at index i.
func (t *Tree[V, D, A]) Update(i int, d D) error {
	if err := t.checkRange("update", i, i); err != nil {
		return err
	}
	t.update(0, 0, t.n-1, i, i, d)
	return nil
}

// UpdateRange applies d to every element in [lo, hi], inclusive.
func (t *Tree[V, D, A]) UpdateRange(lo, hi int, d D) error {
	if err := t.checkRange("update", lo, hi); err != nil {
		return err
	}
	t.update(0, 0, t.n-1, lo, hi, d)
	return nil
}

func (t *Tree[V, D, A]) update(i, lo, hi, ulo, uhi int, d D) {
	t.push(i, lo, hi)
	if hi < ulo || lo > uhi {
		return
	}
	if ulo <= lo && hi <= uhi {
		// push left the node clean, so d becomes its only pending delta.
		// Draining it right away keeps the node's value current while
		// its children stay pending.
		t.nodes[i].delta = d
		t.nodes[i].pending = true
		t.push(i, lo, hi)
		return
	}
	mid := lo + (hi-lo)/2
	l, r := 2*i+1, 2*i+2
	t.update(l, lo, mid, ulo, uhi, d)
	t.update(r, mid+1, hi, ulo, uhi, d)
	t.nodes[i].value = t.alg.JoinValues(t.nodes[l].value, t.nodes[r].value)
}

// Values returns a copy of every element, in index order.
func (t *Tree[V, D, A]) Values() []V {
	out := make([]V, 0, t.n)
	if t.n > 0 {
		t.collect(0, 0, t.n-1, &out)
	}
	return out
}

func (t *Tree[V, D, A]) collect(i, lo, hi int, out *[]V) {
	t.push(i, lo, hi)
	if lo == hi {
		*out = append(*out, t.nodes[i].value)
		return
	}
	mid := lo + (hi-lo)/2
	t.collect(2*i+1, lo, mid, out)
	t.collect(2*i+2, mid+1, hi, out)
}
