// Package bst implements a plain, unbalanced binary search tree.
//
// Insert, Erase and Find take O(log n) on average but degrade to O(n)
// when keys arrive in sorted order and the tree turns into a list.
// Shuffling the insertion order avoids that in practice.
package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order selects the traversal performed by Walk.
type Order int

const (
	PreOrder Order = iota - 1
	InOrder
	PostOrder
)

type node[K constraints.Ordered, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
}

// Tree maps keys to values. Keys are unique. The zero value is an
// empty tree ready to use.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no keys.
func (t *Tree[K, V]) Empty() bool {
	return t.root == nil
}

func (t *Tree[K, V]) String() string {
	return fmt.Sprintf("BST<size=%d>", t.size)
}

// Insert adds key with value val. It returns false, leaving the tree
// unchanged, if key is already present.
func (t *Tree[K, V]) Insert(key K, val V) bool {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key < n.key:
			link = &n.left
		case n.key < key:
			link = &n.right
		default:
			return false
		}
	}
	*link = &node[K, V]{key: key, val: val}
	t.size++
	return true
}

// Erase removes key from the tree, reporting whether it was present.
func (t *Tree[K, V]) Erase(key K) bool {
	link := &t.root
	for *link != nil && (*link).key != key {
		if key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	n := *link
	if n == nil {
		return false
	}

	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// Replace n's entry with its in-order successor and unlink the
		// successor, which has no left child.
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		n.key, n.val = (*succ).key, (*succ).val
		*succ = (*succ).right
	}
	t.size--
	return true
}

// Find returns a pointer to the value stored under key, or nil if key
// is absent. The value may be modified through the pointer.
func (t *Tree[K, V]) Find(key K) *V {
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case n.key < key:
			n = n.right
		default:
			return &n.val
		}
	}
	return nil
}

// Walk calls f for every entry in the given order until f returns
// false. InOrder visits keys in ascending order.
func (t *Tree[K, V]) Walk(f func(key K, val V) bool, order Order) {
	walk(t.root, f, order)
}

func walk[K constraints.Ordered, V any](n *node[K, V], f func(K, V) bool, order Order) bool {
	if n == nil {
		return true
	}
	if order == PreOrder && !f(n.key, n.val) {
		return false
	}
	if !walk(n.left, f, order) {
		return false
	}
	if order == InOrder && !f(n.key, n.val) {
		return false
	}
	if !walk(n.right, f, order) {
		return false
	}
	if order == PostOrder && !f(n.key, n.val) {
		return false
	}
	return true
}
