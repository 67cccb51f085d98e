// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import "cmp"

// Tree is an ordered key-value map backed by an AVL tree. Keys are kept
// in their natural order; all mutating and searching operations run in
// time proportional to the height of the tree, which the balancing keeps
// logarithmic in the number of stored keys.
//
// The zero value is not usable; create instances with New.
type Tree[K cmp.Ordered, V any] struct {
	root  *node[K, V]
	count int

	// Scratch stack used to track the steps of the descent-based
	// algorithms. Allocating it in each of the methods would put
	// allocation on the critical path, so it happens only once, in the
	// constructor. The buffer is never visible outside the tree.
	path []step[K, V]
}

// New creates an initially empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
		path:  make([]step[K, V], 0, 128),
	}
}

// IsEmpty is true if the tree contains no data.
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Count returns the number of keys currently in the tree. The value is
// cached and updated on successful inserts and deletes, making the call
// constant-time.
func (tree *Tree[K, V]) Count() int {
	return tree.count
}
