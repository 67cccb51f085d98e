// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import "cmp"

// Search finds the value associated with a particular key.
//
// Since every AVL tree is a binary search tree, the standard descent
// applies: lesser keys live to the left, greater keys to the right. The
// balance invariant bounds the number of visited nodes by the height of
// the tree, giving O(lg n) time and O(1) space.
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	n := tree.root
	for n != nil {
		c := cmp.Compare(key, n.key)
		if c == 0 {
			return n.value, true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	var none V
	return none, false
}

// Minimum finds the smallest key stored in the tree, following only left
// links from the root. The second return value is false when the tree is
// empty. The associated value is retrievable via Search.
func (tree *Tree[K, V]) Minimum() (K, bool) {
	if tree.root == nil {
		var none K
		return none, false
	}

	n := tree.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Maximum finds the greatest key stored in the tree, following only right
// links from the root. The second return value is false when the tree is
// empty.
func (tree *Tree[K, V]) Maximum() (K, bool) {
	if tree.root == nil {
		var none K
		return none, false
	}

	n := tree.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}
