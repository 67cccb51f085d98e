// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import "cmp"

// Insert stores a value under a key, possibly overwriting an existing
// one. It returns the old value associated with the key, if any.
func (tree *Tree[K, V]) Insert(key K, value V) (V, bool) {
	var old V

	// Early exit if this is the first node.
	if tree.root == nil {
		tree.root = &node[K, V]{key: key, value: value}
		tree.count = 1
		return old, false
	}

	tree.path = tree.path[:0]

	// Traverse the tree to find a matching key or a new location.
	n := tree.root
	for {
		c := cmp.Compare(key, n.key)
		if c == 0 {
			// Equal keys overwrite in place. The shape of the
			// tree is unchanged, so no rebalancing is needed.
			old = n.value
			n.value = value
			return old, true
		}
		if c < 0 {
			tree.path = append(tree.path, step[K, V]{node: n, dir: -1})
			if n.left == nil {
				n.left = &node[K, V]{key: key, value: value}
				break
			}
			n = n.left
		} else {
			tree.path = append(tree.path, step[K, V]{node: n, dir: +1})
			if n.right == nil {
				n.right = &node[K, V]{key: key, value: value}
				break
			}
			n = n.right
		}
	}
	tree.count++

	// Retrace from the new leaf towards the root. Each ancestor's
	// balance moves towards the side that grew. The walk ends as soon
	// as a subtree keeps its former height: either the balance returns
	// to zero, or a rotation restores the height, which happens at most
	// once per insertion.
	for i := len(tree.path) - 1; i >= 0; i-- {
		p := tree.path[i].node
		p.balance += tree.path[i].dir
		if p.balance == 0 {
			break
		}
		if p.balance == -2 || p.balance == 2 {
			tree.rebalance(i)
			break
		}
	}
	return old, false
}
