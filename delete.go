// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import "cmp"

// Delete removes a key and its value from the tree. It reports whether
// the key was present; deleting an absent key leaves the tree untouched.
func (tree *Tree[K, V]) Delete(key K) bool {
	tree.path = tree.path[:0]

	// Traverse the tree to locate the node, recording the descent.
	n := tree.root
	for n != nil {
		c := cmp.Compare(key, n.key)
		if c == 0 {
			break
		}
		if c < 0 {
			tree.path = append(tree.path, step[K, V]{node: n, dir: -1})
			n = n.left
		} else {
			tree.path = append(tree.path, step[K, V]{node: n, dir: +1})
			n = n.right
		}
	}
	if n == nil {
		return false
	}

	// A node with both children is not unlinked directly: the key and
	// value of its in-order successor - the leftmost node of the right
	// subtree - are copied over it, and the successor, which cannot
	// have a left child, is unlinked in its place.
	if n.left != nil && n.right != nil {
		tree.path = append(tree.path, step[K, V]{node: n, dir: +1})
		s := n.right
		for s.left != nil {
			tree.path = append(tree.path, step[K, V]{node: s, dir: -1})
			s = s.left
		}
		n.key = s.key
		n.value = s.value
		n = s
	}

	// Splice the node out, replacing it with its lone child (if any).
	sub := n.left
	if sub == nil {
		sub = n.right
	}
	tree.relink(len(tree.path), sub)
	tree.count--

	// Retrace towards the root, shrinking the side the node was removed
	// from. Unlike insertion, a rotation does not end the walk: the
	// rotated subtree may still be shorter than before the removal, so
	// ancestors are re-examined until one keeps its height or the root
	// is reached.
	for i := len(tree.path) - 1; i >= 0; i-- {
		p := tree.path[i].node
		p.balance -= tree.path[i].dir
		if p.balance == -1 || p.balance == 1 {
			break
		}
		if p.balance != 0 && !tree.rebalance(i) {
			break
		}
	}
	return true
}
