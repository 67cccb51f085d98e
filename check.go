// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import (
	"cmp"
	"fmt"
)

// Check verifies the structural invariants of the tree: strict key
// ordering, stored balance factors against recomputed subtree heights,
// the AVL height rule and the cached node count. It returns nil when the
// tree is well formed and a descriptive error naming the offending key
// otherwise. Intended for tests and diagnostics, it visits every node.
func (tree *Tree[K, V]) Check() error {
	seen := 0
	if _, err := check(tree.root, nil, nil, &seen); err != nil {
		return err
	}
	if seen != tree.count {
		return fmt.Errorf("cached count %d, actual node count %d", tree.count, seen)
	}
	return nil
}

// Height recomputes the height of the tree: the number of nodes on the
// longest root-to-leaf path, zero for an empty tree.
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// internal: consistency checker, returns the height of the sub-tree
func check[K cmp.Ordered, V any](n *node[K, V], lo, hi *K, seen *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, fmt.Errorf("key %v breaks ordering: not greater than %v", n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, fmt.Errorf("key %v breaks ordering: not lesser than %v", n.key, *hi)
	}
	*seen++

	hl, err := check(n.left, lo, &n.key, seen)
	if err != nil {
		return 0, err
	}
	hr, err := check(n.right, &n.key, hi, seen)
	if err != nil {
		return 0, err
	}

	if n.balance < -1 || n.balance > 1 {
		return 0, fmt.Errorf("key %v: balance factor %d out of range", n.key, n.balance)
	}
	if n.balance != hr-hl {
		return 0, fmt.Errorf("key %v: balance factor %d, subtree heights %d/%d", n.key, n.balance, hl, hr)
	}
	return max(hl, hr) + 1, nil
}

// internal: recomputed height of a sub-tree
func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}
