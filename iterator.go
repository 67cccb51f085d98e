// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

// The traversals run a depth-first search driven by the shared scratch
// stack, chosen over breadth-first search for its predictable memory
// needs: the stack holds at most one path worth of nodes per level. Each
// call reseeds the stack, so traversals are safe to re-run at any time.
// Children are pushed left before right, so the emission order is a
// right-biased depth-first order, not the sorted order.

// Keys collects every key in the tree, in a deterministic depth-first
// order. An empty tree yields a nil slice.
func (tree *Tree[K, V]) Keys() []K {
	if tree.root == nil {
		return nil
	}

	keys := make([]K, 0, tree.count)
	tree.path = append(tree.path[:0], step[K, V]{node: tree.root})
	for len(tree.path) > 0 {
		keys = append(keys, tree.next().key)
	}
	return keys
}

// Values collects every value in the tree, in the same deterministic
// depth-first order as Keys. An empty tree yields a nil slice.
func (tree *Tree[K, V]) Values() []V {
	if tree.root == nil {
		return nil
	}

	values := make([]V, 0, tree.count)
	tree.path = append(tree.path[:0], step[K, V]{node: tree.root})
	for len(tree.path) > 0 {
		values = append(values, tree.next().value)
	}
	return values
}

// next pops the top of the scratch stack and pushes its children, left
// before right.
func (tree *Tree[K, V]) next() *node[K, V] {
	top := tree.path[len(tree.path)-1].node
	tree.path = tree.path[:len(tree.path)-1]
	if top.left != nil {
		tree.path = append(tree.path, step[K, V]{node: top.left})
	}
	if top.right != nil {
		tree.path = append(tree.path, step[K, V]{node: top.right})
	}
	return top
}
