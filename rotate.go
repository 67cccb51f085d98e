// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import "cmp"

// rotateLeft restores a right-heavy subtree whose root p has reached
// balance +2. Depending on the right child's balance it applies a single
// left rotation or a right-left double rotation, recomputing only the
// balance factors of the nodes involved. It returns the new subtree root
// and whether the subtree lost one level of height.
func rotateLeft[K cmp.Ordered, V any](p *node[K, V]) (*node[K, V], bool) {
	q := p.right
	if q.balance >= 0 {
		// single left rotation
		p.right = q.left
		q.left = p
		if q.balance == 0 {
			// only reachable while retracing a deletion: the
			// subtree keeps its pre-rotation height
			p.balance = 1
			q.balance = -1
			return q, false
		}
		p.balance = 0
		q.balance = 0
		return q, true
	}

	// right-left double rotation
	r := q.left
	q.left = r.right
	r.right = q
	p.right = r.left
	r.left = p
	p.balance = 0
	q.balance = 0
	switch {
	case r.balance > 0:
		p.balance = -1
	case r.balance < 0:
		q.balance = 1
	}
	r.balance = 0
	return r, true
}

// rotateRight is the mirror image of rotateLeft, restoring a left-heavy
// subtree whose root p has reached balance -2.
func rotateRight[K cmp.Ordered, V any](p *node[K, V]) (*node[K, V], bool) {
	q := p.left
	if q.balance <= 0 {
		// single right rotation
		p.left = q.right
		q.right = p
		if q.balance == 0 {
			p.balance = -1
			q.balance = 1
			return q, false
		}
		p.balance = 0
		q.balance = 0
		return q, true
	}

	// left-right double rotation
	r := q.right
	q.right = r.left
	r.left = q
	p.left = r.right
	r.right = p
	p.balance = 0
	q.balance = 0
	switch {
	case r.balance < 0:
		p.balance = 1
	case r.balance > 0:
		q.balance = -1
	}
	r.balance = 0
	return r, true
}

// rebalance applies the appropriate rotation to the node recorded at
// position i of the scratch path after its balance factor reached +2 or
// -2, and links the rotated subtree back into its parent (or the root).
// It reports whether the subtree lost height.
func (tree *Tree[K, V]) rebalance(i int) bool {
	var sub *node[K, V]
	var shrunk bool

	p := tree.path[i].node
	if p.balance > 0 {
		sub, shrunk = rotateLeft(p)
	} else {
		sub, shrunk = rotateRight(p)
	}
	tree.relink(i, sub)
	return shrunk
}

// relink replaces the subtree hanging at path position i with sub. The
// parent is the previous path entry; position zero is the root itself.
func (tree *Tree[K, V]) relink(i int, sub *node[K, V]) {
	if i == 0 {
		tree.root = sub
		return
	}
	up := tree.path[i-1]
	if up.dir < 0 {
		up.node.left = sub
	} else {
		up.node.right = sub
	}
}
