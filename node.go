// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import "cmp"

// a node in the tree
type node[K cmp.Ordered, V any] struct {
	left    *node[K, V] // left sub-tree, keys lesser than key
	right   *node[K, V] // right sub-tree, keys greater than key
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int         // height(right) - height(left): -1, 0 or +1
}

// step is one recorded move of a descent: the node that was visited and
// the direction taken from it. The direction is -1 for left and +1 for
// right, which is exactly the balance-factor delta applied to the node
// when the chosen side grows by one level.
type step[K cmp.Ordered, V any] struct {
	node *node[K, V]
	dir  int
}
