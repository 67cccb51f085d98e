// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import (
	"cmp"
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Fprint writes an ASCII graphic representation of the tree to w, one
// node per line with its balance factor, right subtrees above their
// parents. It returns the depth of the tree.
func (tree *Tree[K, V]) Fprint(w io.Writer) int {
	return fprint(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the sub-tree
func fprint[K cmp.Ordered, V any](w io.Writer, n *node[K, V], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	ld := 0
	if n.right != nil {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = fprint(w, n.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %+d\n", n.key, n.balance)
	if n.left != nil {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = fprint(w, n.left, prefix+t, left)
	}

	return max(rd, ld) + 1
}
