// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package conifer

import (
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func buildTree(t *testing.T, keys []int) *Tree[int, string] {
	t.Helper()
	tree := New[int, string]()
	for _, key := range keys {
		tree.Insert(key, "")
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken after inserting %d: %v", key, err)
		}
	}
	return tree
}

func TestEmptyTree(t *testing.T) {
	tree := New[int, string]()

	if !tree.IsEmpty() {
		t.Errorf("fresh tree is not empty")
	}
	if tree.Count() != 0 {
		t.Errorf("fresh tree count: got %d, want 0", tree.Count())
	}
	if _, ok := tree.Minimum(); ok {
		t.Errorf("Minimum on empty tree reported a key")
	}
	if _, ok := tree.Maximum(); ok {
		t.Errorf("Maximum on empty tree reported a key")
	}
	if _, ok := tree.Search(42); ok {
		t.Errorf("Search on empty tree reported a value")
	}
	if keys := tree.Keys(); keys != nil {
		t.Errorf("Keys on empty tree: got %v, want nil", keys)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("empty tree fails check: %v", err)
	}
}

func TestInsertRoundTrip(t *testing.T) {
	tree := New[string, int]()

	if _, ok := tree.Insert("pine", 1); ok {
		t.Errorf("insert of a new key reported a previous value")
	}
	if v, ok := tree.Search("pine"); !ok || v != 1 {
		t.Errorf("search after insert: got %d/%v, want 1/true", v, ok)
	}

	old, ok := tree.Insert("pine", 2)
	if !ok || old != 1 {
		t.Errorf("overwriting insert: got %d/%v, want 1/true", old, ok)
	}
	if v, _ := tree.Search("pine"); v != 2 {
		t.Errorf("search after overwrite: got %d, want 2", v)
	}
	if tree.Count() != 1 {
		t.Errorf("count after overwrite: got %d, want 1", tree.Count())
	}
}

func TestSingleLeftRotation(t *testing.T) {
	tree := buildTree(t, []int{10, 20, 30})

	if tree.root.key != 20 {
		t.Fatalf("root key: got %d, want 20", tree.root.key)
	}
	if tree.root.left.key != 10 || tree.root.right.key != 30 {
		t.Errorf("children: got %d/%d, want 10/30", tree.root.left.key, tree.root.right.key)
	}
	for _, n := range []*node[int, string]{tree.root, tree.root.left, tree.root.right} {
		if n.balance != 0 {
			t.Errorf("key %d: balance %d, want 0", n.key, n.balance)
		}
	}
}

func TestLeftRightDoubleRotation(t *testing.T) {
	tree := buildTree(t, []int{30, 10, 20})

	if tree.root.key != 20 {
		t.Fatalf("root key: got %d, want 20", tree.root.key)
	}
	if tree.root.left.key != 10 || tree.root.right.key != 30 {
		t.Errorf("children: got %d/%d, want 10/30", tree.root.left.key, tree.root.right.key)
	}
}

func TestRotationShapes(t *testing.T) {
	testCases := []struct {
		name string
		keys []int
	}{
		{"RightRight", []int{10, 20, 30}},
		{"LeftLeft", []int{30, 20, 10}},
		{"LeftRight", []int{30, 10, 20}},
		{"RightLeft", []int{10, 30, 20}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(t, tc.keys)
			if tree.root.key != 20 {
				t.Errorf("root key: got %d, want 20", tree.root.key)
			}
			if tree.Height() != 2 {
				t.Errorf("height: got %d, want 2", tree.Height())
			}
		})
	}
}

func TestDeleteTwoChildren(t *testing.T) {
	tree := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})

	if !tree.Delete(3) {
		t.Fatalf("delete of a present key reported absence")
	}
	if tree.Count() != 6 {
		t.Errorf("count after delete: got %d, want 6", tree.Count())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariants broken after delete: %v", err)
	}
	if _, ok := tree.Search(3); ok {
		t.Errorf("deleted key still present")
	}
	// the in-order successor takes over the deleted slot
	if tree.root.left.key != 4 {
		t.Errorf("successor promotion: got %d, want 4", tree.root.left.key)
	}
	if v, ok := tree.Search(4); !ok || v != "" {
		t.Errorf("successor lost its value: got %q/%v", v, ok)
	}
}

func TestDeleteAbsent(t *testing.T) {
	tree := buildTree(t, []int{5, 3, 8})
	before := tree.Keys()

	if tree.Delete(42) {
		t.Errorf("delete of an absent key reported removal")
	}
	if tree.Count() != 3 {
		t.Errorf("count changed by absent delete: got %d, want 3", tree.Count())
	}
	if after := tree.Keys(); !slices.Equal(before, after) {
		t.Errorf("structure changed by absent delete: %v -> %v", before, after)
	}
}

func TestDeleteCases(t *testing.T) {
	testCases := []struct {
		name   string
		keys   []int
		remove []int
	}{
		{"Leaf", []int{2, 1, 3}, []int{1}},
		{"OneLeftChild", []int{3, 1, 4, 0}, []int{1}},
		{"OneRightChild", []int{2, 1, 4, 5}, []int{4}},
		{"Root", []int{2, 1, 3}, []int{2}},
		{"RightSideDrain", []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 9, 13, 15, 0}, []int{9, 13, 15, 10, 14, 12}},
		{"DrainAll", []int{4, 2, 6, 1, 3, 5, 7}, []int{4, 2, 6, 1, 3, 5, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(t, tc.keys)
			left := len(tc.keys)
			for _, key := range tc.remove {
				if !tree.Delete(key) {
					t.Fatalf("delete(%d) reported absence", key)
				}
				left--
				if err := tree.Check(); err != nil {
					t.Fatalf("invariants broken after deleting %d: %v", key, err)
				}
				if tree.Count() != left {
					t.Fatalf("count after deleting %d: got %d, want %d", key, tree.Count(), left)
				}
			}
		})
	}
}

func TestExtrema(t *testing.T) {
	tree := buildTree(t, []int{50, 20, 80, 10, 30, 70, 90})

	if key, ok := tree.Minimum(); !ok || key != 10 {
		t.Errorf("Minimum: got %d/%v, want 10/true", key, ok)
	}
	if key, ok := tree.Maximum(); !ok || key != 90 {
		t.Errorf("Maximum: got %d/%v, want 90/true", key, ok)
	}

	tree.Delete(10)
	tree.Delete(90)
	if key, _ := tree.Minimum(); key != 20 {
		t.Errorf("Minimum after delete: got %d, want 20", key)
	}
	if key, _ := tree.Maximum(); key != 80 {
		t.Errorf("Maximum after delete: got %d, want 80", key)
	}
}

func TestTraversalOrder(t *testing.T) {
	tree := New[int, string]()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(key, strings.Repeat("x", key))
	}

	// children are pushed left before right, so the right subtree pops
	// first: a right-biased depth-first order
	want := []int{2, 3, 1}
	if got := tree.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys: got %v, want %v", got, want)
	}
	if got := tree.Values(); !slices.Equal(got, []string{"xx", "xxx", "x"}) {
		t.Errorf("Values: got %v", got)
	}

	// traversal is repeatable and leaves the tree intact
	first := tree.Keys()
	second := tree.Keys()
	if !slices.Equal(first, second) {
		t.Errorf("repeated traversal differs: %v vs %v", first, second)
	}
}

func TestTraversalComplete(t *testing.T) {
	tree := New[int, int]()
	inserted := make([]int, 0, 100)
	rnd := rand.New(rand.NewSource(7))
	for len(inserted) < 100 {
		key := rnd.Intn(1000)
		if _, ok := tree.Insert(key, key*key); !ok {
			inserted = append(inserted, key)
		}
	}

	keys := tree.Keys()
	if len(keys) != len(inserted) {
		t.Fatalf("traversal length: got %d, want %d", len(keys), len(inserted))
	}
	slices.Sort(keys)
	slices.Sort(inserted)
	if !slices.Equal(keys, inserted) {
		t.Errorf("traversal missed keys")
	}

	values := tree.Values()
	for i, key := range tree.Keys() {
		if values[i] != key*key {
			t.Errorf("value at position %d does not match key %d", i, key)
		}
	}
}

func TestRandomOperations(t *testing.T) {
	tree := New[int, int]()
	mirror := make(map[int]int)
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 20000; i++ {
		key := rnd.Intn(500)
		if rnd.Intn(3) == 0 {
			removed := tree.Delete(key)
			_, present := mirror[key]
			if removed != present {
				t.Fatalf("step %d: delete(%d) = %v, mirror says %v", i, key, removed, present)
			}
			delete(mirror, key)
		} else {
			old, ok := tree.Insert(key, i)
			if prev, present := mirror[key]; present != ok || (present && prev != old) {
				t.Fatalf("step %d: insert(%d) returned %d/%v, mirror has %d/%v", i, key, old, ok, prev, present)
			}
			mirror[key] = i
		}
		if tree.Count() != len(mirror) {
			t.Fatalf("step %d: count %d, mirror size %d", i, tree.Count(), len(mirror))
		}
		if i%500 == 0 {
			if err := tree.Check(); err != nil {
				t.Fatalf("step %d: invariants broken: %v", i, err)
			}
		}
	}

	if err := tree.Check(); err != nil {
		t.Fatalf("invariants broken after random workload: %v", err)
	}
	for key, value := range mirror {
		if v, ok := tree.Search(key); !ok || v != value {
			t.Errorf("key %d: got %d/%v, want %d/true", key, v, ok, value)
		}
	}
}

func TestHeightBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for _, size := range []int{10, 100, 10000} {
		tree := New[int, struct{}]()
		for tree.Count() < size {
			tree.Insert(rnd.Int(), struct{}{})
		}

		bound := 1.44*math.Log2(float64(size)+2) - 0.328
		if h := tree.Height(); float64(h) > bound {
			t.Errorf("size %d: height %d exceeds AVL bound %.2f", size, h, bound)
		}
	}
}

func TestFprint(t *testing.T) {
	tree := buildTree(t, []int{10, 20, 30})

	var sb strings.Builder
	depth := tree.Fprint(&sb)
	if depth != tree.Height() {
		t.Errorf("printed depth %d, recomputed height %d", depth, tree.Height())
	}
	out := sb.String()
	for _, part := range []string{"10", "20", "30"} {
		if !strings.Contains(out, part) {
			t.Errorf("printout misses key %s:\n%s", part, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("printout line count: got %d, want 3", got)
	}
}
