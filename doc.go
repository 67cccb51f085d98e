// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

// Package conifer implements an AVL tree: a self-balancing binary search
// tree providing an ordered key-value map with logarithmic insertion,
// search, deletion and extrema lookup.
//
// The base algorithm is the one described by Niklaus Wirth in Algorithms +
// Data Structures = Programs, restated iteratively over an explicit stack
// of descent steps. The stack is owned by the tree instance and reused
// across calls, keeping allocation off the critical path of repeated
// operations.
//
// Note: an individual tree is not thread safe, so either access it only
// from a single goroutine or guard it with a mutex/rwmutex. The shared
// scratch stack also means two operations on the same instance must never
// overlap, even read-only ones.
package conifer
