// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/lovasko/conifer"
)

func newPhaseBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

// runBench drives a seeded random workload through all tree operations,
// verifying the structural invariants between the phases.
func runBench(config *Config) error {
	size := config.Bench.Size
	rnd := rand.New(rand.NewSource(config.Bench.Seed))

	keys := make([]int, size)
	for i := range keys {
		keys[i] = rnd.Int()
	}

	tree := conifer.New[int, int]()

	bar := newPhaseBar(size, "Inserting keys...")
	start := time.Now()
	for i, key := range keys {
		tree.Insert(key, i)
		bar.Add(1)
	}
	insertTime := time.Since(start)
	if err := tree.Check(); err != nil {
		return fmt.Errorf("tree invariants broken after inserts: %v", err)
	}
	distinct := tree.Count()

	bar = newPhaseBar(size, "Searching keys...")
	start = time.Now()
	misses := 0
	for _, key := range keys {
		if _, ok := tree.Search(key); !ok {
			misses++
		}
		bar.Add(1)
	}
	searchTime := time.Since(start)
	if misses > 0 {
		return fmt.Errorf("%d inserted keys were not found", misses)
	}

	height := tree.Height()
	bound := 1.44*math.Log2(float64(distinct)+2) - 0.328

	bar = newPhaseBar(size/2, "Deleting keys...")
	start = time.Now()
	for _, key := range keys[:size/2] {
		tree.Delete(key)
		bar.Add(1)
	}
	deleteTime := time.Since(start)
	if err := tree.Check(); err != nil {
		return fmt.Errorf("tree invariants broken after deletes: %v", err)
	}

	fmt.Printf("\nWorkload of %d random keys (%d distinct, seed %d):\n", size, distinct, config.Bench.Seed)
	fmt.Printf("  insert: %v (%.0f ops/s)\n", insertTime, float64(size)/insertTime.Seconds())
	fmt.Printf("  search: %v (%.0f ops/s)\n", searchTime, float64(size)/searchTime.Seconds())
	fmt.Printf("  delete: %v (%.0f ops/s)\n", deleteTime, float64(size/2)/deleteTime.Seconds())
	fmt.Printf("  height: %d (AVL bound %.2f)\n", height, bound)
	if float64(height) > bound {
		return fmt.Errorf("height %d exceeds the AVL bound %.2f", height, bound)
	}
	fmt.Printf("%sAll invariants hold.%s\n", Green, Reset)
	return nil
}
