// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package main

import (
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Parsed dataset files stay cached for 30 minutes, so reloading a
	// large file after clearing the tree skips the disk and the parse.
	datasetCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes.
	datasetCacheCleanup = 5 * time.Minute
)

// entry is one key-value pair read from a dataset file.
type entry struct {
	key   string
	value string
}

// newDatasetCache creates a session cache for parsed dataset files.
func newDatasetCache() *cache.Cache {
	return cache.New(datasetCacheExpiration, datasetCacheCleanup)
}

// loadDataset reads a dataset file, going through the cache when the same
// path was parsed recently.
func loadDataset(c *cache.Cache, path string) ([]entry, error) {
	if val, ok := c.Get(path); ok {
		return val.([]entry), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries := parseDataset(string(data))
	c.Set(path, entries, datasetCacheExpiration)
	return entries, nil
}

// parseDataset splits dataset text into entries. Each line holds a key,
// whitespace, and the rest of the line as the value. Blank lines, lines
// without a value and lines starting with '#' are skipped.
func parseDataset(data string) []entry {
	var entries []entry
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, " ")
		if !found {
			continue
		}
		entries = append(entries, entry{key: key, value: strings.TrimSpace(value)})
	}
	return entries
}
