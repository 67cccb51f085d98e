// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package main

// ANSI escape codes for plain (non-TUI) terminal output.
const (
	Green = "\033[32m"
	Red   = "\033[31m"
	Reset = "\033[0m"
)
