// Copyright 2025 The critsection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goid extracts the current goroutine's ID.
//
// Hosted backends use the ID for reentrancy accounting: a goroutine that
// already holds the critical section may acquire it again without
// deadlocking, so acquire must be able to answer "am I the holder".
//
// The ID is recovered by parsing the first line of runtime.Stack output
// ("goroutine 123 [running]:"). This costs on the order of a microsecond
// per call, which is acceptable here: it runs once per acquire, not once
// per memory access, and only on the slow path of backends that opt into
// nesting. An assembly getg()-based fast path would need the runtime.g
// field offset pinned per Go release and is not worth that coupling for a
// cold path.
package goid

import "runtime"

// Get returns the current goroutine ID.
//
// Goroutine IDs are positive and unique for the lifetime of the goroutine;
// 0 is returned only if the stack header cannot be parsed and is never a
// valid ID, so callers may use 0 as a "no goroutine" sentinel.
func Get() int64 {
	// Only the first line is needed: "goroutine 123 [running]:\n..."
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parse(buf[:n])
}

// parse extracts the goroutine ID from stack trace bytes.
//
// Expected format: "goroutine 123 [running]:...". Returns 0 if the buffer
// does not start with the expected header. Direct byte parsing, no
// allocation.
func parse(buf []byte) int64 {
	const prefix = "goroutine "

	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}

	var gid int64
	for i := len(prefix); i < len(buf); i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			// Non-digit terminates the ID (the space before "[running]").
			break
		}
		gid = gid*10 + int64(c-'0')
	}

	return gid
}
