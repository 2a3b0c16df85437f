// Copyright 2025 The critsection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && (amd64 || arm64)

// Package signalmask is a critical-section backend that masks POSIX
// signals, the hosted analogue of disabling interrupts.
//
// Acquire blocks every signal on the calling thread and pins the goroutine
// to that thread until the matching release; the outermost release restores
// the mask that was in effect before. The exclusion scope is therefore
// asynchronous signal handlers on that one thread only. Other goroutines
// and other threads' handlers are NOT excluded, exactly as masking
// interrupts on one core says nothing about other cores.
//
// Nesting is supported through a depth count; the restore state carries
// one flag, "this acquire was outermost", so the backend requires a
// bool-capable restore-state width (the default). The depth count is
// unsynchronized: the backend is meant for programs whose critical
// sections all run on one goroutine (an event loop driving hardware, a
// single-threaded runtime shim). Concurrent sections from multiple
// goroutines are a contract violation here.
//
// Select the backend by importing the package for its side effect:
//
//	import _ "github.com/kolkov/critsection/backends/signalmask"
//
// A failing mask syscall panics: continuing with an unknown signal mask
// would void every guarantee the section is supposed to provide.
package signalmask

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/kolkov/critsection/critical"
)

type maskImpl struct{}

var (
	// depth counts unmatched acquires; saved holds the thread's signal
	// mask from before the outermost acquire.
	depth int
	saved unix.Sigset_t
)

func init() {
	critical.SetImpl(maskImpl{})
}

func (maskImpl) Acquire() critical.RawRestoreState {
	// Pin to the OS thread whose mask we are about to change. Unpinned in
	// Release, so nested sections stack LockOSThread calls symmetrically.
	runtime.LockOSThread()

	if depth == 0 {
		var all unix.Sigset_t
		for i := range all.Val {
			all.Val[i] = ^uint64(0)
		}
		if err := unix.PthreadSigmask(unix.SIG_SETMASK, &all, &saved); err != nil {
			panic(fmt.Sprintf("signalmask: blocking signals: %v", err))
		}
	}
	depth++

	return critical.RawFromBool(depth == 1)
}

func (maskImpl) Release(state critical.RawRestoreState) {
	depth--
	if critical.BoolFromRaw(state) {
		if err := unix.PthreadSigmask(unix.SIG_SETMASK, &saved, nil); err != nil {
			panic(fmt.Sprintf("signalmask: restoring signal mask: %v", err))
		}
	}
	runtime.UnlockOSThread()
}
