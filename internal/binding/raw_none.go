// Copyright 2025 The critsection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build critical_restorestate_none

// Zero-size restore state for backends that keep no per-acquire state at
// all (for example a bare spinlock, or interrupt masking on a target where
// critical sections only ever start with interrupts enabled).
//
// Note there are deliberately no RawFromBool/BoolFromRaw helpers at this
// width: a backend that needs to carry even one bit does not fit in it, and
// referencing the missing helpers fails the build. That compile error is
// the "backend needs more state than the configured width provides" error
// surfaced at build time.

package binding

// RawRestoreState is the backend-facing restore-state representation.
// Exactly one definition is active per build, selected by build tag.
type RawRestoreState = struct{}

// WidthName identifies the active representation in diagnostics.
const WidthName = "none"
