// Copyright 2025 The critsection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !critical_restorestate_none && !critical_restorestate_u8 && !critical_restorestate_u16 && !critical_restorestate_u32 && !critical_restorestate_u64

// Default restore-state width: a single bit.
//
// One bit covers the most common backend need, "were interrupts (or their
// hosted analogue) enabled before this acquire". Builds that need a wider
// or narrower token select it with exactly one of the
// critical_restorestate_* build tags; selecting two tags activates two
// declarations of RawRestoreState and the build fails, which is the
// intended behavior for a conflicting width configuration.

package binding

// RawRestoreState is the backend-facing restore-state representation.
// Exactly one definition is active per build, selected by build tag.
type RawRestoreState = bool

// WidthName identifies the active representation in diagnostics.
const WidthName = "bool"

// RawFromBool encodes a single saved flag into the raw restore state.
func RawFromBool(b bool) RawRestoreState {
	return b
}

// BoolFromRaw recovers the flag encoded by RawFromBool.
func BoolFromRaw(state RawRestoreState) bool {
	return state
}
