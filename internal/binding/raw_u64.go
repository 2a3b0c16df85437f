// Copyright 2025 The critsection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build critical_restorestate_u64

package binding

// RawRestoreState is the backend-facing restore-state representation.
// Exactly one definition is active per build, selected by build tag.
type RawRestoreState = uint64

// WidthName identifies the active representation in diagnostics.
const WidthName = "u64"

// RawFromBool encodes a single saved flag into the raw restore state.
func RawFromBool(b bool) RawRestoreState {
	if b {
		return 1
	}
	return 0
}

// BoolFromRaw recovers the flag encoded by RawFromBool.
func BoolFromRaw(state RawRestoreState) bool {
	return state != 0
}
