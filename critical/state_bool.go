// Copyright 2025 The critsection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !critical_restorestate_none

package critical

import "github.com/kolkov/critsection/internal/binding"

// RawFromBool encodes a single saved flag into the raw restore state.
//
// This is the helper for the common backend whose entire restore state is
// one bit ("were interrupts enabled before", "was this the outermost
// acquire"). It exists at every width except none; a backend that calls it
// under the none width fails to compile, because its state does not fit
// the configured representation.
func RawFromBool(b bool) RawRestoreState {
	return binding.RawFromBool(b)
}

// BoolFromRaw recovers the flag encoded by RawFromBool.
func BoolFromRaw(state RawRestoreState) bool {
	return binding.BoolFromRaw(state)
}
