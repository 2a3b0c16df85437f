package critical

import "github.com/kolkov/critsection/internal/binding"

// RawRestoreState is the concrete restore-state representation active in
// this build. The default is bool; one of the critical_restorestate_*
// build tags selects a different fixed width. It is always an unboxed
// scalar (or zero-size) value, so threading it through Acquire/Release
// never allocates.
type RawRestoreState = binding.RawRestoreState

// RestoreState is the opaque token produced by Acquire and consumed by the
// matching Release.
//
// It encodes whatever the backend needs to restore the pre-acquire
// condition (typically "were interrupts previously enabled"). It is owned
// by the call path between its Acquire and its Release: it must not be
// duplicated to another Release, reused after being consumed, or shared
// across concurrent call paths.
type RestoreState struct {
	raw RawRestoreState
}

// Raw unwraps the token for backend code or for carrying it across a
// boundary (FFI, hand-written assembly) that cannot hold a Go struct.
// The caller takes over the token's obligations.
func (s RestoreState) Raw() RawRestoreState {
	return s.raw
}

// RestoreStateFromRaw rewraps a raw value previously obtained from
// [RestoreState.Raw]. It must only be applied to such a value, and the
// result stands in for the original token.
func RestoreStateFromRaw(raw RawRestoreState) RestoreState {
	return RestoreState{raw: raw}
}

// InvalidRestoreState returns a placeholder token.
//
// It is useful for initializing a variable that will later hold a real
// token. Passing it to Release is a contract violation.
func InvalidRestoreState() RestoreState {
	var zero RawRestoreState
	return RestoreState{raw: zero}
}
