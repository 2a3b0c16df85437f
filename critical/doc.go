// Package critical provides a hardware- and OS-agnostic critical-section
// primitive: enter a region of code that must run without interleaving from
// whatever execution contexts the active backend excludes (interrupt
// handlers, signal handlers, other goroutines, other cores), then restore
// the previous state on the way out.
//
// The package is a thin protocol layer. The actual exclusion mechanism is
// supplied by exactly one backend per build; the protocol forwards every
// call to it and threads the backend's opaque restore-state token from each
// Acquire to its matching Release.
//
// # Quick Start
//
// Select a backend by importing exactly one backend package for its side
// effect, then use the scoped form:
//
//	import (
//		"github.com/kolkov/critsection/critical"
//
//		_ "github.com/kolkov/critsection/backends/stdlock"
//	)
//
//	func updateShared() {
//		critical.Do(func() {
//			// runs with the critical section held; released on every
//			// exit path, including panic
//		})
//	}
//
// [With] is the same operation returning the body's result:
//
//	v := critical.With(func() int { return sharedCounter })
//
// # Manual Form
//
// Code that cannot wrap its critical region in a closure (for example, a
// region spanning a foreign-function boundary) uses the low-level pair:
//
//	state := critical.Acquire()
//	// ... excluded region ...
//	critical.Release(state)
//
// Release must be called exactly once with exactly the [RestoreState] its
// Acquire returned, in last-acquired-first-released order. Violating the
// pairing discipline is not a recoverable error: no runtime check is made
// on the hot path, and behavior is backend-defined (some backends detect a
// subset of violations and panic). Prefer [With] or [Do], which make an
// unmatched pair impossible.
//
// # Backends
//
// Exactly one backend may be bound per build. In-tree backends register
// themselves from package init when imported, so selecting one is a
// build-time act; importing two fails during program initialization,
// before any protocol call. Custom backends implement [Impl] and register
// with [SetImpl] from an init function. The cmd/critcheck tool verifies a
// build has exactly one registration without running it.
//
// What "excluded" means depends on the backend: masking signals excludes
// only signal handlers on the masking thread, a process-global lock
// excludes other goroutines, and so on. Nesting support is likewise
// backend-defined; nesting on a backend that forbids it is a contract
// violation.
//
// # Restore-State Width
//
// The concrete representation of [RestoreState] is fixed per build: a bool
// by default, or no payload / uint8 / uint16 / uint32 / uint64 selected by
// exactly one of the build tags
//
//	critical_restorestate_none
//	critical_restorestate_u8
//	critical_restorestate_u16
//	critical_restorestate_u32
//	critical_restorestate_u64
//
// The width is chosen by whoever provides the backend; every other
// component consumes whatever width is active. Selecting two widths, or
// building a backend that needs more state than the width holds, fails at
// compile time.
package critical
