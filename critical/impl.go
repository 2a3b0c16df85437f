package critical

import (
	"fmt"

	"github.com/kolkov/critsection/internal/binding"
)

// Impl is the contract a backend supplies: the two operations the protocol
// layer forwards to.
//
// Acquire enters the backend's exclusion mechanism and returns the raw
// restore state the matching Release needs. It must be safe to call from
// every context the target environment allows critical sections to be
// entered from. A backend that supports nesting must account for it so the
// restore chain survives an inner acquire/release pair; a backend that does
// not should document that nested Acquire is a contract violation.
//
// Release must restore exactly the condition that existed immediately
// before the matching Acquire, using the supplied raw state.
//
// Neither operation has an error return: a correct backend completes them
// unconditionally. A backend whose mechanism can fail decides for itself
// whether to spin or abort; continuing with inconsistent exclusion state is
// never an option.
type Impl interface {
	Acquire() RawRestoreState
	Release(state RawRestoreState)
}

// SetImpl binds impl as the sole critical-section backend for this build.
//
// It must be called from a package init function, at most once per
// program. In-tree backends call it from their own init, so importing a
// backend package is registration; importing two, or calling SetImpl after
// a backend is already bound, panics during program initialization. A
// program that registers no backend panics on its first Acquire.
//
// Custom backends:
//
//	type irqImpl struct{}
//
//	func (irqImpl) Acquire() critical.RawRestoreState { ... }
//	func (irqImpl) Release(state critical.RawRestoreState) { ... }
//
//	func init() { critical.SetImpl(irqImpl{}) }
func SetImpl(impl Impl) {
	if impl == nil {
		panic("critical: SetImpl(nil)")
	}
	binding.Bind(fmt.Sprintf("%T", impl), impl.Acquire, impl.Release)
}
