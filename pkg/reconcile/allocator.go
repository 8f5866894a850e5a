package reconcile

import (
	"sync/atomic"

	"github.com/weft-ui/weft/pkg/view"
)

// RootID is the fixed identity of the externally owned persistent visual
// root. The root is an anchor, never subject to matching, so its id is
// reserved and never issued by an Allocator.
const RootID view.ID = 0

// Allocator issues unique, monotonically increasing identities for new
// logical nodes. Each runtime owns its own Allocator; there is no ambient
// process-wide counter, so independent UI trees and isolated tests do not
// interfere.
type Allocator struct {
	counter atomic.Uint64
}

// NewAllocator returns an allocator whose first Next is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unique identity. Identities are never reused.
func (a *Allocator) Next() view.ID {
	return view.ID(a.counter.Add(1))
}

// Current returns the last issued identity, or RootID if none was issued.
func (a *Allocator) Current() view.ID {
	return view.ID(a.counter.Load())
}

// Reset rewinds the counter so identity sequences are reproducible across
// isolated test runs. Never call this while any tree allocated from this
// Allocator is still alive.
func (a *Allocator) Reset() {
	a.counter.Store(0)
}
