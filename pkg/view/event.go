package view

// Initialized is the synthetic message delivered exactly once through a
// component's Update when the instance is created. It is the only point
// where Update runs during reconciliation; every later update is driven by
// real events outside the reconciler.
type Initialized struct{}

// FocusAction describes what an event handler wants done with focus.
type FocusAction uint8

const (
	FocusNone  FocusAction = iota // Leave focus alone
	FocusSet                      // Focus the requested element
	FocusClear                    // Drop focus entirely
)

// Event is the mutable envelope passed through component update functions
// while an event bubbles from its target toward the root.
type Event struct {
	// Message is the event payload.
	Message any

	stopped     bool
	focusAction FocusAction
	focusTarget ID
}

// StopPropagation prevents ancestors from seeing this event.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Focus requests that the element with the given id receive focus once the
// event finishes bubbling.
func (e *Event) Focus(id ID) {
	e.focusAction = FocusSet
	e.focusTarget = id
}

// Blur requests that focus be cleared once the event finishes bubbling.
func (e *Event) Blur() {
	e.focusAction = FocusClear
	e.focusTarget = 0
}

// FocusRequest returns the pending focus action and its target.
func (e *Event) FocusRequest() (FocusAction, ID) {
	return e.focusAction, e.focusTarget
}
