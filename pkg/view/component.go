package view

// ViewFn expands a component call into the node tree it renders. The state
// value is the one persisted for this instance; children are the nodes
// supplied at the call site, to be spliced into the output wherever the
// component chooses.
type ViewFn func(state any, props Props, children []Node, id ID) Node

// UpdateFn mutates a component instance's state in response to an event.
// State values should be pointers so mutation is visible to the store.
type UpdateFn func(state any, props Props, event *Event)

// ComponentDef describes a component type: how to create its state, how to
// render it, and how it reacts to events.
type ComponentDef struct {
	// Tag uniquely identifies the component type. Identity is never reused
	// across different tags.
	Tag string

	// DefaultState produces the fresh state for a new instance. May be nil
	// for stateless components.
	DefaultState func() any

	// DefaultProps produces the props used when the call site supplies
	// none. May be nil.
	DefaultProps func() Props

	// View renders the component. Required.
	View ViewFn

	// Update handles events, including the synthetic Initialized message
	// delivered once at creation. May be nil.
	Update UpdateFn
}
