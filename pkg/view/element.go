package view

// Element is the capability concrete widgets implement. The visual tree is a
// tree of Elements: each widget owns its own children and carries the ID the
// reconciler assigned to it.
type Element interface {
	// Name returns the widget type name, e.g. "Container". Reconciliation
	// reuses an element's identity only when names match across frames.
	Name() string

	// ID returns the identity assigned by the last reconciliation pass.
	ID() ID

	// SetID records the identity. Called by the reconciler only.
	SetID(ID)

	// Children returns the widget's child widgets in order.
	Children() []Element

	// AppendChild attaches a child widget.
	AppendChild(Element)

	// RemoveChildren detaches all child widgets. The persistent root is
	// reset this way at the start of every pass.
	RemoveChildren()

	// InitializeState produces the widget's fresh per-instance state.
	// Called exactly once, when the instance is created. Returning nil (or
	// an item with nil Data) is allowed; the reconciler substitutes a
	// baseline structural state so downstream consumers never observe a
	// missing entry.
	InitializeState() *StateItem

	// UpdateState refreshes the live state entry of a reused instance.
	// The entry is mutated, never reallocated, so interactive state such as
	// scroll offsets and cursors survives.
	UpdateState(*StateItem)
}

// BaseState is the element sub-state every instance has regardless of its
// concrete type: focus, hover, and pointer capture.
type BaseState struct {
	Focused        bool
	Hovered        bool
	PointerCapture map[int64]bool // pointer device id -> captured
}

// StateItem is one element-store entry: the shared base state plus the
// widget-specific data, type-erased.
type StateItem struct {
	Base BaseState
	Data any
}
