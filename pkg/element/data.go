package element

import "github.com/weft-ui/weft/pkg/view"

// ElementData is the common state embedded by every widget: the assigned
// identity and the child list. It implements the boring half of
// view.Element; concrete widgets add Name, InitializeState and UpdateState.
type ElementData struct {
	id       view.ID
	children []view.Element
}

// ID returns the identity assigned by the last reconciliation pass.
func (d *ElementData) ID() view.ID {
	return d.id
}

// SetID records the identity.
func (d *ElementData) SetID(id view.ID) {
	d.id = id
}

// Children returns the child widgets in order.
func (d *ElementData) Children() []view.Element {
	return d.children
}

// AppendChild attaches a child widget.
func (d *ElementData) AppendChild(child view.Element) {
	d.children = append(d.children, child)
}

// RemoveChildren detaches all child widgets.
func (d *ElementData) RemoveChildren() {
	d.children = nil
}
