package element

import "github.com/weft-ui/weft/pkg/view"

// Empty is a widget that renders nothing. Useful as a placeholder branch in
// conditional views so sibling positions stay stable.
type Empty struct {
	ElementData
}

// NewEmpty returns an empty widget.
func NewEmpty() *Empty {
	return &Empty{}
}

// Name implements view.Element.
func (e *Empty) Name() string {
	return "Empty"
}

// InitializeState implements view.Element. Empty declares no state of its
// own; the reconciler substitutes the baseline.
func (e *Empty) InitializeState() *view.StateItem {
	return nil
}

// UpdateState implements view.Element.
func (e *Empty) UpdateState(*view.StateItem) {}
