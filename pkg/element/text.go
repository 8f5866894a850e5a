package element

import "github.com/weft-ui/weft/pkg/view"

// Text is a leaf widget displaying a string.
type Text struct {
	ElementData
	Content string
}

// TextState caches the displayed content for downstream shaping. It is
// refreshed in place on every pass the instance survives.
type TextState struct {
	Content string
}

// NewText returns a text widget with the given content.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// Name implements view.Element.
func (t *Text) Name() string {
	return "Text"
}

// InitializeState implements view.Element.
func (t *Text) InitializeState() *view.StateItem {
	return &view.StateItem{Data: &TextState{Content: t.Content}}
}

// UpdateState implements view.Element.
func (t *Text) UpdateState(item *view.StateItem) {
	if st, ok := item.Data.(*TextState); ok {
		st.Content = t.Content
	}
}
