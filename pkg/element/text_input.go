package element

import "github.com/weft-ui/weft/pkg/view"

// TextInput is an editable single-line text widget. The value, cursor and
// selection anchor live in TextInputState and survive reconciliation as long
// as the instance keeps its identity.
type TextInput struct {
	ElementData
	Placeholder string
	Initial     string
}

// TextInputState is the persistent editing state of a TextInput.
type TextInputState struct {
	Value  string
	Cursor int
	Anchor int
}

// NewTextInput returns a text input seeded with an initial value.
func NewTextInput(initial string) *TextInput {
	return &TextInput{Initial: initial}
}

// WithPlaceholder sets the placeholder shown while the value is empty.
func (t *TextInput) WithPlaceholder(p string) *TextInput {
	t.Placeholder = p
	return t
}

// Name implements view.Element.
func (t *TextInput) Name() string {
	return "TextInput"
}

// InitializeState implements view.Element.
func (t *TextInput) InitializeState() *view.StateItem {
	return &view.StateItem{Data: &TextInputState{
		Value:  t.Initial,
		Cursor: len(t.Initial),
		Anchor: len(t.Initial),
	}}
}

// UpdateState implements view.Element. The persisted value wins over the
// descriptor's Initial; only the cursor is re-clamped.
func (t *TextInput) UpdateState(item *view.StateItem) {
	st, ok := item.Data.(*TextInputState)
	if !ok {
		return
	}
	st.clampCursor()
}

// Insert inserts text at the cursor, replacing any selection.
func (s *TextInputState) Insert(text string) {
	s.deleteSelection()
	s.Value = s.Value[:s.Cursor] + text + s.Value[s.Cursor:]
	s.Cursor += len(text)
	s.Anchor = s.Cursor
}

// Backspace removes the selection, or the byte before the cursor.
func (s *TextInputState) Backspace() {
	if s.Cursor != s.Anchor {
		s.deleteSelection()
		return
	}
	if s.Cursor == 0 {
		return
	}
	s.Value = s.Value[:s.Cursor-1] + s.Value[s.Cursor:]
	s.Cursor--
	s.Anchor = s.Cursor
}

// MoveCursor moves the cursor by delta bytes, collapsing the selection.
func (s *TextInputState) MoveCursor(delta int) {
	s.Cursor += delta
	s.clampCursor()
	s.Anchor = s.Cursor
}

func (s *TextInputState) deleteSelection() {
	lo, hi := s.Cursor, s.Anchor
	if lo > hi {
		lo, hi = hi, lo
	}
	s.Value = s.Value[:lo] + s.Value[hi:]
	s.Cursor = lo
	s.Anchor = lo
}

func (s *TextInputState) clampCursor() {
	if s.Cursor > len(s.Value) {
		s.Cursor = len(s.Value)
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Anchor > len(s.Value) {
		s.Anchor = len(s.Value)
	}
	if s.Anchor < 0 {
		s.Anchor = 0
	}
}
