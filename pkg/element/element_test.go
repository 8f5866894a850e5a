package element

import (
	"testing"

	"github.com/weft-ui/weft/pkg/view"
)

func TestElementDataChildren(t *testing.T) {
	c := NewContainer()
	c.AppendChild(NewText("a"))
	c.AppendChild(NewText("b"))
	if got := len(c.Children()); got != 2 {
		t.Fatalf("Children = %d, want 2", got)
	}
	c.RemoveChildren()
	if got := len(c.Children()); got != 0 {
		t.Errorf("Children after RemoveChildren = %d, want 0", got)
	}
}

func TestContainerState(t *testing.T) {
	c := NewContainer().Scroll()
	item := c.InitializeState()
	if item == nil {
		t.Fatal("InitializeState returned nil")
	}
	if _, ok := item.Data.(*ContainerState); !ok {
		t.Fatalf("Data = %T, want *ContainerState", item.Data)
	}
}

func TestScrollClamping(t *testing.T) {
	s := &ScrollState{}
	s.SetBounds(100, 400)

	s.ScrollBy(30, 1000)
	if s.OffsetX != 30 || s.OffsetY != 400 {
		t.Errorf("offset = (%v, %v), want (30, 400)", s.OffsetX, s.OffsetY)
	}

	s.ScrollBy(-500, -500)
	if s.OffsetX != 0 || s.OffsetY != 0 {
		t.Errorf("offset = (%v, %v), want (0, 0)", s.OffsetX, s.OffsetY)
	}

	// Shrinking bounds re-clamps the current offset.
	s.ScrollTo(100, 400)
	s.SetBounds(50, 50)
	if s.OffsetX != 50 || s.OffsetY != 50 {
		t.Errorf("offset after shrink = (%v, %v), want (50, 50)", s.OffsetX, s.OffsetY)
	}
}

func TestTextUpdateRefreshesContent(t *testing.T) {
	first := NewText("old")
	item := first.InitializeState()

	second := NewText("new")
	second.UpdateState(item)

	if got := item.Data.(*TextState).Content; got != "new" {
		t.Errorf("Content = %q, want %q", got, "new")
	}
}

func TestTextInputStateEditing(t *testing.T) {
	st := &TextInputState{Value: "hello", Cursor: 5, Anchor: 5}

	st.Insert("!")
	if st.Value != "hello!" || st.Cursor != 6 {
		t.Errorf("after Insert: %q cursor %d", st.Value, st.Cursor)
	}

	st.Backspace()
	if st.Value != "hello" || st.Cursor != 5 {
		t.Errorf("after Backspace: %q cursor %d", st.Value, st.Cursor)
	}

	st.MoveCursor(-2)
	st.Insert("XX")
	if st.Value != "helXXlo" {
		t.Errorf("after mid insert: %q", st.Value)
	}

	// Selection replace: select "XX" backwards.
	st.Anchor = 3
	st.Cursor = 5
	st.Insert("-")
	if st.Value != "hel-lo" || st.Cursor != 4 {
		t.Errorf("after selection replace: %q cursor %d", st.Value, st.Cursor)
	}

	st.MoveCursor(100)
	if st.Cursor != len(st.Value) {
		t.Errorf("cursor %d beyond value length %d", st.Cursor, len(st.Value))
	}
}

func TestTextInputUpdatePreservesValue(t *testing.T) {
	input := NewTextInput("seed")
	item := input.InitializeState()
	st := item.Data.(*TextInputState)
	st.Value = "typed by the user"

	// Next frame's descriptor carries the old seed; the persisted value
	// must win.
	NewTextInput("seed").UpdateState(item)
	if st.Value != "typed by the user" {
		t.Errorf("Value = %q, want persisted user input", st.Value)
	}
}

func TestEmptyDeclaresNoState(t *testing.T) {
	if NewEmpty().InitializeState() != nil {
		t.Error("Empty should rely on the baseline state")
	}
}

// Compile-time interface checks.
var (
	_ view.Element = (*Container)(nil)
	_ view.Element = (*Text)(nil)
	_ view.Element = (*TextInput)(nil)
	_ view.Element = (*Empty)(nil)
)
