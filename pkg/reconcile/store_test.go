package reconcile

import (
	"strings"
	"testing"

	"github.com/weft-ui/weft/pkg/element"
	"github.com/weft-ui/weft/pkg/view"
)

func TestRemoveUnusedDeletesOnlyVanishedIDs(t *testing.T) {
	h := newHarness()

	h.pass(view.El(element.NewContainer()).
		Push(view.El(element.NewText("keep"))).
		Push(view.El(element.NewText("drop")).WithKey("gone")))
	keepID := h.top().Children[0].ID
	dropID := h.top().Children[1].ID
	oldElements := h.elementIDs
	oldComponents := h.componentIDs

	h.pass(view.El(element.NewContainer()).
		Push(view.El(element.NewText("keep"))))
	removedElements, removedComponents := h.collect(oldElements, oldComponents)

	if removedElements != 1 || removedComponents != 0 {
		t.Errorf("removed = (%d, %d), want (1, 0)", removedElements, removedComponents)
	}
	if h.elements.Contains(dropID) {
		t.Errorf("id %d still has state after GC", dropID)
	}
	if !h.elements.Contains(keepID) {
		t.Errorf("id %d lost its state during GC", keepID)
	}
	if !h.elements.Contains(RootID) {
		t.Error("root state collected")
	}
}

func TestComponentGC(t *testing.T) {
	h := newHarness()
	def := testComponent("Gone")

	h.pass(view.El(element.NewContainer()).Push(view.Call(def)))
	compID := h.top().Children[0].ID
	oldElements := h.elementIDs
	oldComponents := h.componentIDs
	if !h.user.Contains(compID) {
		t.Fatal("component state missing after creation")
	}

	h.pass(view.El(element.NewContainer()))
	h.collect(oldElements, oldComponents)

	if h.user.Contains(compID) {
		t.Errorf("component %d state survived GC", compID)
	}
}

// GC runs strictly after a pass commits: every id present in the new tree
// keeps its entry, however much the shape around it changed, and every
// vanished id loses its entry exactly once.
func TestGCAfterReshapeKeepsLiveEntries(t *testing.T) {
	h := newHarness()
	inner := func(key string) view.Node {
		return view.El(element.NewContainer()).
			Push(view.El(element.NewTextInput("v")).WithKey(key))
	}

	h.pass(view.El(element.NewContainer()).Push(inner("field")))
	oldElements := h.elementIDs
	oldComponents := h.componentIDs

	// Same keyed input, one wrapper level deeper.
	h.pass(view.El(element.NewContainer()).
		Push(view.El(element.NewContainer()).Push(inner("field"))))
	h.collect(oldElements, oldComponents)

	live := 0
	h.logical.Walk(func(n *LogicalNode) bool {
		if !h.elements.Contains(n.ID) {
			t.Errorf("live id %d (tag %s) has no state entry after GC", n.ID, n.Tag)
		}
		live++
		return true
	})
	if h.elements.Len() != live {
		t.Errorf("element store holds %d entries for %d live ids", h.elements.Len(), live)
	}
}

func TestMustStatePanicsOnMissingEntry(t *testing.T) {
	store := NewStateStore()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for missing state")
		}
		if !strings.Contains(r.(string), "W101") {
			t.Errorf("panic %q does not carry code W101", r)
		}
	}()
	MustState[counterState](store, 99)
}

func TestMustStatePanicsOnTypeMismatch(t *testing.T) {
	store := NewStateStore()
	store.Insert(7, &counterState{})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for mismatched state type")
		}
		if !strings.Contains(r.(string), "W102") {
			t.Errorf("panic %q does not carry code W102", r)
		}
	}()
	type otherState struct{ X int }
	MustState[otherState](store, 7)
}

func TestElementMustGetPanicsOnMissingEntry(t *testing.T) {
	store := NewElementStateStore()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing element state")
		}
	}()
	store.MustGet(42, "Text")
}

func TestSetFocusExclusive(t *testing.T) {
	store := NewElementStateStore()
	store.Insert(1, &view.StateItem{})
	store.Insert(2, &view.StateItem{Base: view.BaseState{Focused: true}})

	store.SetFocus(view.FocusSet, 1)
	one, _ := store.Get(1)
	two, _ := store.Get(2)
	if !one.Base.Focused || two.Base.Focused {
		t.Errorf("focus state = (%v, %v), want (true, false)", one.Base.Focused, two.Base.Focused)
	}

	store.SetFocus(view.FocusClear, 0)
	if one.Base.Focused || two.Base.Focused {
		t.Error("FocusClear left something focused")
	}
}

func TestPointerCapturesCollected(t *testing.T) {
	h := newHarness()
	spec := func() view.Node {
		return view.El(element.NewContainer()).Push(view.El(element.NewContainer()))
	}

	h.pass(spec())
	capturer := h.top().Children[0].ID
	item, _ := h.elements.Get(capturer)
	item.Base.PointerCapture = map[int64]bool{3: true}

	res := h.pass(spec())
	if got, ok := res.PointerCaptures[3]; !ok || got != capturer {
		t.Errorf("PointerCaptures[3] = (%d, %v), want (%d, true)", got, ok, capturer)
	}
}
