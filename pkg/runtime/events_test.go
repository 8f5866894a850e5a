package runtime

import (
	"context"
	"testing"

	"github.com/weft-ui/weft/pkg/element"
	"github.com/weft-ui/weft/pkg/reconcile"
	"github.com/weft-ui/weft/pkg/view"
)

type clicked struct{}

type clickState struct {
	Clicks int
}

// clickable renders a container around a child and counts clicked messages.
// stop makes it swallow the event instead of letting it bubble further.
func clickable(tag string, stop bool, child view.Node) *view.ComponentDef {
	return &view.ComponentDef{
		Tag:          tag,
		DefaultState: func() any { return &clickState{} },
		View: func(_ any, _ view.Props, children []view.Node, _ view.ID) view.Node {
			n := view.El(element.NewContainer()).Push(child)
			return n.Push(children...)
		},
		Update: func(state any, _ view.Props, event *view.Event) {
			if _, ok := event.Message.(clicked); ok {
				state.(*clickState).Clicks++
				if stop {
					event.StopPropagation()
				}
			}
		},
	}
}

// findByTag returns the id of the first node with the given tag, pre-order.
func findByTag(root *reconcile.LogicalNode, tag string) (view.ID, bool) {
	var id view.ID
	found := false
	root.Walk(func(n *reconcile.LogicalNode) bool {
		if n.Tag == tag {
			id = n.ID
			found = true
			return false
		}
		return true
	})
	return id, found
}

func clicksOf(rt *Runtime, root *reconcile.LogicalNode, tag string) int {
	id, ok := findByTag(root, tag)
	if !ok {
		return -1
	}
	return reconcile.MustState[clickState](rt.UserState(), id).Clicks
}

func TestDispatchBubblesThroughEnclosingComponents(t *testing.T) {
	inner := clickable("Inner", false, view.El(element.NewText("target")))
	outer := clickable("Outer", false, view.Call(inner))
	rt := New(nil)
	ctx := context.Background()

	if err := rt.RenderFrame(ctx, view.El(element.NewContainer()).Push(view.Call(outer))); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	target, ok := findByTag(rt.Logical(), "Text")
	if !ok {
		t.Fatal("no Text leaf in logical tree")
	}

	if !rt.Dispatch(ctx, target, clicked{}) {
		t.Fatal("Dispatch reported a miss for a live id")
	}
	if got := clicksOf(rt, rt.Logical(), "Inner"); got != 1 {
		t.Errorf("Inner clicks = %d, want 1", got)
	}
	if got := clicksOf(rt, rt.Logical(), "Outer"); got != 1 {
		t.Errorf("Outer clicks = %d, want 1 (event should bubble)", got)
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	inner := clickable("Inner", true, view.El(element.NewText("target")))
	outer := clickable("Outer", false, view.Call(inner))
	rt := New(nil)
	ctx := context.Background()

	if err := rt.RenderFrame(ctx, view.El(element.NewContainer()).Push(view.Call(outer))); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	target, _ := findByTag(rt.Logical(), "Text")

	rt.Dispatch(ctx, target, clicked{})
	if got := clicksOf(rt, rt.Logical(), "Inner"); got != 1 {
		t.Errorf("Inner clicks = %d, want 1", got)
	}
	if got := clicksOf(rt, rt.Logical(), "Outer"); got != 0 {
		t.Errorf("Outer clicks = %d, want 0 (propagation stopped)", got)
	}
}

func TestDispatchUnknownTarget(t *testing.T) {
	rt := New(nil)
	ctx := context.Background()
	if err := rt.RenderFrame(ctx, view.El(element.NewContainer())); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if rt.Dispatch(ctx, 9999, clicked{}) {
		t.Error("Dispatch claimed success for an id not in the tree")
	}
}

func TestDispatchAppliesFocusRequest(t *testing.T) {
	var inputID view.ID
	focuser := &view.ComponentDef{
		Tag:          "Focuser",
		DefaultState: func() any { return &clickState{} },
		View: func(_ any, _ view.Props, _ []view.Node, _ view.ID) view.Node {
			return view.El(element.NewContainer()).
				Push(view.El(element.NewTextInput("")))
		},
		Update: func(_ any, _ view.Props, event *view.Event) {
			if _, ok := event.Message.(clicked); ok {
				event.Focus(inputID)
			}
		},
	}
	rt := New(nil)
	ctx := context.Background()
	if err := rt.RenderFrame(ctx, view.El(element.NewContainer()).Push(view.Call(focuser))); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	inputID, _ = findByTag(rt.Logical(), "TextInput")

	rt.Dispatch(ctx, inputID, clicked{})

	if got, ok := rt.Focused(); !ok || got != inputID {
		t.Errorf("Focused() = (%d, %v), want (%d, true)", got, ok, inputID)
	}
	item, _ := rt.ElementState().Get(inputID)
	if !item.Base.Focused {
		t.Error("focused element's base state not marked focused")
	}
}
