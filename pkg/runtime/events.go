package runtime

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/view"
)

// Dispatch delivers an event to the instance with the given id and bubbles
// it toward the root through every enclosing component's update function.
// Bubbling stops at the first handler that calls StopPropagation. Focus
// requests raised by handlers are applied after bubbling completes.
//
// Returns false when the id is not present in the current logical tree —
// a legitimate miss for events raced against a reshaping frame, not an
// error.
func (r *Runtime) Dispatch(ctx context.Context, target view.ID, msg any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, span := r.tracer.Start(ctx, "weft.dispatch",
		trace.WithAttributes(attribute.Int64("weft.target", int64(target))))
	defer span.End()

	if r.logical == nil {
		return false
	}
	path := r.logical.PathTo(target)
	if path == nil {
		r.log.Debug("dispatch target not in tree", "id", target)
		return false
	}

	event := &view.Event{Message: msg}
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		if node.IsElement || node.Update == nil {
			continue
		}
		state, ok := r.userState.Get(node.ID)
		if !ok {
			// A component in the live tree always has state (it was read
			// during the pass that built the tree).
			panic(errors.MissingState(uint64(node.ID), "component", node.Tag).Format())
		}
		node.Update(state, node.Props, event)
		if event.Stopped() {
			break
		}
	}

	action, focusTarget := event.FocusRequest()
	switch action {
	case view.FocusSet:
		r.focus = focusTarget
		r.hasFocus = true
	case view.FocusClear:
		r.hasFocus = false
		r.focus = 0
	}
	r.elementState.SetFocus(action, focusTarget)
	return true
}
