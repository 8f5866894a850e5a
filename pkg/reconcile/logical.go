package reconcile

import "github.com/weft-ui/weft/pkg/view"

// LogicalNode tracks one component or element instance across passes. A new
// logical tree is built on every pass; the previous pass's tree is read-only
// input to the next. Identity (ID) is stable for as long as the matching
// policy keeps recognizing the instance.
type LogicalNode struct {
	ID        view.ID
	Key       string // "" means unkeyed
	Tag       string // widget type name or component tag
	IsElement bool
	ParentID  view.ID // RootID for top-level nodes and the root itself
	Children  []*LogicalNode

	// ChildrenKeys maps a child component's key to its id, written during
	// the pass that built this node and consulted by the next pass so keyed
	// components keep their identity regardless of position.
	ChildrenKeys map[string]view.ID

	// Update is the component's update function; nil for elements.
	Update view.UpdateFn

	// Props are the resolved props the instance was rendered with.
	Props view.Props
}

// Find returns the node with the given id in this subtree, or nil.
func (n *LogicalNode) Find(id view.ID) *LogicalNode {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// PathTo returns the chain of nodes from this node down to the node with
// the given id, inclusive on both ends, or nil when the id is absent.
func (n *LogicalNode) PathTo(id view.ID) []*LogicalNode {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return []*LogicalNode{n}
	}
	for _, child := range n.Children {
		if path := child.PathTo(id); path != nil {
			return append([]*LogicalNode{n}, path...)
		}
	}
	return nil
}

// Walk visits the subtree in depth-first pre-order. Returning false from fn
// stops the walk.
func (n *LogicalNode) Walk(fn func(*LogicalNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// IDs collects every id in the subtree.
func (n *LogicalNode) IDs() map[view.ID]struct{} {
	ids := make(map[view.ID]struct{})
	n.Walk(func(node *LogicalNode) bool {
		ids[node.ID] = struct{}{}
		return true
	})
	return ids
}
