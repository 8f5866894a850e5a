package reconcile

import (
	"github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/element"
	"github.com/weft-ui/weft/pkg/view"
)

// Result is the output of one reconciliation pass. Outputs are returned by
// value semantics: nothing takes effect until the caller swaps them into its
// persistent storage, so a discarded Result leaves the previous state
// untouched.
type Result struct {
	// Logical is the new stable-identity tree. Its root mirrors the
	// persistent visual root (id RootID).
	Logical *LogicalNode

	// Root is the caller's persistent visual root with its children rebuilt
	// for this pass.
	Root view.Element

	// ElementIDs and ComponentIDs are the ids live after this pass, split
	// by store. The caller diffs them against the previous pass's sets to
	// drive garbage collection.
	ElementIDs   map[view.ID]struct{}
	ComponentIDs map[view.ID]struct{}

	// PointerCaptures maps pointer device ids to the element currently
	// capturing them, collected from reused element base states.
	PointerCaptures map[int64]view.ID

	// Pass statistics for instrumentation.
	CreatedElements   int
	ReusedElements    int
	CreatedComponents int
	ReusedComponents  int
}

// workItem is one unit of traversal. The traversal is an explicit stack, not
// native recursion, because each unit needs four pieces of context: the spec
// node, the visual parent to attach under, the logical parent to attach
// under, and the previous-pass counterpart (plus that counterpart's parent's
// key map for component id resolution).
type workItem struct {
	spec          view.Node
	visualParent  view.Element
	logicalParent *LogicalNode
	prev          *LogicalNode
	prevParentKey map[string]view.ID
}

// Reconcile runs one pass: it diffs the new top-level spec node against the
// previous logical tree's single child, rebuilding the children of the
// persistent visual root. The root itself is a fixed anchor — it is never
// matched or replaced, only its children are diffed.
//
// prev is the previous pass's logical root, or nil on the first pass. Both
// stores must be exclusively owned by this pass for its entire duration.
func Reconcile(next view.Node, root view.Element, prev *LogicalNode, alloc *Allocator, userState *StateStore, elementState *ElementStateStore) Result {
	if alloc == nil || userState == nil || elementState == nil {
		panic(errors.StoreMisuse("reconcile: allocator and both state stores are required").Format())
	}

	root.SetID(RootID)
	root.RemoveChildren()

	// The root persists unconditionally across passes, so its baseline
	// state is created once and never reinitialized.
	if !elementState.Contains(RootID) {
		elementState.Insert(RootID, &view.StateItem{Data: &element.ContainerState{}})
	}

	res := Result{
		Root:            root,
		ElementIDs:      map[view.ID]struct{}{RootID: {}},
		ComponentIDs:    make(map[view.ID]struct{}),
		PointerCaptures: make(map[int64]view.ID),
	}

	newRoot := &LogicalNode{ID: RootID, Tag: root.Name(), IsElement: true}
	res.Logical = newRoot

	var prevTop *LogicalNode
	var prevRootKeys map[string]view.ID
	if prev != nil {
		if len(prev.Children) > 0 {
			prevTop = prev.Children[0]
		}
		prevRootKeys = prev.ChildrenKeys
	}

	stack := []workItem{{
		spec:          next,
		visualParent:  root,
		logicalParent: newRoot,
		prev:          prevTop,
		prevParentKey: prevRootKeys,
	}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch item.spec.Kind {
		case view.KindElement:
			stack = reconcileElement(item, stack, alloc, elementState, &res)
		case view.KindComponent:
			stack = reconcileComponent(item, stack, alloc, userState, &res)
		}
	}

	return res
}

// reconcileElement resolves identity for an element descriptor, attaches the
// widget to the visual tree, and schedules its children.
func reconcileElement(item workItem, stack []workItem, alloc *Allocator, elementState *ElementStateStore, res *Result) []workItem {
	el := item.spec.El
	if el == nil {
		panic(errors.StoreMisuse("reconcile: element node without a widget").Format())
	}
	tag := el.Name()

	// An element reuses its counterpart's id iff the widget type name
	// matches. The key already influenced which counterpart was selected;
	// it is not consulted again here.
	var id view.ID
	reused := item.prev != nil && item.prev.Tag == tag
	if reused {
		id = item.prev.ID
	} else {
		id = alloc.Next()
	}
	el.SetID(id)
	res.ElementIDs[id] = struct{}{}

	if reused {
		res.ReusedElements++
		state := elementState.MustGet(id, tag)
		for device, captured := range state.Base.PointerCapture {
			if captured {
				res.PointerCaptures[device] = id
			}
		}
		el.UpdateState(state)
	} else {
		res.CreatedElements++
		state := el.InitializeState()
		if state == nil {
			state = &view.StateItem{}
		}
		if state.Data == nil {
			// Baseline structural state, so scrolling and hit-testing
			// never observe a missing entry.
			state.Data = &element.ContainerState{}
		}
		elementState.Insert(id, state)
	}

	item.visualParent.AppendChild(el)

	node := &LogicalNode{
		ID:        id,
		Key:       item.spec.Key,
		Tag:       tag,
		IsElement: true,
		ParentID:  item.logicalParent.ID,
		Props:     item.spec.Props,
	}
	item.logicalParent.Children = append(item.logicalParent.Children, node)

	var olds []*LogicalNode
	var oldKeys map[string]view.ID
	if item.prev != nil {
		olds = item.prev.Children
		oldKeys = item.prev.ChildrenKeys
	}

	// Push children in reverse so they are visited in tree order.
	children := item.spec.Children
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, workItem{
			spec:          children[i],
			visualParent:  el,
			logicalParent: node,
			prev:          matchChild(children[i], i, olds),
			prevParentKey: oldKeys,
		})
	}
	return stack
}

// reconcileComponent resolves identity for a component call, runs its state
// lifecycle, expands it through its view function, and schedules the
// produced subtree under the same visual and logical parents. Expansion is
// transparent to the visual tree: a component itself creates no widget.
func reconcileComponent(item workItem, stack []workItem, alloc *Allocator, userState *StateStore, res *Result) []workItem {
	def := item.spec.Def
	if def == nil || def.View == nil {
		panic(errors.StoreMisuse("reconcile: component node without a view function").Format())
	}
	key := item.spec.Key

	props := item.spec.Props
	if props == nil && def.DefaultProps != nil {
		props = def.DefaultProps()
	}

	// Identity resolution, in order: (1) the previous parent recorded this
	// key, reuse regardless of position; (2) the selected counterpart has
	// the same tag and the same key; (3) allocate.
	isNew := true
	var id view.ID
	if key != "" {
		if mapped, ok := item.prevParentKey[key]; ok {
			id = mapped
			isNew = false
		}
	}
	if isNew && item.prev != nil && item.prev.Tag == def.Tag && item.prev.Key == key {
		id = item.prev.ID
		isNew = false
	}
	if isNew {
		id = alloc.Next()
		res.CreatedComponents++
	} else {
		res.ReusedComponents++
	}
	res.ComponentIDs[id] = struct{}{}

	if isNew {
		var state any
		if def.DefaultState != nil {
			state = def.DefaultState()
		}
		userState.Insert(id, state)
		if def.Update != nil {
			// The one point where update runs during reconciliation.
			def.Update(state, props, &view.Event{Message: view.Initialized{}})
		}
	}

	state, ok := userState.Get(id)
	if !ok {
		panic(errors.MissingState(uint64(id), "component", def.Tag).Format())
	}

	produced := def.View(state, props, item.spec.Children, id)

	// Record the key for the next pass to consult.
	if key != "" {
		if item.logicalParent.ChildrenKeys == nil {
			item.logicalParent.ChildrenKeys = make(map[string]view.ID)
		}
		item.logicalParent.ChildrenKeys[key] = id
	}

	node := &LogicalNode{
		ID:       id,
		Key:      key,
		Tag:      def.Tag,
		ParentID: item.logicalParent.ID,
		Update:   def.Update,
		Props:    props,
	}
	item.logicalParent.Children = append(item.logicalParent.Children, node)

	// The expansion diffs against the old component node's single child. A
	// new instance must not inherit the old subtree: when components are
	// swapped in place, stale element state (scroll offsets and the like)
	// would otherwise survive into the replacement.
	var prevExpansion *LogicalNode
	var prevExpansionKeys map[string]view.ID
	if !isNew && item.prev != nil {
		if len(item.prev.Children) > 0 {
			prevExpansion = item.prev.Children[0]
		}
		prevExpansionKeys = item.prev.ChildrenKeys
	}

	return append(stack, workItem{
		spec:          produced,
		visualParent:  item.visualParent,
		logicalParent: node,
		prev:          prevExpansion,
		prevParentKey: prevExpansionKeys,
	})
}

// matchChild selects the previous counterpart for a new child: positional by
// default, overridden by the first previous sibling with an equal non-empty
// key. A key on only one side never overrides position.
func matchChild(child view.Node, index int, olds []*LogicalNode) *LogicalNode {
	if child.Key != "" {
		for _, old := range olds {
			if old.Key != "" && old.Key == child.Key {
				return old
			}
		}
	}
	if index < len(olds) {
		return olds[index]
	}
	return nil
}
