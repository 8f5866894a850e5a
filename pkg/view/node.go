package view

// ID names one logical instance for its entire lifetime. IDs are issued by
// the reconciler's allocator, are monotonically increasing, and are never
// reused while state stores, layout, or pending events could still refer to
// the instance they name. ID 0 is reserved for the persistent visual root.
type ID uint64

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // Concrete widget descriptor
	KindComponent             // Component call, expanded during reconciliation
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Node is one node of the specification tree.
type Node struct {
	Kind     Kind          // Node type
	El       Element       // For KindElement
	Def      *ComponentDef // For KindComponent
	Key      string        // Reconciliation key, "" means unkeyed
	Props    Props         // Read-only props
	Children []Node        // Child nodes; for component calls these are
	//                        spliced into the component's produced output
}

// El wraps a widget in an element descriptor node.
func El(e Element) Node {
	return Node{Kind: KindElement, El: e}
}

// Call produces a component-call node for the given definition.
func Call(def *ComponentDef) Node {
	return Node{Kind: KindComponent, Def: def}
}

// WithKey sets the reconciliation key. Specify a key when the node's
// position or type may change between frames but its state should be
// retained.
func (n Node) WithKey(key string) Node {
	n.Key = key
	return n
}

// WithProps sets the node's props.
func (n Node) WithProps(p Props) Node {
	n.Props = p
	return n
}

// Push appends child nodes.
func (n Node) Push(children ...Node) Node {
	n.Children = append(n.Children, children...)
	return n
}

// Tag returns the node's tag: the widget type name for elements, the
// component tag for component calls.
func (n Node) Tag() string {
	switch n.Kind {
	case KindElement:
		if n.El == nil {
			return ""
		}
		return n.El.Name()
	case KindComponent:
		if n.Def == nil {
			return ""
		}
		return n.Def.Tag
	}
	return ""
}
