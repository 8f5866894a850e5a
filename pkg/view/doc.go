// Package view provides the declarative vocabulary for describing UI.
//
// A view function produces a Node tree describing what the UI should look
// like right now. Nodes are either element descriptors (a concrete widget
// plus children) or component calls (a ComponentDef plus props and supplied
// children). The tree is immutable input to reconciliation: it is consumed,
// never mutated, and a fresh tree is produced every frame.
//
// # Building trees
//
// Trees are built with El and Call plus the chainable Node methods:
//
//	view.El(element.NewContainer()).Push(
//	    view.El(element.NewText("Hello")),
//	    view.Call(counterDef).WithKey("counter-1"),
//	)
//
// # Keys
//
// A Key overrides positional matching during reconciliation: a keyed node
// keeps its identity (and therefore its state) when it moves among its
// siblings. Keys must be unique among siblings; duplicate keys make matching
// ambiguous and which match wins is unspecified.
//
// # Elements and components
//
// Element is the capability widgets implement; concrete widgets live in
// pkg/element. ComponentDef describes a stateful component: a state factory,
// a view function expanding the call into more Nodes, and an update function
// receiving events.
package view
