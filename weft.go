// Package weft is a retained-mode UI framework core for Go.
//
// View functions declare what the UI should look like each frame; the
// reconciliation engine merges that description against the previously
// retained state, preserving stable identities (and with them focus, scroll
// offsets, cursors and component state) across frames.
//
// This root package re-exports the common surface; the implementation lives
// in pkg/view, pkg/element, pkg/reconcile and pkg/runtime.
package weft

import (
	"github.com/weft-ui/weft/pkg/runtime"
	"github.com/weft-ui/weft/pkg/view"
)

// Version is the framework version.
const Version = "0.1.0"

// Common vocabulary re-exports.
type (
	ID           = view.ID
	Node         = view.Node
	Props        = view.Props
	Event        = view.Event
	ComponentDef = view.ComponentDef
	Element      = view.Element
	Runtime      = runtime.Runtime
	Option       = runtime.Option
)

// El wraps a widget in an element descriptor node.
func El(e view.Element) view.Node {
	return view.El(e)
}

// Call produces a component-call node.
func Call(def *view.ComponentDef) view.Node {
	return view.Call(def)
}

// New creates a runtime around a persistent visual root; pass nil for a
// default container root.
func New(root view.Element, opts ...runtime.Option) *runtime.Runtime {
	return runtime.New(root, opts...)
}

// Re-exported runtime options.
var (
	WithLogger        = runtime.WithLogger
	WithMetrics       = runtime.WithMetrics
	WithTracer        = runtime.WithTracer
	WithKeyValidation = runtime.WithKeyValidation
)
