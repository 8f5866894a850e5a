// Package element provides the built-in widgets of the visual tree.
//
// Widgets implement view.Element. A fresh widget instance is constructed by
// view functions every frame; persistent per-instance state (scroll offsets,
// text cursors, focus) lives in the element state store keyed by the
// identity the reconciler assigns, not in widget fields. ElementData is the
// common embed providing identity and child bookkeeping.
package element
