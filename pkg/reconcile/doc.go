// Package reconcile implements the reconciliation engine: the pass that
// merges a freshly produced view description against the previously retained
// UI state.
//
// Each frame, Reconcile walks the new specification tree together with the
// previous pass's logical tree and resolves an identity for every node:
// either the id of an eligible previous counterpart (reusing its persisted
// state) or a freshly allocated one (initializing state). It simultaneously
// builds the new logical tree, used for event routing and the next frame's
// diff, and the visual tree of widget instances consumed by layout and
// rendering. Without stable identities every re-render would destroy every
// widget and lose all interactive state.
//
// # Matching policy
//
// Children are matched positionally by default. A non-empty key on both the
// new child and some previous sibling overrides position: the first previous
// sibling with an equal key becomes the counterpart. Elements then reuse
// their counterpart's id iff the widget type names match. Component calls
// reuse an id when the previous parent recorded their key, or when the
// counterpart has the same tag and key; otherwise they allocate. Freshly
// created components never inherit the old subtree as a diffing counterpart,
// so differently-keyed instances cannot leak state into each other.
//
// # State lifecycle
//
// Exactly one state value is alive per live id, split across two stores:
// component state and element state. Creation initializes, reuse mutates in
// place, and removal happens only in the caller-driven garbage collection
// step after a pass commits — never inline, because a node torn down in one
// place may be rebuilt under a different parent within the same pass.
//
// The pass is pure, synchronous and single-threaded: it performs no I/O,
// runs to completion, and needs exclusive access to both stores and the
// previous trees for its duration.
package reconcile
