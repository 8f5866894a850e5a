// Package runtime owns the retained UI state across frames: the identity
// allocator, both state stores, the persistent visual root, and the logical
// tree from the last pass.
//
// A Runtime is driven by an external scheduler: once per frame the caller
// renders its view function into a node tree and hands it to RenderFrame,
// which runs one reconciliation pass to completion, swaps the outputs into
// the retained state, and garbage-collects state entries whose ids vanished.
// Passes are serialized; there is no reentrancy and no cancellation — a pass
// is all-or-nothing.
//
// Events flow the other way: Dispatch resolves a target in the logical tree
// and bubbles the event toward the root through component update functions.
// The caller then renders the next frame.
//
// Instrumentation is opt-in through functional options: a slog logger,
// prometheus metrics, and OpenTelemetry spans per pass.
package runtime
