package runtime

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-ui/weft/pkg/element"
	"github.com/weft-ui/weft/pkg/reconcile"
	"github.com/weft-ui/weft/pkg/view"
)

// Default tracer name for weft runtimes.
const defaultTracerName = "weft"

// Runtime retains UI state across frames and drives reconciliation passes.
// Each independent UI tree gets its own Runtime; nothing is shared through
// package-level globals, so separate runtimes (and isolated tests) never
// interfere.
type Runtime struct {
	mu sync.Mutex

	alloc        *reconcile.Allocator
	userState    *reconcile.StateStore
	elementState *reconcile.ElementStateStore

	root         view.Element
	logical      *reconcile.LogicalNode
	elementIDs   map[view.ID]struct{}
	componentIDs map[view.ID]struct{}

	focus    view.ID
	hasFocus bool
	frame    uint64

	log          *slog.Logger
	tracer       trace.Tracer
	registry     prometheus.Registerer
	metrics      *passMetrics
	validateKeys bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(r *Runtime) {
		r.log = log
	}
}

// WithTracer sets the tracer. The default resolves the global otel provider,
// which is a no-op unless the application configured one.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runtime) {
		r.tracer = tracer
	}
}

// WithMetrics registers pass metrics with the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Runtime) {
		r.registry = reg
	}
}

// WithKeyValidation makes RenderFrame reject spec trees containing duplicate
// sibling keys instead of silently running the deterministic-but-unspecified
// tie-break.
func WithKeyValidation() Option {
	return func(r *Runtime) {
		r.validateKeys = true
	}
}

// New creates a runtime around a persistent visual root. A nil root gets a
// default container. The root persists unconditionally across passes; only
// its children are ever diffed.
func New(root view.Element, opts ...Option) *Runtime {
	if root == nil {
		root = element.NewContainer()
	}
	r := &Runtime{
		alloc:        reconcile.NewAllocator(),
		userState:    reconcile.NewStateStore(),
		elementState: reconcile.NewElementStateStore(),
		root:         root,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(defaultTracerName)
	}
	if r.registry != nil {
		r.metrics = newPassMetrics(r.registry)
	}
	return r
}

// RenderFrame runs one reconciliation pass over the given spec tree, swaps
// the outputs into the retained state, and garbage-collects entries for ids
// absent from the new tree. Concurrent calls serialize; the pass holds
// exclusive access to both stores for its duration.
func (r *Runtime) RenderFrame(ctx context.Context, spec view.Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, span := r.tracer.Start(ctx, "weft.reconcile",
		trace.WithAttributes(attribute.Int64("weft.frame", int64(r.frame))))
	defer span.End()

	if r.validateKeys {
		if err := reconcile.ValidateKeys(spec); err != nil {
			span.RecordError(err)
			return err
		}
	}

	start := time.Now()
	oldElementIDs := r.elementIDs
	oldComponentIDs := r.componentIDs

	res := reconcile.Reconcile(spec, r.root, r.logical, r.alloc, r.userState, r.elementState)

	// Commit, then collect: GC must never interleave with a running diff.
	r.logical = res.Logical
	r.elementIDs = res.ElementIDs
	r.componentIDs = res.ComponentIDs
	removedElements := r.elementState.RemoveUnused(oldElementIDs, res.ElementIDs)
	removedComponents := r.userState.RemoveUnused(oldComponentIDs, res.ComponentIDs)
	elapsed := time.Since(start)
	r.frame++

	span.SetAttributes(
		attribute.Int("weft.elements.created", res.CreatedElements),
		attribute.Int("weft.elements.reused", res.ReusedElements),
		attribute.Int("weft.components.created", res.CreatedComponents),
		attribute.Int("weft.components.reused", res.ReusedComponents),
		attribute.Int("weft.gc.removed", removedElements+removedComponents),
	)
	if r.metrics != nil {
		r.metrics.observe(res, elapsed, removedElements, removedComponents,
			r.userState.Len(), r.elementState.Len())
	}
	r.log.Debug("frame reconciled",
		"frame", r.frame,
		"duration", elapsed,
		"elements_created", res.CreatedElements,
		"elements_reused", res.ReusedElements,
		"components_created", res.CreatedComponents,
		"components_reused", res.ReusedComponents,
		"gc_removed", removedElements+removedComponents,
	)
	return nil
}

// Root returns the persistent visual root.
func (r *Runtime) Root() view.Element {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}

// Logical returns the logical tree of the last pass, or nil before the
// first frame.
func (r *Runtime) Logical() *reconcile.LogicalNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logical
}

// UserState returns the component state store.
func (r *Runtime) UserState() *reconcile.StateStore {
	return r.userState
}

// ElementState returns the element state store.
func (r *Runtime) ElementState() *reconcile.ElementStateStore {
	return r.elementState
}

// Allocator returns the runtime's identity allocator. Test harnesses may
// Reset it between isolated runs; production code never should.
func (r *Runtime) Allocator() *reconcile.Allocator {
	return r.alloc
}

// Focused returns the focused element id, if any.
func (r *Runtime) Focused() (view.ID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.focus, r.hasFocus
}

// Frame returns the number of committed frames.
func (r *Runtime) Frame() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// Fiber returns a paired logical/visual traversal root for the last pass.
func (r *Runtime) Fiber() reconcile.Fiber {
	r.mu.Lock()
	defer r.mu.Unlock()
	return reconcile.NewFiber(r.logical, r.root)
}
