// Package lifecycle normalizes a heterogeneous service implementation into
// one uniform, state-checked contract.
//
// A Wrapper tracks a three-state machine — Unloaded → Loaded → Disposed —
// outside the service object, so implementations never track their own
// readiness. Capabilities are probed exactly once, when the service is
// wrapped.
package lifecycle

import (
	"context"
	"errors"

	"github.com/vk/svchost/internal/ctxlog"
	"github.com/vk/svchost/internal/service"
)

// State is the wrapper's position in the service lifecycle.
type State int

const (
	// Unloaded is the initial state: Load has not completed.
	Unloaded State = iota
	// Loaded means Load ran to completion (or the service has no load
	// capability and needs none).
	Loaded
	// Disposed is terminal: the wrapper accepts no further work.
	Disposed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Disposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// ErrNotLoaded reports a Process call on a service that declares a load
// capability before Load has completed. This is a host call-discipline
// violation and always propagates.
var ErrNotLoaded = errors.New("process called before load: call Load first")

// ErrDisposed reports a Load or Process call after Dispose. The lifecycle
// is one-way; a disposed wrapper never goes back.
var ErrDisposed = errors.New("service already disposed")

// Wrapper holds one service instance and its lifecycle state. It assumes
// the host serializes calls; there is no internal locking.
type Wrapper struct {
	loader    service.Loader
	processor service.Processor
	disposer  service.Disposer
	state     State
}

// Wrap probes svc's capabilities and returns a wrapper in the Unloaded
// state. svc may implement any subset of Loader, Processor, Disposer.
func Wrap(svc any) *Wrapper {
	w := &Wrapper{}
	if l, ok := svc.(service.Loader); ok {
		w.loader = l
	}
	if p, ok := svc.(service.Processor); ok {
		w.processor = p
	}
	if d, ok := svc.(service.Disposer); ok {
		w.disposer = d
	}
	return w
}

// State returns the current lifecycle state.
func (w *Wrapper) State() State { return w.state }

// HasLoad reports whether the wrapped service exposes a load capability.
// Pure probe, no side effects.
func (w *Wrapper) HasLoad() bool { return w.loader != nil }

// HasProcess reports whether the wrapped service exposes a process
// capability.
func (w *Wrapper) HasProcess() bool { return w.processor != nil }

// HasDispose reports whether the wrapped service exposes a dispose
// capability.
func (w *Wrapper) HasDispose() bool { return w.disposer != nil }

// Load runs the service's load capability to completion, then transitions
// to Loaded. Services without the capability transition immediately. A
// load failure propagates and leaves the state unchanged.
func (w *Wrapper) Load(ctx context.Context, sctx *service.Context) error {
	if w.state == Disposed {
		return ErrDisposed
	}
	if w.loader != nil {
		if err := w.loader.Load(ctx, sctx); err != nil {
			return err
		}
	}
	w.state = Loaded
	return nil
}

// Process invokes the service's process capability and returns its result
// unchanged. When the service declares a load capability, Process fails
// with ErrNotLoaded until Load has completed. Process never changes the
// lifecycle state. A service without the capability is a no-op.
func (w *Wrapper) Process(ctx context.Context, pctx *service.ProcessContext) error {
	if w.state == Disposed {
		return ErrDisposed
	}
	if w.loader != nil && w.state != Loaded {
		return ErrNotLoaded
	}
	if w.processor == nil {
		return nil
	}
	return w.processor.Process(ctx, pctx)
}

// Dispose runs the service's dispose capability, if any, and transitions
// to Disposed. Failures are logged and swallowed: cleanup must never mask
// a prior success or derail the shutdown path. Safe when the service was
// never loaded; repeated calls are no-ops.
func (w *Wrapper) Dispose(ctx context.Context) {
	if w.state == Disposed {
		return
	}
	if w.disposer != nil {
		if err := w.disposer.Dispose(ctx); err != nil {
			ctxlog.FromContext(ctx).Error("Service dispose failed; continuing shutdown.", "error", err)
		}
	}
	w.state = Disposed
}
