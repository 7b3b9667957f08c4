package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/svchost/internal/ctxlog"
	"github.com/vk/svchost/internal/service"
)

// fullService implements every capability and records call order.
type fullService struct {
	calls      []string
	loadErr    error
	processErr error
	disposeErr error
}

func (s *fullService) Load(ctx context.Context, sctx *service.Context) error {
	s.calls = append(s.calls, "load")
	return s.loadErr
}

func (s *fullService) Process(ctx context.Context, pctx *service.ProcessContext) error {
	s.calls = append(s.calls, "process")
	return s.processErr
}

func (s *fullService) Dispose(ctx context.Context) error {
	s.calls = append(s.calls, "dispose")
	return s.disposeErr
}

// processOnlyService has no load or dispose capability.
type processOnlyService struct {
	processed int
}

func (s *processOnlyService) Process(ctx context.Context, pctx *service.ProcessContext) error {
	s.processed++
	return nil
}

func TestCapabilityProbing(t *testing.T) {
	t.Parallel()

	t.Run("full service", func(t *testing.T) {
		w := Wrap(&fullService{})
		assert.True(t, w.HasLoad())
		assert.True(t, w.HasProcess())
		assert.True(t, w.HasDispose())
	})

	t.Run("process only", func(t *testing.T) {
		w := Wrap(&processOnlyService{})
		assert.False(t, w.HasLoad())
		assert.True(t, w.HasProcess())
		assert.False(t, w.HasDispose())
	})

	t.Run("empty service", func(t *testing.T) {
		w := Wrap(struct{}{})
		assert.False(t, w.HasLoad())
		assert.False(t, w.HasProcess())
		assert.False(t, w.HasDispose())
	})
}

func TestLoadBeforeProcessOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("process before load fails for loadable services", func(t *testing.T) {
		w := Wrap(&fullService{})
		err := w.Process(ctx, nil)
		assert.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("process after load succeeds", func(t *testing.T) {
		svc := &fullService{}
		w := Wrap(svc)
		require.NoError(t, w.Load(ctx, nil))
		require.Equal(t, Loaded, w.State())
		require.NoError(t, w.Process(ctx, nil))
		assert.Equal(t, []string{"load", "process"}, svc.calls)
	})

	t.Run("service without load needs no prior transition", func(t *testing.T) {
		svc := &processOnlyService{}
		w := Wrap(svc)
		require.NoError(t, w.Process(ctx, nil))
		require.NoError(t, w.Process(ctx, nil))
		assert.Equal(t, 2, svc.processed)
	})

	t.Run("load without capability still transitions", func(t *testing.T) {
		w := Wrap(&processOnlyService{})
		require.NoError(t, w.Load(ctx, nil))
		assert.Equal(t, Loaded, w.State())
	})

	t.Run("load failure propagates and blocks process", func(t *testing.T) {
		boom := errors.New("model not found")
		svc := &fullService{loadErr: boom}
		w := Wrap(svc)
		assert.ErrorIs(t, w.Load(ctx, nil), boom)
		assert.Equal(t, Unloaded, w.State())
		assert.ErrorIs(t, w.Process(ctx, nil), ErrNotLoaded)
	})

	t.Run("process runs to completion before returning", func(t *testing.T) {
		// The wrapper's contract is a plain blocking call: when Process
		// returns, the service body has finished.
		svc := &fullService{}
		w := Wrap(svc)
		require.NoError(t, w.Load(ctx, nil))
		require.NoError(t, w.Process(ctx, nil))
		assert.Contains(t, svc.calls, "process")
	})

	t.Run("process error returns unchanged", func(t *testing.T) {
		boom := errors.New("bad batch")
		svc := &fullService{processErr: boom}
		w := Wrap(svc)
		require.NoError(t, w.Load(ctx, nil))
		assert.ErrorIs(t, w.Process(ctx, nil), boom)
		assert.Equal(t, Loaded, w.State())
	})
}

func TestDispose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("dispose without prior load is safe", func(t *testing.T) {
		svc := &fullService{}
		w := Wrap(svc)
		w.Dispose(ctx)
		assert.Equal(t, Disposed, w.State())
		assert.Equal(t, []string{"dispose"}, svc.calls)
	})

	t.Run("dispose failures are swallowed and logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logCtx := ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(buf, nil)))

		svc := &fullService{disposeErr: errors.New("socket already closed")}
		w := Wrap(svc)
		require.NoError(t, w.Load(logCtx, nil))
		w.Dispose(logCtx)

		assert.Equal(t, Disposed, w.State())
		assert.Contains(t, buf.String(), "dispose failed")
		assert.Contains(t, buf.String(), "socket already closed")
	})

	t.Run("repeated dispose is a no-op", func(t *testing.T) {
		svc := &fullService{}
		w := Wrap(svc)
		w.Dispose(ctx)
		w.Dispose(ctx)
		assert.Equal(t, []string{"dispose"}, svc.calls)
	})

	t.Run("no further work after dispose", func(t *testing.T) {
		w := Wrap(&fullService{})
		w.Dispose(ctx)
		assert.ErrorIs(t, w.Load(ctx, nil), ErrDisposed)
		assert.ErrorIs(t, w.Process(ctx, nil), ErrDisposed)
	})
}

func TestStateString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "unloaded", Unloaded.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "disposed", Disposed.String())
	assert.Equal(t, "unknown", State(42).String())
}
