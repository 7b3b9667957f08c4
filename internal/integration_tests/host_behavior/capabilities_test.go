package host_behavior_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/svchost/internal/registry"
	"github.com/vk/svchost/internal/service"
	"github.com/vk/svchost/internal/testutil"
)

// statelessModule registers a service with only a process capability: no
// load, no dispose.
type statelessModule struct {
	processed int
}

type statelessService struct {
	mod *statelessModule
}

func (s *statelessService) Process(ctx context.Context, pctx *service.ProcessContext) error {
	s.mod.processed++
	return nil
}

func (m *statelessModule) Register(r *registry.Registry) {
	r.Register("stateless", &registry.Factory{
		Name: "stateless",
		New:  func() any { return &statelessService{mod: m} },
	})
}

func TestServiceWithoutLoadProcessesImmediately(t *testing.T) {
	mod := &statelessModule{}
	result := testutil.RunHostTest(t, `service = "stateless"`, testutil.HarnessOptions{}, mod)

	require.NoError(t, result.Err)
	assert.Equal(t, 1, mod.processed)
}

// crankyDisposerModule registers a service whose Dispose always fails; the
// cycle must still succeed.
type crankyDisposerModule struct{}

type crankyDisposerService struct{}

func (s *crankyDisposerService) Process(ctx context.Context, pctx *service.ProcessContext) error {
	return nil
}

func (s *crankyDisposerService) Dispose(ctx context.Context) error {
	return errors.New("connection pool already drained")
}

func (m *crankyDisposerModule) Register(r *registry.Registry) {
	r.Register("cranky", &registry.Factory{
		Name: "cranky",
		New:  func() any { return &crankyDisposerService{} },
	})
}

func TestDisposeFailureDoesNotFailTheRun(t *testing.T) {
	result := testutil.RunHostTest(t, `service = "cranky"`, testutil.HarnessOptions{}, &crankyDisposerModule{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "dispose failed")
	assert.Contains(t, result.LogOutput, "connection pool already drained")
}

// failingProcessorModule registers a service whose Process fails; the error
// must reach the host unchanged.
type failingProcessorModule struct{}

type failingProcessorService struct{}

var errBadBatch = errors.New("bad batch")

func (s *failingProcessorService) Process(ctx context.Context, pctx *service.ProcessContext) error {
	return errBadBatch
}

func (m *failingProcessorModule) Register(r *registry.Registry) {
	r.Register("failing", &registry.Factory{
		Name: "failing",
		New:  func() any { return &failingProcessorService{} },
	})
}

func TestProcessErrorPropagatesToHost(t *testing.T) {
	result := testutil.RunHostTest(t, `service = "failing"`, testutil.HarnessOptions{}, &failingProcessorModule{})

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, errBadBatch)
}

// hostSectionModule proves the host-config accessor reaches services' host
// through introspection rather than the parameter chain.
func TestHostSectionIsExposedToTheHost(t *testing.T) {
	mod := &statelessModule{}
	cfg := `
service = "stateless"

host "cli" {
  banner = "on"
}

host "batch" {
  workers = 4
}
`
	result := testutil.RunHostTest(t, cfg, testutil.HarnessOptions{}, mod)
	require.NoError(t, result.Err)

	section := result.App.Instance().HostConfigSection()
	assert.Equal(t, map[string]string{"banner": "on"}, section)
}
