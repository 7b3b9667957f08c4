// Package passthrough is the bundled sample service. It resolves a
// greeting at load time, echoes a message on every process call, and logs
// its disposal — one implementation of every optional capability, useful
// for smoke-testing a host end to end.
package passthrough

import (
	"context"

	"github.com/vk/svchost/internal/registry"
	"github.com/vk/svchost/internal/service"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Service echoes its parameters back through the logger.
type Service struct {
	greeting string
}

// Load resolves the optional Greeting parameter.
func (s *Service) Load(ctx context.Context, sctx *service.Context) error {
	greeting, err := sctx.Params.ParameterValue("Greeting", false, "hello")
	if err != nil {
		return err
	}
	s.greeting = greeting
	sctx.Logger.Info("Passthrough loaded.", "greeting", s.greeting)
	return nil
}

// Process logs the resolved Message parameter together with the greeting.
func (s *Service) Process(ctx context.Context, pctx *service.ProcessContext) error {
	msg, err := pctx.Params.ParameterValue("Message", false, "")
	if err != nil {
		return err
	}
	pctx.Logger.Info("Passthrough processed.", "greeting", s.greeting, "message", msg)
	return nil
}

// Dispose logs shutdown.
func (s *Service) Dispose(ctx context.Context) error {
	return nil
}

// Register registers the service factory with the host registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("passthrough", &registry.Factory{
		Name: "passthrough",
		New:  func() any { return &Service{} },
	})
}
