package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/svchost/internal/config"
	"github.com/vk/svchost/internal/lifecycle"
	"github.com/vk/svchost/internal/params"
	"github.com/vk/svchost/internal/registry"
	"github.com/vk/svchost/internal/service"
)

// ErrNothingLoaded reports a Process call on an orchestrator that has not
// loaded a service.
var ErrNothingLoaded = errors.New("no service loaded: call Load before Process")

// Instance drives one hosted service on behalf of a host environment. It
// holds exactly one service instance at a time and is not safe for
// concurrent reentrant use.
type Instance struct {
	hostType  string
	cfg       *config.ServiceConfiguration
	factory   *registry.Factory
	envPrefix string
	logger    *slog.Logger
	wrapped   *lifecycle.Wrapper
}

// New builds an orchestrator for the given host type. The service
// identifier in cfg is resolved through reg immediately, so a typo in the
// configuration fails here rather than at load time. The logger is scoped
// by the factory name; a nil baseLogger falls back to slog.Default.
func New(hostType string, cfg *config.ServiceConfiguration, reg *registry.Registry, baseLogger *slog.Logger) (*Instance, error) {
	factory, err := reg.Resolve(cfg.Service)
	if err != nil {
		return nil, fmt.Errorf("resolving service for host %q: %w", hostType, err)
	}
	if baseLogger == nil {
		baseLogger = slog.Default()
	}
	return &Instance{
		hostType:  hostType,
		cfg:       cfg,
		factory:   factory,
		envPrefix: params.DefaultEnvPrefix,
		logger:    baseLogger.With("service", factory.Name),
	}, nil
}

// Info returns the configuration's descriptive metadata.
func (i *Instance) Info() *config.ServiceInfo { return i.cfg.Info }

// LoadParameterSpecs returns the declared load parameter specs.
func (i *Instance) LoadParameterSpecs() config.ParametersSchema {
	return i.cfg.Schema.LoadParameters
}

// ProcessParameterSpecs returns the declared process parameter specs.
func (i *Instance) ProcessParameterSpecs() config.ParametersSchema {
	return i.cfg.Schema.ProcessParameters
}

// InputDatasetSpecs returns the declared input dataset specs.
func (i *Instance) InputDatasetSpecs() []*config.DatasetSchema {
	return i.cfg.Schema.InputDatasets
}

// OutputDatasetSpecs returns the declared output dataset specs.
func (i *Instance) OutputDatasetSpecs() []*config.DatasetSchema {
	return i.cfg.Schema.OutputDatasets
}

// HostConfigSection returns the configuration sub-object for this
// instance's host type, or nil when none is declared.
func (i *Instance) HostConfigSection() map[string]string {
	return i.cfg.HostSection(i.hostType)
}

// ValidateInputDataset checks an incoming dataset against the declared
// schema.
func (i *Instance) ValidateInputDataset(name string, fieldNames []string) error {
	return i.cfg.Schema.ValidateInputDataset(name, fieldNames)
}

// IsLoaded reports whether a service instance is currently held.
func (i *Instance) IsLoaded() bool { return i.wrapped != nil }

// BuildLoadContextSource assembles the parameter chain for a load call,
// highest priority first: the override map when supplied, the environment
// (when enabled), then the configuration's parameters section when it
// declares any.
func (i *Instance) BuildLoadContextSource(includeEnv bool, override map[string]string) params.Source {
	var members []params.Source
	if override != nil {
		members = append(members, params.NewMapSource(override))
	}
	if includeEnv {
		members = append(members, params.NewEnvSource(i.envPrefix))
	}
	if i.cfg.HasParameters() {
		members = append(members, params.NewConfigSource(i.cfg.Parameters, i.cfg.Dir))
	}
	return params.NewCoalescing(members...)
}

// Load instantiates the service via its factory, wraps it, and drives its
// load capability to completion. When src is nil and the service wants a
// load, the default chain from BuildLoadContextSource is used. A
// previously held instance is replaced.
func (i *Instance) Load(ctx context.Context, src params.Source) error {
	svc := i.factory.New()
	wrapped := lifecycle.Wrap(svc)
	i.logger.Debug("Service instantiated.",
		"has_load", wrapped.HasLoad(),
		"has_process", wrapped.HasProcess(),
		"has_dispose", wrapped.HasDispose(),
	)

	var sctx *service.Context
	if wrapped.HasLoad() {
		if src == nil {
			src = i.BuildLoadContextSource(true, nil)
		}
		sctx = service.NewContext(src, i.logger.With("phase", "load"))
	}

	if err := wrapped.Load(ctx, sctx); err != nil {
		return fmt.Errorf("loading service '%s': %w", i.factory.Name, err)
	}

	i.wrapped = wrapped
	i.logger.Info("Service loaded.")
	return nil
}

// Process constructs a fresh per-call context around src and drives the
// wrapped service's process capability, returning its result unchanged.
func (i *Instance) Process(ctx context.Context, src params.Source) error {
	if i.wrapped == nil {
		return ErrNothingLoaded
	}
	pctx := service.NewProcessContext(src, i.logger.With("phase", "process"))
	return i.wrapped.Process(ctx, pctx)
}

// Dispose releases the held service instance. A no-op when nothing was
// ever loaded; never returns an error.
func (i *Instance) Dispose(ctx context.Context) {
	if i.wrapped == nil {
		return
	}
	i.wrapped.Dispose(ctx)
	i.logger.Info("Service disposed.")
}
