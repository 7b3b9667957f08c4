package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/svchost/internal/config"
	"github.com/vk/svchost/internal/ctxlog"
	"github.com/vk/svchost/internal/host"
	"github.com/vk/svchost/internal/registry"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	appConfig *Config
	instance  *host.Instance
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger, a populated registry, and
// the orchestrator built from the loaded service configuration. Startup
// failures (unreadable config, unknown service identifier) are fatal and
// panic; the entrypoint recovers them into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfg, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All service modules registered.", "count", len(modules))

	instance, err := host.New(appConfig.HostType, cfg, reg, logger)
	if err != nil {
		// A service identifier that resolves to nothing is a deployment
		// mistake on par with an unreadable config file.
		panic(err)
	}
	logger.Debug("Host orchestrator built.", "host_type", appConfig.HostType)

	return &App{
		outW:      outW,
		logger:    logger,
		appConfig: appConfig,
		instance:  instance,
	}
}

// Instance returns the host orchestrator. This is primarily for testing.
func (a *App) Instance() *host.Instance { return a.instance }

// Run drives one complete service cycle: load with the layered parameter
// chain, one process call, then dispose.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if info := a.instance.Info(); info.Name != "" {
		a.logger.Info("Hosting service.", "name", info.Name, "version", info.Version)
	}

	src := a.instance.BuildLoadContextSource(a.appConfig.IncludeEnv, a.appConfig.Overrides)

	if err := a.instance.Load(ctx, src); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	defer a.instance.Dispose(ctx)

	if err := a.instance.Process(ctx, src); err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
