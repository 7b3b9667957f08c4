package service

import (
	"context"
	"log/slog"

	"github.com/vk/svchost/internal/params"
)

// Loader is the optional load capability: one-time preparation before the
// first Process call.
type Loader interface {
	Load(ctx context.Context, sctx *Context) error
}

// Processor is the optional process capability: one unit of work.
type Processor interface {
	Process(ctx context.Context, pctx *ProcessContext) error
}

// Disposer is the optional dispose capability: cleanup at shutdown.
type Disposer interface {
	Dispose(ctx context.Context) error
}

// Context is the per-call value handed to a service's Load. It pairs the
// resolved parameter source with a logger scoped to the call. Created
// fresh for each invocation and discarded after.
type Context struct {
	Params params.Source
	Logger *slog.Logger
}

// NewContext builds a load context.
func NewContext(src params.Source, logger *slog.Logger) *Context {
	return &Context{Params: src, Logger: logger}
}

// ProcessContext is the per-call value handed to a service's Process.
type ProcessContext struct {
	Params params.Source
	Logger *slog.Logger
}

// NewProcessContext builds a process context.
func NewProcessContext(src params.Source, logger *slog.Logger) *ProcessContext {
	return &ProcessContext{Params: src, Logger: logger}
}
