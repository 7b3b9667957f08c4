package registry

import (
	"fmt"
	"log/slog"
	"sort"
)

// Factory mints service instances for one registered identifier.
type Factory struct {
	// Name scopes loggers and diagnostics for services built here.
	Name string

	// New returns a fresh service instance implementing any subset of the
	// service capability interfaces.
	New func() any
}

// Module is the interface a bundled service package implements to register
// itself with an application's registry.
type Module interface {
	Register(r *Registry)
}

// Registry maps service identifiers to factories for a single application
// instance.
type Registry struct {
	factories map[string]*Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{factories: make(map[string]*Factory)}
}

// Register adds a factory under the given identifier. Registering the same
// identifier twice is a programmer error and panics.
func (r *Registry) Register(identifier string, factory *Factory) {
	if _, exists := r.factories[identifier]; exists {
		panic(fmt.Sprintf("service factory with identifier '%s' already registered", identifier))
	}
	if factory == nil || factory.New == nil {
		panic(fmt.Sprintf("service factory for '%s' must provide a New function", identifier))
	}
	slog.Debug("Registering service factory.", "identifier", identifier, "name", factory.Name)
	r.factories[identifier] = factory
}

// Resolve returns the factory registered under identifier.
func (r *Registry) Resolve(identifier string) (*Factory, error) {
	factory, ok := r.factories[identifier]
	if !ok {
		return nil, fmt.Errorf("unknown service identifier '%s' (registered: %v)", identifier, r.Identifiers())
	}
	return factory, nil
}

// Identifiers returns the registered identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
