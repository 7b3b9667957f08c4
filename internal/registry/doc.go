// Package registry provides the central "glue" between service identifiers
// and the compiled Go implementations behind them.
//
// A configuration file names its service by a string identifier; the
// Registry resolves that identifier to a Factory that can mint fresh
// service instances. During application startup the registry is populated
// by the bundled (or injected) modules, so an unknown identifier fails at
// resolution time with a clear error instead of deep inside a load call.
package registry
