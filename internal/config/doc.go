// Package config defines the format-agnostic model of a service
// configuration: the loader target identifier, per-host sections, the
// parameter and dataset schema, descriptive info, and the optional literal
// parameters consumed by the configuration context source.
//
// The model is immutable once loaded and is the single source of truth for
// the host orchestrator. Concrete file-format loaders implement the Loader
// interface in separate packages; the HCL/JSON one lives in
// internal/hclconf.
package config
