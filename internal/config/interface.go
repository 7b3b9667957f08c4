package config

import "context"

// Loader is the interface for a format-specific configuration loader. It
// reads the file at path, translates it into the format-agnostic model,
// and records the file's directory for relative path resolution.
type Loader interface {
	Load(ctx context.Context, path string) (*ServiceConfiguration, error)
}
