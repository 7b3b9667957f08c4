package params

import "github.com/vk/svchost/internal/errdefs"

// DefaultEnvPrefix is the environment-variable prefix used by the standard
// host instantiation.
const DefaultEnvPrefix = "SERVICE_"

// Source provides named parameter values with required/default semantics.
//
// An empty string counts as absent: it falls through to defaultValue and,
// when required, to a MissingParameterError. Implementations validate the
// parameter name before consulting any backing store.
type Source interface {
	// ParameterValue returns the value for name. When the source has no
	// value, defaultValue is returned; when that is also empty and required
	// is true, the lookup fails with a MissingParameterError carrying name.
	ParameterValue(name string, required bool, defaultValue string) (string, error)

	// ParameterPath returns the value for name resolved to a filesystem
	// path. There is no default fallback; only required/absent semantics
	// apply. How a relative value is anchored is implementation-specific.
	ParameterPath(name string, required bool) (string, error)
}

// finishValue applies the shared default/required tail of a value lookup.
func finishValue(name, val string, required bool, defaultValue string) (string, error) {
	if val == "" {
		val = defaultValue
	}
	if val == "" && required {
		return "", errdefs.NewMissingParameter(name)
	}
	return val, nil
}

// finishPath applies the shared required/absent tail of a path lookup.
func finishPath(name, path string, required bool) (string, error) {
	if path == "" && required {
		return "", errdefs.NewMissingParameter(name)
	}
	return path, nil
}
