package params

import (
	"os"
	"path/filepath"
)

// EnvSource serves parameter values from the process environment. A lookup
// for name reads the variable prefix+name, exactly as spelled — no case
// folding or separator rewriting.
type EnvSource struct {
	prefix string
}

// NewEnvSource builds an EnvSource with the given variable prefix.
func NewEnvSource(prefix string) *EnvSource {
	return &EnvSource{prefix: prefix}
}

// ParameterValue implements Source.
func (s *EnvSource) ParameterValue(name string, required bool, defaultValue string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return finishValue(name, os.Getenv(s.prefix+name), required, defaultValue)
}

// ParameterPath implements Source. Relative values resolve against the
// filesystem root; absolute values are cleaned and returned as-is.
func (s *EnvSource) ParameterPath(name string, required bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	val := os.Getenv(s.prefix + name)
	if val != "" {
		val = filepath.Join(string(filepath.Separator), val)
	}
	return finishPath(name, val, required)
}
