package params

import "path/filepath"

// ConfigSource serves parameter values from the parameters section of a
// parsed service configuration. Path values resolve relative to the
// configuration file's own directory, so config-declared paths stay
// portable when the deployment moves.
type ConfigSource struct {
	values  map[string]string
	baseDir string
}

// NewConfigSource wraps the configuration's parameters. baseDir is the
// directory holding the configuration file.
func NewConfigSource(values map[string]string, baseDir string) *ConfigSource {
	return &ConfigSource{values: values, baseDir: baseDir}
}

// ParameterValue implements Source.
func (s *ConfigSource) ParameterValue(name string, required bool, defaultValue string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return finishValue(name, s.values[name], required, defaultValue)
}

// ParameterPath implements Source.
func (s *ConfigSource) ParameterPath(name string, required bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	val := s.values[name]
	if val != "" && !filepath.IsAbs(val) {
		val = filepath.Join(s.baseDir, val)
	}
	return finishPath(name, val, required)
}
