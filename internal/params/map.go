package params

import "path/filepath"

// MapSource serves parameter values from a literal map, typically host
// overrides supplied at invocation time.
type MapSource struct {
	values map[string]string
}

// NewMapSource wraps the given map. The map is not copied; callers hand
// over ownership.
func NewMapSource(values map[string]string) *MapSource {
	return &MapSource{values: values}
}

// ParameterValue implements Source.
func (s *MapSource) ParameterValue(name string, required bool, defaultValue string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return finishValue(name, s.values[name], required, defaultValue)
}

// ParameterPath implements Source. Relative values are anchored at the
// process working directory, since the override map comes from the host's
// own invocation context.
func (s *MapSource) ParameterPath(name string, required bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	val := s.values[name]
	if val != "" {
		abs, err := filepath.Abs(val)
		if err != nil {
			return "", err
		}
		val = abs
	}
	return finishPath(name, val, required)
}
