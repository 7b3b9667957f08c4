package params

// Coalescing resolves a parameter by querying an ordered list of member
// sources and taking the first non-empty result. Resolution is
// deterministic given the member order and the members' state at
// construction time.
type Coalescing struct {
	members []Source
}

// NewCoalescing builds a Coalescing source over the given members, highest
// priority first.
func NewCoalescing(members ...Source) *Coalescing {
	return &Coalescing{members: members}
}

// ParameterValue implements Source. The name is validated once up front;
// members are then queried strictly in order with required and default
// semantics deferred until the whole chain has been exhausted.
func (c *Coalescing) ParameterValue(name string, required bool, defaultValue string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	for _, m := range c.members {
		val, err := m.ParameterValue(name, false, "")
		if err != nil {
			return "", err
		}
		if val != "" {
			return val, nil
		}
	}
	return finishValue(name, "", required, defaultValue)
}

// ParameterPath implements Source. Same member ordering as ParameterValue,
// but there is no caller-supplied default to fall back on.
func (c *Coalescing) ParameterPath(name string, required bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	for _, m := range c.members {
		val, err := m.ParameterPath(name, false)
		if err != nil {
			return "", err
		}
		if val != "" {
			return val, nil
		}
	}
	return finishPath(name, "", required)
}
