package config

import "github.com/vk/svchost/internal/errdefs"

// ValidateInputDataset checks an incoming dataset against the schema: the
// dataset must be declared, and every required field must be present in
// fieldNames. Undeclared extra fields are allowed.
func (s *ServiceSchema) ValidateInputDataset(name string, fieldNames []string) error {
	ds := s.InputDataset(name)
	if ds == nil {
		return errdefs.NewBadDataset(name, "")
	}

	present := make(map[string]struct{}, len(fieldNames))
	for _, f := range fieldNames {
		present[f] = struct{}{}
	}
	for _, f := range ds.Fields {
		if !f.Required {
			continue
		}
		if _, ok := present[f.Name]; !ok {
			return errdefs.NewMissingDatasetField(ds.Name, f.Name)
		}
	}
	return nil
}
