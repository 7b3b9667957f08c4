package config

// ServiceConfiguration is the parsed, static description of one deployment.
// Fields are written by a Loader and read-only afterwards.
type ServiceConfiguration struct {
	// Service is the loader target identifier resolved through the
	// service registry.
	Service string

	// Hosts holds per-host configuration sections keyed by host type.
	// Optional; may be nil.
	Hosts map[string]map[string]string

	// Schema describes the parameters and datasets the service expects.
	Schema *ServiceSchema

	// Info carries descriptive metadata about the deployment.
	Info *ServiceInfo

	// Parameters is the optional literal parameters section consumed by
	// the configuration context source.
	Parameters map[string]string

	// Dir is the directory holding the configuration file. Paths declared
	// in Parameters resolve relative to it.
	Dir string
}

// HasParameters reports whether the configuration declares any parameters.
func (c *ServiceConfiguration) HasParameters() bool {
	return len(c.Parameters) > 0
}

// HostSection returns the configuration sub-object for the given host
// type, or nil when none is declared. Pass-through read, no validation.
func (c *ServiceConfiguration) HostSection(hostType string) map[string]string {
	if c.Hosts == nil {
		return nil
	}
	return c.Hosts[hostType]
}

// ServiceInfo carries descriptive metadata from the configuration's info
// section.
type ServiceInfo struct {
	Name        string
	Version     string
	Description string
}

// ParameterSpec declares one expected parameter.
type ParameterSpec struct {
	Name        string
	Required    bool
	Description string
}

// ParametersSchema is a named collection of parameter specs.
type ParametersSchema []*ParameterSpec

// FieldSpec declares one expected field of a dataset.
type FieldSpec struct {
	Name        string
	Required    bool
	Description string
}

// DatasetSchema declares one expected dataset and its field set.
type DatasetSchema struct {
	Name   string
	Fields []*FieldSpec
}

// ServiceSchema groups the declarative expectations of a service: which
// parameters load and process take, and which datasets flow in and out.
// Read-only after construction.
type ServiceSchema struct {
	LoadParameters    ParametersSchema
	ProcessParameters ParametersSchema
	InputDatasets     []*DatasetSchema
	OutputDatasets    []*DatasetSchema
}

// InputDataset returns the schema for the named input dataset, or nil.
func (s *ServiceSchema) InputDataset(name string) *DatasetSchema {
	for _, ds := range s.InputDatasets {
		if ds.Name == name {
			return ds
		}
	}
	return nil
}
