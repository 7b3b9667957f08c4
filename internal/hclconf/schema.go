package hclconf

import "github.com/hashicorp/hcl/v2"

// fileSchema is the top-level structure of a service configuration file.
type fileSchema struct {
	Service    string           `hcl:"service"`
	Info       *infoBlock       `hcl:"info,block"`
	Parameters *parametersBlock `hcl:"parameters,block"`
	Hosts      []*hostBlock     `hcl:"host,block"`
	Schema     *schemaBlock     `hcl:"schema,block"`
}

// infoBlock carries descriptive metadata about the deployment.
type infoBlock struct {
	Name        string `hcl:"name,optional"`
	Version     string `hcl:"version,optional"`
	Description string `hcl:"description,optional"`
}

// parametersBlock holds arbitrary literal parameter attributes.
type parametersBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// hostBlock is one per-host configuration section, labeled by host type.
type hostBlock struct {
	Type string   `hcl:"host_type,label"`
	Body hcl.Body `hcl:",remain"`
}

// schemaBlock declares the parameters and datasets the service expects.
type schemaBlock struct {
	LoadParameters    []*parameterBlock `hcl:"load_parameter,block"`
	ProcessParameters []*parameterBlock `hcl:"process_parameter,block"`
	InputDatasets     []*datasetBlock   `hcl:"input_dataset,block"`
	OutputDatasets    []*datasetBlock   `hcl:"output_dataset,block"`
}

// parameterBlock declares one expected parameter.
type parameterBlock struct {
	Name        string `hcl:"name,label"`
	Required    bool   `hcl:"required,optional"`
	Description string `hcl:"description,optional"`
}

// datasetBlock declares one expected dataset and its fields.
type datasetBlock struct {
	Name   string        `hcl:"name,label"`
	Fields []*fieldBlock `hcl:"field,block"`
}

// fieldBlock declares one expected dataset field.
type fieldBlock struct {
	Name        string `hcl:"name,label"`
	Required    bool   `hcl:"required,optional"`
	Description string `hcl:"description,optional"`
}
