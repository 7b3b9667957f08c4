package hclconf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/svchost/internal/config"
	"github.com/vk/svchost/internal/ctxlog"
)

// Loader reads HCL or JSON service configuration files into the
// format-agnostic model. It implements config.Loader.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the configuration file at path. The syntax is chosen by file
// extension: .json goes through HCL's JSON parser, everything else through
// the native syntax parser.
func (l *Loader) Load(ctx context.Context, path string) (*config.ServiceConfiguration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading service configuration.", "path", path)

	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.EqualFold(filepath.Ext(path), ".json") {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, diags)
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode configuration file %s: %w", path, diags)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration path %s: %w", path, err)
	}

	cfg, err := l.translate(&raw, filepath.Dir(absPath))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}

	logger.Debug("Service configuration loaded.",
		"service", cfg.Service,
		"parameters", len(cfg.Parameters),
		"hosts", len(cfg.Hosts),
	)
	return cfg, nil
}

// translate converts the decoded file schema into the agnostic model.
func (l *Loader) translate(raw *fileSchema, dir string) (*config.ServiceConfiguration, error) {
	cfg := &config.ServiceConfiguration{
		Service: raw.Service,
		Schema:  &config.ServiceSchema{},
		Info:    &config.ServiceInfo{},
		Dir:     dir,
	}

	if raw.Info != nil {
		cfg.Info = &config.ServiceInfo{
			Name:        raw.Info.Name,
			Version:     raw.Info.Version,
			Description: raw.Info.Description,
		}
	}

	if raw.Parameters != nil {
		values, err := extractStringAttributes(raw.Parameters.Body)
		if err != nil {
			return nil, fmt.Errorf("parameters block: %w", err)
		}
		cfg.Parameters = values
	}

	if len(raw.Hosts) > 0 {
		cfg.Hosts = make(map[string]map[string]string, len(raw.Hosts))
		for _, h := range raw.Hosts {
			if _, exists := cfg.Hosts[h.Type]; exists {
				return nil, fmt.Errorf("duplicate host block %q", h.Type)
			}
			values, err := extractStringAttributes(h.Body)
			if err != nil {
				return nil, fmt.Errorf("host block %q: %w", h.Type, err)
			}
			cfg.Hosts[h.Type] = values
		}
	}

	if raw.Schema != nil {
		cfg.Schema = &config.ServiceSchema{
			LoadParameters:    translateParameters(raw.Schema.LoadParameters),
			ProcessParameters: translateParameters(raw.Schema.ProcessParameters),
			InputDatasets:     translateDatasets(raw.Schema.InputDatasets),
			OutputDatasets:    translateDatasets(raw.Schema.OutputDatasets),
		}
	}

	return cfg, nil
}

func translateParameters(blocks []*parameterBlock) config.ParametersSchema {
	specs := make(config.ParametersSchema, 0, len(blocks))
	for _, b := range blocks {
		specs = append(specs, &config.ParameterSpec{
			Name:        b.Name,
			Required:    b.Required,
			Description: b.Description,
		})
	}
	return specs
}

func translateDatasets(blocks []*datasetBlock) []*config.DatasetSchema {
	schemas := make([]*config.DatasetSchema, 0, len(blocks))
	for _, b := range blocks {
		ds := &config.DatasetSchema{Name: b.Name}
		for _, f := range b.Fields {
			ds.Fields = append(ds.Fields, &config.FieldSpec{
				Name:        f.Name,
				Required:    f.Required,
				Description: f.Description,
			})
		}
		schemas = append(schemas, ds)
	}
	return schemas
}

// extractStringAttributes evaluates every attribute of a body and converts
// the result to a string. Values must be literal (no variable references);
// numbers and bools convert to their string forms.
func extractStringAttributes(body hcl.Body) (map[string]string, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read attributes: %w", diags)
	}

	values := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute %q: %w", name, diags)
		}
		if val.IsNull() {
			continue
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("attribute %q is not convertible to string: %w", name, err)
		}
		values[name] = strVal.AsString()
	}
	return values, nil
}
