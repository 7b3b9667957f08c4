// Package hclconf is the concrete configuration loader. It parses service
// configuration files written in HCL native syntax (.hcl) or JSON syntax
// (.json, through hcl/v2's json parser) and translates them into the
// format-agnostic model in internal/config.
//
// Both syntaxes share one decode path, so a deployment can keep a
// config.json from an older host while new deployments use HCL.
package hclconf
