// Package specyaml generates JSON Schema from structured configuration
// specification trees (spec.yaml files in the integrations-core layout).
//
// Unlike the comment-directive extraction in the parent package, a spec tree
// nests explicitly: every option either carries a typed value or a list of
// sub-options. Generation is a plain recursive transform with no ambiguity
// to resolve, so malformed trees are errors rather than best-effort
// recoveries.
package specyaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaURI is the JSON Schema dialect emitted for spec trees.
const SchemaURI = "https://json-schema.org/draft/2020-12/schema#"

// ErrInvalidSpec indicates a spec document that cannot produce a schema.
var ErrInvalidSpec = errors.New("invalid spec")

// Spec mirrors the top level of a configuration spec.yaml document.
type Spec struct {
	Name  string `yaml:"name"`
	Files []File `yaml:"files"`
}

// File is one configuration file described by a spec document.
type File struct {
	Name    string   `yaml:"name"`
	Options []Option `yaml:"options"`
}

// Option is one configuration option node. Leaf options carry a Value;
// grouping options carry nested Options.
type Option struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Value       *Value   `yaml:"value"`
	Options     []Option `yaml:"options"`
}

// Value is the typed-value description of a leaf option.
type Value struct {
	Type    string `yaml:"type"`
	Example any    `yaml:"example"`
}

// Generate builds a JSON Schema for the named integration from spec.yaml
// content. The spec must describe a file named "<integration>.yaml" whose
// first two options are the init_config and instances templates.
func Generate(integration string, data []byte) (*jsonschema.Schema, error) {
	var spec Spec

	err := yaml.Unmarshal(data, &spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	var (
		options []Option
		found   bool
	)

	for _, f := range spec.Files {
		if f.Name == integration+".yaml" {
			options = f.Options
			found = true

			break
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no file entry named %s.yaml", ErrInvalidSpec, integration)
	}

	if len(options) < 2 {
		return nil, fmt.Errorf("%w: expected init_config and instances options, got %d",
			ErrInvalidSpec, len(options))
	}

	initConfig, instances := options[0], options[1]

	return &jsonschema.Schema{
		Schema: SchemaURI,
		Title:  fmt.Sprintf("%s integration schema", integration),
		Type:   "object",
		Properties: map[string]*jsonschema.Schema{
			"init_config": {
				Type:       "object",
				Properties: walkOptions(initConfig.Options),
			},
			"instances": {
				Type:       "object",
				Properties: walkOptions(instances.Options),
			},
		},
		Required:             []string{"init_config", "instances"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}, nil
}

// walkOptions recursively converts option nodes into schema property nodes.
// Options without a name (template overrides) are skipped.
func walkOptions(options []Option) map[string]*jsonschema.Schema {
	if len(options) == 0 {
		return nil
	}

	props := make(map[string]*jsonschema.Schema, len(options))

	for _, opt := range options {
		if opt.Name == "" {
			continue
		}

		node := &jsonschema.Schema{
			Description: opt.Description,
		}

		if opt.Value != nil {
			if opt.Value.Example != nil {
				node.Examples = []any{opt.Value.Example}
			}

			if opt.Value.Type != "" {
				node.Type = opt.Value.Type
			}
		}

		if len(opt.Options) > 0 {
			node.Properties = walkOptions(opt.Options)
			node.Type = "object"
		}

		props[opt.Name] = node
	}

	return props
}
