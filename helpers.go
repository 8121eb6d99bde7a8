package confschema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// DefaultValue converts a Go value to a [json.RawMessage] suitable for use
// as a JSON Schema default value. Returns nil if marshaling fails.
func DefaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}

// TrueSchema returns a schema that validates everything (marshals to JSON true).
func TrueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// FalseSchema returns a schema that validates nothing (marshals to JSON false).
func FalseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
