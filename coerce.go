package confschema

import (
	"strconv"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// JSON Schema type constants.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

// typeMapping maps free-text type descriptions to JSON Schema types.
// Lookups are case-insensitive and trimmed; misses default to string.
var typeMapping = map[string]string{
	"string":                          typeString,
	"boolean":                         typeBoolean,
	"integer":                         typeInteger,
	"number":                          typeNumber,
	"duration":                        typeString,
	"map":                             typeObject,
	"custom object":                   typeObject,
	"list of strings":                 typeArray,
	"list of key:value elements":      typeArray,
	"list of custom objects":          typeArray,
	"space separated list of strings": typeArray,
	"list of key:value strings":       typeObject,
}

// placeholderTokens are angle-bracketed example values that appear as
// written defaults without representing real ones. They coerce to "no
// default" so the schema is not polluted with misleading literal text.
var placeholderTokens = map[string]struct{}{
	"<HOSTNAME_NAME>":       {},
	"<ENDPOINT>:<PORT>":     {},
	"<TAG_KEY>:<TAG_VALUE>": {},
}

// SchemaType maps a free-text type description to a JSON Schema type. The
// mapping is total: unknown descriptions map to "string" rather than
// failing.
func SchemaType(rawType string) string {
	t, ok := typeMapping[strings.ToLower(strings.TrimSpace(rawType))]
	if !ok {
		return typeString
	}

	return t
}

// ItemsSchema derives the array item schema from a free-text type
// description that mapped to "array".
func ItemsSchema(rawType string) *jsonschema.Schema {
	rawType = strings.ToLower(strings.TrimSpace(rawType))

	switch {
	case strings.Contains(rawType, "strings"):
		return &jsonschema.Schema{Type: typeString}
	case strings.Contains(rawType, "key:value"):
		return &jsonschema.Schema{Type: typeString}
	case strings.Contains(rawType, "custom objects"):
		return &jsonschema.Schema{Type: typeObject}
	}

	return &jsonschema.Schema{Type: typeString}
}

// CoerceDefault converts raw default-value text to a typed value. The
// second return is false when no usable default exists: empty text and
// placeholder tokens both coerce to absence, which suppresses the default
// field entirely rather than emitting a stand-in.
//
// Rules apply in order: boolean literals, floating-point text containing a
// dot, integer text, quote-wrapped strings (unwrapped), placeholder tokens,
// and finally the literal string.
func CoerceDefault(raw string) (any, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	switch strings.ToLower(raw) {
	case "true":
		return true, true
	case "false":
		return false, true
	}

	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f, true
		}
	} else if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}

	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			return raw[1 : len(raw)-1], true
		}
	}

	if _, ok := placeholderTokens[raw]; ok {
		return nil, false
	}

	return raw, true
}
