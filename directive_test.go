package confschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confkit/confschema"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  confschema.LineKind
	}{
		"parameter directive": {
			input: "## @param timeout - integer - optional - default: 30",
			want:  confschema.KindParam,
		},
		"required parameter": {
			input: "## @param api_key - string - required",
			want:  confschema.KindParam,
		},
		"section directive": {
			input: "## @param logs - custom object - optional",
			want:  confschema.KindSection,
		},
		"list of custom objects is a parameter": {
			input: "## @param endpoints - list of custom objects - optional",
			want:  confschema.KindParam,
		},
		"bare @param is a plain comment": {
			input: "## @param",
			want:  confschema.KindComment,
		},
		"missing required flag is a plain comment": {
			input: "## @param timeout - integer",
			want:  confschema.KindComment,
		},
		"plain comment": {
			input: "## The port to listen on.",
			want:  confschema.KindComment,
		},
		"template open": {
			input: "{{ if .apm }}",
			want:  confschema.KindTemplateOpen,
		},
		"template close": {
			input: "{{ end }}",
			want:  confschema.KindTemplateClose,
		},
		"template line with end substring is a close": {
			input: "{{ if .backend }}",
			want:  confschema.KindTemplateClose,
		},
		"content line": {
			input: "port: 8080",
			want:  confschema.KindContent,
		},
		"blank line": {
			input: "",
			want:  confschema.KindContent,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, confschema.Classify(tc.input))
		})
	}
}

func TestParseParam(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  confschema.ParamDirective
		ok    bool
	}{
		"optional with default": {
			input: "## @param timeout - integer - optional - default: 30",
			want: confschema.ParamDirective{
				Name:       "timeout",
				RawType:    "integer",
				RawDefault: "30",
				HasDefault: true,
			},
			ok: true,
		},
		"required without default": {
			input: "## @param api_key - string - required",
			want: confschema.ParamDirective{
				Name:     "api_key",
				RawType:  "string",
				Required: true,
			},
			ok: true,
		},
		"multi word type": {
			input: "## @param tags - list of key:value elements - optional",
			want: confschema.ParamDirective{
				Name:    "tags",
				RawType: "list of key:value elements",
			},
			ok: true,
		},
		"default keeps rest of line": {
			input: "## @param site - string - optional - default: datadoghq.com, or your site",
			want: confschema.ParamDirective{
				Name:       "site",
				RawType:    "string",
				RawDefault: "datadoghq.com, or your site",
				HasDefault: true,
			},
			ok: true,
		},
		"trailing clause without default token ignored": {
			input: "## @param host - string - optional - example: localhost",
			want: confschema.ParamDirective{
				Name:    "host",
				RawType: "string",
			},
			ok: true,
		},
		"bare directive": {
			input: "## @param",
			ok:    false,
		},
		"missing flag": {
			input: "## @param timeout - integer",
			ok:    false,
		},
		"name with invalid characters": {
			input: "## @param log-level - string - optional",
			ok:    false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := confschema.ParseParam(tc.input)
			require.Equal(t, tc.ok, ok)

			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// Re-serializing a parsed directive and parsing it again must yield the same
// structured fields.
func TestParseParamRoundTrip(t *testing.T) {
	t.Parallel()

	directives := []confschema.ParamDirective{
		{Name: "timeout", RawType: "integer", RawDefault: "30", HasDefault: true},
		{Name: "api_key", RawType: "string", Required: true},
		{Name: "tags", RawType: "list of strings"},
		{Name: "proxy", RawType: "custom object", Required: true, RawDefault: "none", HasDefault: true},
	}

	for _, want := range directives {
		got, ok := confschema.ParseParam(want.String())
		require.True(t, ok, "re-parsing %q", want.String())
		assert.Equal(t, want, got)
	}
}

func TestParseSection(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
		ok    bool
	}{
		"section": {
			input: "## @param logs - custom object - optional",
			want:  "logs",
			ok:    true,
		},
		"required custom object is not a section": {
			input: "## @param proxy - custom object - required",
			ok:    false,
		},
		"plain parameter": {
			input: "## @param timeout - integer - optional",
			ok:    false,
		},
		"list of custom objects": {
			input: "## @param endpoints - list of custom objects - optional",
			ok:    false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := confschema.ParseSection(tc.input)
			require.Equal(t, tc.ok, ok)

			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
