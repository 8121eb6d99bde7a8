package confschema_test

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confkit/confschema"
)

var update = flag.Bool("update", false, "update golden files")

// assertGolden compares the JSON-marshaled schema against a golden file.
// When -update is set, it writes the golden file instead.
// Comparison is semantic (JSON equality) to tolerate formatter differences.
func assertGolden(t *testing.T, goldenPath string, schema *jsonschema.Schema) {
	t.Helper()

	got, err := json.MarshalIndent(schema, "", "  ")
	require.NoError(t, err)

	got = append(got, '\n')

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, got, 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.JSONEq(t, string(want), string(got))
}

func TestGenerateGoldenAgentConfig(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/agent_config.yaml")
	require.NoError(t, err)

	gen := confschema.NewGenerator(confschema.WithTitle("Datadog Agent Configuration"))
	schema := gen.Generate(data)

	assertGolden(t, "testdata/agent_config.schema.json", schema)
}
