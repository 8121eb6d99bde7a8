package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"github.com/confkit/confschema"
)

func newTemplateCmd() *cobra.Command {
	cfg := confschema.NewConfig()

	cmd := &cobra.Command{
		Use:   "template [flags] <template-file>",
		Short: "Extract a JSON Schema from a templated configuration file",
		Long: `Extract a JSON Schema (Draft 7) from a templated configuration file whose
schema information lives in ## @param comment directives. Extraction is
best-effort: malformed directives and unparseable defaults are skipped, never
fatal. Pass - to read the template from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTemplate(cfg, args[0])
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	completionErr := cfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	return cmd
}

func runTemplate(cfg *confschema.Config, path string) error {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("%w: stdin: %w", confschema.ErrReadInput, err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", confschema.ErrReadInput, err)
		}
	}

	if cfg.Title == "" && path != "-" {
		cfg.Title = confschema.TitleFromPath(path)
	}

	schema := cfg.NewGenerator().Generate(data)

	return writeSchema(schema, cfg.Output, cfg.Indent)
}

// writeSchema marshals the schema and writes it to the output path, or to
// stdout when the path is empty or "-".
func writeSchema(schema *jsonschema.Schema, output string, indentSpaces int) error {
	indent := "  "
	if indentSpaces > 0 {
		indent = strings.Repeat(" ", indentSpaces)
	}

	out, err := json.MarshalIndent(schema, "", indent)
	if err != nil {
		return fmt.Errorf("%w: %w", confschema.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if output == "" || output == "-" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(output, out, 0o644)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", confschema.ErrWriteOutput, err)
	}

	return nil
}
