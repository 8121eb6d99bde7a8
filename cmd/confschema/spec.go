package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/confkit/confschema"
	"github.com/confkit/confschema/specyaml"
)

func newSpecCmd() *cobra.Command {
	var (
		specPath string
		baseURL  string
		output   string
		indent   int
	)

	cmd := &cobra.Command{
		Use:   "spec [flags] <integration>",
		Short: "Generate a JSON Schema from an integration spec.yaml",
		Long: `Generate a JSON Schema from a structured configuration specification for the
named integration. The spec.yaml is fetched from the integrations-core
repository unless --spec-file points at a local copy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpec(cmd.Context(), args[0], specPath, baseURL, output, indent)
		},
	}

	cmd.Flags().StringVar(&specPath, "spec-file", "",
		"local spec.yaml path (skips remote fetch)")
	cmd.Flags().StringVar(&baseURL, "base-url", specyaml.DefaultBaseURL,
		"raw-content root for remote spec retrieval")
	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output file path (- for stdout)")
	cmd.Flags().IntVar(&indent, "indent", 2,
		"JSON indentation spaces")

	return cmd
}

func runSpec(ctx context.Context, integration, specPath, baseURL, output string, indent int) error {
	var (
		data []byte
		err  error
	)

	if specPath != "" {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return fmt.Errorf("%w: %w", confschema.ErrReadInput, err)
		}
	} else {
		slog.Debug("fetching spec",
			slog.String("integration", integration),
			slog.String("base_url", baseURL),
		)

		data, err = specyaml.NewFetcher(specyaml.WithBaseURL(baseURL)).Fetch(ctx, integration)
		if err != nil {
			return err
		}
	}

	schema, err := specyaml.Generate(integration, data)
	if err != nil {
		return err
	}

	return writeSchema(schema, output, indent)
}
