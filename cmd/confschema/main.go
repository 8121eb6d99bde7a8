// Package main provides the CLI entry point for confschema, a tool that
// generates JSON Schema documents from annotated configuration sources.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/confkit/confschema/log"
	"github.com/confkit/confschema/version"
)

func main() {
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "confschema",
		Short: "Generate JSON Schema from annotated configuration sources",
		Long: `confschema generates JSON Schema documents from two kinds of configuration
sources: templated configuration files whose schema information lives in
## @param comment directives (best-effort extraction), and structured
spec.yaml configuration specifications (exact tree transform).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(newTemplateCmd(), newSpecCmd(), newVersionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
