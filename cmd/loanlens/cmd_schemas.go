package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSchemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the registered data tape schema signatures",
		Long: `List the registered data tape schema signatures.

Shows the built-in signatures plus any custom ones from .loanlens.yaml,
in the priority order used to break coverage ties.`,
		Args: cobra.NoArgs,
		RunE: runSchemas,
	}
}

//nolint:errcheck // display function — fmt.Fprintf errors to stdout are not actionable
func runSchemas(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Coverage threshold: %.1f%%\n\n", registry.Threshold())

	const tagWidth = 20
	for _, sig := range registry.Signatures() {
		fmt.Fprintf(w, "%s  %d headers: %s\n",
			padRight(sig.TypeTag, tagWidth),
			len(sig.CanonicalHeaders),
			strings.Join(sig.CanonicalHeaders, ", "))
	}
	return nil
}
