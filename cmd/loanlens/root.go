package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loanlens",
		Short: "LoanLens - CLI tool for loan document classification pipelines",
		Long: `LoanLens is a command-line tool for loan document classification pipelines.

It scores classification run logs against filename-derived ground truth,
detects data tape schemas from header rows, and extracts labels and loan
fields from OCR output.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newDetectCommand())
	cmd.AddCommand(newExtractCommand())
	cmd.AddCommand(newSchemasCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
