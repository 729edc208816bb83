package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nplvision/loanlens/internal/evaluation"
	"github.com/nplvision/loanlens/internal/oracle"
	"github.com/nplvision/loanlens/internal/projectconfig"
	"github.com/nplvision/loanlens/internal/reporting"
	"github.com/nplvision/loanlens/internal/runlog"
)

var (
	evalOutputPath  string
	evalInterpret   bool
	evalMinAccuracy float64
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <run-log>",
		Short: "Score a classification run log against ground truth",
		Long: `Score a classification run log against filename-derived ground truth.

The run log is the console output of a classification run. Each document
block starts with a 📄 marker line; malformed lines are skipped. Ground
truth comes from keywords in each file name, so no label file is needed.

The full report, including classes with zero occurrences, is written as
JSON. A .gz output path writes the report gzip-compressed.`,
		Args: cobra.ExactArgs(1),
		RunE: runEvaluate,
	}

	cmd.Flags().StringVarP(&evalOutputPath, "output", "o", "", "Output JSON file for the report (default: from project config)")
	cmd.Flags().BoolVar(&evalInterpret, "interpret", false, "Print a plain-language interpretation of the results")
	cmd.Flags().Float64Var(&evalMinAccuracy, "min-accuracy", 0, "Fail with exit code 1 when overall accuracy is below this percentage")

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	logPath := args[0]

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("reading run log: %w", err)
	}

	records := runlog.Parse(string(data))
	slog.Debug("parsed run log", "path", logPath, "records", len(records))

	summary := evaluation.New(oracle.New()).Accumulate(records)

	outputPath := evalOutputPath
	if outputPath == "" {
		outputPath = cfg.DefaultReportPath()
	}
	if err := reporting.Write(summary, outputPath); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	w := cmd.OutOrStdout()
	interpret := evalInterpret
	if cfg.Evaluation.Interpret != nil && *cfg.Evaluation.Interpret {
		interpret = true
	}
	printSummary(w, summary, interpret)
	fmt.Fprintf(w, "Report saved to: %s\n", outputPath) //nolint:errcheck

	minAccuracy := evalMinAccuracy
	if minAccuracy == 0 {
		minAccuracy = cfg.Evaluation.MinAccuracy
	}
	if minAccuracy > 0 && summary.OverallAccuracy < minAccuracy {
		return &AccuracyError{
			Message: fmt.Sprintf("overall accuracy %.2f%% is below the required %.2f%%", summary.OverallAccuracy, minAccuracy),
		}
	}

	return nil
}

// loadProjectConfig loads .loanlens.yaml from the working directory
// upward, falling back to defaults when no file exists.
func loadProjectConfig() (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := projectconfig.Load(wd)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	return cfg, nil
}
