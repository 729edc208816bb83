package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nplvision/loanlens/internal/dataset"
	"github.com/nplvision/loanlens/internal/projectconfig"
	"github.com/nplvision/loanlens/internal/schema"
)

var (
	detectThreshold float64
	detectParallel  bool
	detectWorkers   int
	detectFormat    string
)

func newDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <file>...",
		Short: "Detect the schema of data tape files from their header rows",
		Long: `Detect the schema of data tape files from their header rows.

Each file's first row is scored against the registered schema signatures.
A signature wins when it covers at least the threshold percentage of its
canonical headers; otherwise the file is reported as unknown, with the
best coverage observed. Custom signatures from .loanlens.yaml are checked
before the built-in ones.

Supports .csv and .xlsx files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDetect,
	}

	cmd.Flags().Float64Var(&detectThreshold, "threshold", 0, "Coverage percentage a signature must reach (default: from project config)")
	cmd.Flags().BoolVar(&detectParallel, "parallel", false, "Detect files concurrently")
	cmd.Flags().IntVar(&detectWorkers, "workers", 0, "Number of concurrent workers (default: 4, requires --parallel)")
	cmd.Flags().StringVar(&detectFormat, "format", "text", "Output format: text | json")

	return cmd
}

// detection pairs a file with its match result. Err records per-file
// failures so one unreadable file does not abort the batch.
type detection struct {
	FileName string             `json:"fileName"`
	Result   schema.MatchResult `json:"result"`
	Err      string             `json:"error,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	if detectFormat != "text" && detectFormat != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", detectFormat)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	results := make([]detection, len(args))
	if detectParallel {
		workers := detectWorkers
		if workers <= 0 {
			workers = cfg.Detection.Workers
		}
		slog.Debug("detecting in parallel", "files", len(args), "workers", workers)

		eg := errgroup.Group{}
		eg.SetLimit(workers)
		for i, path := range args {
			eg.Go(func() error {
				results[i] = detectFile(registry, path)
				return nil
			})
		}
		eg.Wait() //nolint:errcheck // workers never return errors
	} else {
		for i, path := range args {
			results[i] = detectFile(registry, path)
		}
	}

	if detectFormat == "json" {
		return outputDetectJSON(cmd, results)
	}

	w := cmd.OutOrStdout()
	const nameWidth = 32
	fmt.Fprintf(w, "%s  %-18s  %10s\n", padRight("File", nameWidth), "Type", "Confidence") //nolint:errcheck
	for _, d := range results {
		if d.Err != "" {
			fmt.Fprintf(w, "%s  error: %s\n", padRight(d.FileName, nameWidth), d.Err) //nolint:errcheck
			continue
		}
		fmt.Fprintf(w, "%s  %-18s  %9.2f%%\n", //nolint:errcheck
			padRight(d.FileName, nameWidth), d.Result.FileType, d.Result.Confidence)
	}
	return nil
}

func detectFile(registry *schema.Registry, path string) detection {
	headers, err := dataset.HeaderRow(path)
	if err != nil {
		return detection{FileName: path, Err: err.Error()}
	}
	return detection{FileName: path, Result: registry.Match(headers)}
}

// buildRegistry combines custom signatures from the project config with
// the built-in ones. Custom signatures come first so they win coverage
// ties against the built-ins.
func buildRegistry(cfg *projectconfig.ProjectConfig) (*schema.Registry, error) {
	threshold := detectThreshold
	if threshold <= 0 {
		threshold = cfg.Detection.Threshold
	}

	signatures := schema.DefaultRegistry().Signatures()
	if len(cfg.Detection.Signatures) > 0 {
		custom, err := schema.DecodeSignatures(cfg.Detection.Signatures)
		if err != nil {
			return nil, fmt.Errorf("decoding configured signatures: %w", err)
		}
		signatures = append(custom, signatures...)
	}

	registry, err := schema.NewRegistry(signatures, threshold)
	if err != nil {
		return nil, fmt.Errorf("building schema registry: %w", err)
	}
	return registry, nil
}

// outputDetectJSON marshals detections as JSON to the command's stdout.
func outputDetectJSON(cmd *cobra.Command, results []detection) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}
