package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nplvision/loanlens/internal/extraction"
)

var extractFormat string

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <textract-json>...",
		Short: "Extract pre-labels and loan fields from OCR output",
		Long: `Extract a pre-label and loan fields from Textract response files.

Each response's LINE blocks are joined into page text, then priority-ordered
phrase rules assign a pre-label and regex patterns pull the borrower name
and property address. Files whose text matches no rule are UNLABELED.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().StringVar(&extractFormat, "format", "text", "Output format: text | json")

	return cmd
}

type extractJSONReport struct {
	FileName string            `json:"fileName"`
	Pages    int               `json:"pages"`
	PreLabel string            `json:"preLabel"`
	Fields   extraction.Fields `json:"fields"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractFormat != "text" && extractFormat != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", extractFormat)
	}

	reports := make([]extractJSONReport, 0, len(args))
	for _, path := range args {
		pages, err := extraction.LoadResponse(path)
		if err != nil {
			return fmt.Errorf("loading Textract response: %w", err)
		}

		text := extraction.Text(pages)
		reports = append(reports, extractJSONReport{
			FileName: path,
			Pages:    len(pages),
			PreLabel: extraction.PreLabel(text),
			Fields:   extraction.ExtractFields(text),
		})
	}

	w := cmd.OutOrStdout()
	if extractFormat == "json" {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		_, err := fmt.Fprint(w, buf.String())
		return err
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(w) //nolint:errcheck
		}
		fmt.Fprintf(w, "File:      %s\n", report.FileName) //nolint:errcheck
		fmt.Fprintf(w, "Pages:     %d\n", report.Pages)    //nolint:errcheck
		fmt.Fprintf(w, "Pre-label: %s\n", report.PreLabel) //nolint:errcheck
		if report.Fields.BorrowerName != "" {
			fmt.Fprintf(w, "Borrower:  %s\n", report.Fields.BorrowerName) //nolint:errcheck
		}
		if report.Fields.PropertyAddress != "" {
			fmt.Fprintf(w, "Address:   %s\n", report.Fields.PropertyAddress) //nolint:errcheck
		}
	}
	return nil
}
