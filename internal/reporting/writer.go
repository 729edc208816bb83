// Package reporting serializes evaluation summaries to durable storage
// and renders plain-language interpretations of the numbers.
package reporting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/nplvision/loanlens/internal/models"
	"github.com/nplvision/loanlens/internal/validation"
)

// Write serializes the summary as indented JSON at path, creating parent
// directories as needed. A path ending in ".gz" is gzip-compressed.
//
// The document is validated against the embedded report schema before
// anything touches disk, so a malformed report can never be persisted.
// Output bytes are a pure function of the summary: struct field order is
// fixed and encoding/json sorts the byDocumentType map keys, so two runs
// over identical input produce identical files.
func Write(summary *models.EvaluationSummary, path string) error {
	data, err := Marshal(summary)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			return fmt.Errorf("compress report: %w", err)
		}
		if err := gw.Close(); err != nil {
			return fmt.Errorf("compress report: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Marshal renders the summary as schema-valid indented JSON.
func Marshal(summary *models.EvaluationSummary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	if errs := validation.ValidateReportBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("report failed schema validation: %s", strings.Join(errs, "; "))
	}
	return data, nil
}

// Read loads a previously written report, transparently decompressing
// ".gz" files.
func Read(path string) (*models.EvaluationSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decompress report: %w", err)
		}
		defer gr.Close() //nolint:errcheck
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(gr); err != nil {
			return nil, fmt.Errorf("decompress report: %w", err)
		}
		data = buf.Bytes()
	}

	var summary models.EvaluationSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &summary, nil
}
