package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	assertEqual(t, "Paths.Results", "results/", cfg.Paths.Results)
	assertEqualFloat(t, "Detection.Threshold", 60.0, cfg.Detection.Threshold)
	assertEqualInt(t, "Detection.Workers", 4, cfg.Detection.Workers)
	if cfg.Detection.Signatures != nil {
		t.Error("Detection.Signatures should be nil by default")
	}
	assertEqualFloat(t, "Evaluation.MinAccuracy", 0, cfg.Evaluation.MinAccuracy)
	assertBoolPtr(t, "Evaluation.Interpret", false, cfg.Evaluation.Interpret)
}

func TestLoad_NoConfigFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertEqual(t, "Paths.Results", "results/", cfg.Paths.Results)
	assertEqualFloat(t, "Detection.Threshold", 60.0, cfg.Detection.Threshold)
}

func TestLoad_MergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
paths:
  results: out/
detection:
  workers: 8
  signatures:
    - type_tag: custom_tape
      headers: [loan id, pool id]
evaluation:
  min_accuracy: 80
`
	writeConfig(t, dir, content)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	assertEqual(t, "Paths.Results", "out/", cfg.Paths.Results)
	assertEqualInt(t, "Detection.Workers", 8, cfg.Detection.Workers)
	// unset file values keep their defaults
	assertEqualFloat(t, "Detection.Threshold", 60.0, cfg.Detection.Threshold)
	assertEqualFloat(t, "Evaluation.MinAccuracy", 80, cfg.Evaluation.MinAccuracy)
	if len(cfg.Detection.Signatures) != 1 {
		t.Fatalf("Detection.Signatures: got %d entries, want 1", len(cfg.Detection.Signatures))
	}
	if got := cfg.Detection.Signatures[0]["type_tag"]; got != "custom_tape" {
		t.Errorf("signature type_tag = %v, want custom_tape", got)
	}
}

func TestLoad_WalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "paths:\n  results: parent-results/\n")

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertEqual(t, "Paths.Results", "parent-results/", cfg.Paths.Results)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "paths: [not: valid: yaml\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestDefaultReportPath(t *testing.T) {
	cfg := New()
	assertEqual(t, "DefaultReportPath", filepath.Join("results/", "evaluation-report.json"), cfg.DefaultReportPath())
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".loanlens.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}

func assertEqualInt(t *testing.T, field string, want, got int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", field, got, want)
	}
}

func assertEqualFloat(t *testing.T, field string, want, got float64) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %f, want %f", field, got, want)
	}
}

func assertBoolPtr(t *testing.T, field string, want bool, got *bool) {
	t.Helper()
	if got == nil {
		t.Errorf("%s is nil, want %v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}
