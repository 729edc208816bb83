// Package projectconfig provides the ProjectConfig struct and loader for
// .loanlens.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultResultsDir = "results/"
	DefaultReportName = "evaluation-report.json"

	DefaultCoverageThreshold = 60.0
	DefaultDetectWorkers     = 4
)

// PathsConfig holds output directory paths.
type PathsConfig struct {
	Results string `yaml:"results,omitempty"`
}

// DetectionConfig holds file-type detection parameters. Signatures are
// kept loosely typed here; the schema package decodes them.
type DetectionConfig struct {
	Threshold  float64          `yaml:"threshold,omitempty"`
	Workers    int              `yaml:"workers,omitempty"`
	Signatures []map[string]any `yaml:"signatures,omitempty"`
}

// EvaluationConfig holds evaluation run parameters.
type EvaluationConfig struct {
	// MinAccuracy below which the evaluate command exits non-zero.
	// Zero disables the gate.
	MinAccuracy float64 `yaml:"min_accuracy,omitempty"`
	Interpret   *bool   `yaml:"interpret,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .loanlens.yaml.
type ProjectConfig struct {
	Paths      PathsConfig      `yaml:"paths,omitempty"`
	Detection  DetectionConfig  `yaml:"detection,omitempty"`
	Evaluation EvaluationConfig `yaml:"evaluation,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Results: DefaultResultsDir,
		},
		Detection: DetectionConfig{
			Threshold: DefaultCoverageThreshold,
			Workers:   DefaultDetectWorkers,
		},
		Evaluation: EvaluationConfig{
			MinAccuracy: 0,
			Interpret:   boolPtr(false),
		},
	}
}

// DefaultReportPath returns the default evaluation report destination.
func (c *ProjectConfig) DefaultReportPath() string {
	return filepath.Join(c.Paths.Results, DefaultReportName)
}

// Load finds .loanlens.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .loanlens.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .loanlens.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .loanlens.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently
// swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".loanlens.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}

	if src.Detection.Threshold != 0 {
		dst.Detection.Threshold = src.Detection.Threshold
	}
	if src.Detection.Workers != 0 {
		dst.Detection.Workers = src.Detection.Workers
	}
	if src.Detection.Signatures != nil {
		dst.Detection.Signatures = src.Detection.Signatures
	}

	if src.Evaluation.MinAccuracy != 0 {
		dst.Evaluation.MinAccuracy = src.Evaluation.MinAccuracy
	}
	if src.Evaluation.Interpret != nil {
		dst.Evaluation.Interpret = src.Evaluation.Interpret
	}
}

func boolPtr(b bool) *bool {
	return &b
}
