// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pt2gff/pkg/types"
)

// RunFile is the on-disk YAML summary of one batch conversion run. The
// operator can keep it next to the outputs as a record of what was
// converted and with which settings.
type RunFile struct {
	Config  RunConfig          `yaml:"config"`
	Files   []types.FileReport `yaml:"files"`
	Summary RunSummary         `yaml:"summary"`
}

// RunConfig stores the settings that produced the run.
type RunConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	Force     bool   `yaml:"force"`
}

// RunSummary stores batch totals and a timestamp.
type RunSummary struct {
	Converted     int       `yaml:"converted"`
	Skipped       int       `yaml:"skipped"`
	Failed        int       `yaml:"failed"`
	Regions       int       `yaml:"regions"`
	SkippedTokens int       `yaml:"skipped_tokens"`
	Timestamp     time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the batch configuration, per-file reports, and totals
// to a YAML file at path.
func WriteRunFile(path string, cfg types.ConvertConfig, reports []types.FileReport, result BatchResult) error {
	rf := RunFile{
		Config: RunConfig{
			InputDir:  cfg.InputDir,
			OutputDir: cfg.OutputDir,
			Force:     cfg.Force,
		},
		Files: reports,
		Summary: RunSummary{
			Converted: result.Converted,
			Skipped:   result.Skipped,
			Failed:    result.Failed,
			Timestamp: time.Now(),
		},
	}
	for _, r := range reports {
		rf.Summary.Regions += r.Regions
		rf.Summary.SkippedTokens += r.SkippedTokens
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}
	return nil
}
