// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for a batch conversion run.
type ConvertConfig struct {
	// InputDir is the directory scanned for .pt files (non-recursive).
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory GFF files are written into. It is
	// created if it does not exist.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Force rewrites outputs that already exist instead of skipping them.
	Force bool `json:"force" yaml:"force"`

	// CatalogPath is an optional SQLite database recording conversion
	// history. Empty disables the catalog.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`

	// RunFilePath is an optional YAML run summary written after the batch.
	// Empty disables the run file.
	RunFilePath string `json:"run_file_path,omitempty" yaml:"run_file_path,omitempty"`
}
