// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one input file.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// FileReport summarizes the conversion of a single .pt file.
type FileReport struct {
	// Input is the base name of the input file.
	Input string `json:"input" yaml:"input"`

	// Output is the base name of the GFF file derived from Input.
	Output string `json:"output" yaml:"output"`

	// Status records whether the file was converted, skipped, or failed.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Records is the number of complete 3-line blocks parsed.
	Records int `json:"records" yaml:"records"`

	// Regions is the total number of annotation runs emitted.
	Regions int `json:"regions" yaml:"regions"`

	// SkippedTokens counts annotation values that failed integer parsing.
	// Skipped tokens never affect output; the count is surfaced so a
	// sparse or malformed annotation track is visible to the operator.
	SkippedTokens int `json:"skipped_tokens" yaml:"skipped_tokens"`

	// Error holds the failure message when Status is "failed".
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
