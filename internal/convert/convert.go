// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives per-file pt-to-GFF conversion: it enumerates the
// input directory, converts each .pt file, and writes one GFF file per
// input into the output directory.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pt2gff/internal/gff"
	"github.com/pdiddy/pt2gff/pkg/types"
)

const (
	// inputExt is the extension admitted by ListInputs. Files without it
	// are never passed to the core, so OutputName's suffix rule holds.
	inputExt = ".pt"
	// outputSuffix replaces the trailing .pt on derived output names.
	outputSuffix = "_with_consecutive_regions.gff"
)

// Options control a batch conversion run.
type Options struct {
	// Force rewrites existing outputs instead of skipping them.
	Force bool
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ListInputs returns the names of regular files in dir ending in .pt, in
// lexical order.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), inputExt) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// OutputName derives the GFF file name from a .pt file name by replacing
// the trailing extension.
func OutputName(name string) string {
	return strings.TrimSuffix(name, inputExt) + outputSuffix
}

// ConvertFile converts a single .pt file, writing the GFF output into
// outDir. If the output already exists and force is false, the file is
// skipped. Read and write errors are reported in the returned FileReport
// rather than aborting the caller's batch. Per-file status lines go to w.
func ConvertFile(inPath, outDir string, force bool, w io.Writer) types.FileReport {
	name := filepath.Base(inPath)
	report := types.FileReport{Input: name, Output: OutputName(name)}
	outPath := filepath.Join(outDir, report.Output)

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			report.Status = types.ConversionNone
			fmt.Fprintf(w, "skipped: %s (output exists)\n", name)
			return report
		}
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return failed(report, w, err)
	}

	out, stats := gff.Convert(string(data))
	report.Records = stats.Records
	report.Regions = stats.Regions
	report.SkippedTokens = stats.SkippedTokens

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return failed(report, w, err)
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return failed(report, w, err)
	}

	report.Status = types.ConversionDone
	fmt.Fprintf(w, "converted: %s (%d records, %d regions)\n", name, report.Records, report.Regions)
	return report
}

func failed(report types.FileReport, w io.Writer, err error) types.FileReport {
	report.Status = types.ConversionFailed
	report.Error = err.Error()
	fmt.Fprintf(w, "failed:  %s (%v)\n", report.Input, err)
	return report
}

// ConvertBatch converts every .pt file under cfg.InputDir into
// cfg.OutputDir, printing per-file status to w followed by a summary line.
// The returned error covers only batch-level problems (an unreadable input
// directory); per-file failures are tallied in the result instead.
func ConvertBatch(cfg types.ConvertConfig, opts Options, w io.Writer) ([]types.FileReport, BatchResult, error) {
	names, err := ListInputs(cfg.InputDir)
	if err != nil {
		return nil, BatchResult{}, err
	}

	var (
		reports []types.FileReport
		result  BatchResult
	)
	for _, name := range names {
		report := ConvertFile(filepath.Join(cfg.InputDir, name), cfg.OutputDir, opts.Force, w)
		reports = append(reports, report)
		switch report.Status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return reports, result, nil
}

// Inspect parses every .pt file under dir without writing anything,
// returning one report per file with record/region counts. Unreadable
// files are reported as failed.
func Inspect(dir string, w io.Writer) ([]types.FileReport, error) {
	names, err := ListInputs(dir)
	if err != nil {
		return nil, err
	}
	var reports []types.FileReport
	for _, name := range names {
		report := types.FileReport{Input: name, Output: OutputName(name)}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			reports = append(reports, failed(report, w, err))
			continue
		}
		_, stats := gff.Convert(string(data))
		report.Status = types.ConversionNone
		report.Records = stats.Records
		report.Regions = stats.Regions
		report.SkippedTokens = stats.SkippedTokens
		fmt.Fprintf(w, "%s: %d records, %d regions, %d skipped tokens\n",
			name, report.Records, report.Regions, report.SkippedTokens)
		reports = append(reports, report)
	}
	return reports, nil
}
