package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pt2gff/internal/convert"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Inspect .pt files without writing output",
	Long: `Scan parses every .pt file in the input directory and prints per-file
record, region, and skipped-token counts. Nothing is written.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("input-dir", "", "directory containing .pt files")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := stringSetting(cmd, "input-dir", "input_dir")
	if dir == "" {
		return fmt.Errorf("an input directory is required (flag --input-dir or config key input_dir)")
	}

	reports, err := convert.Inspect(dir, os.Stdout)
	if err != nil {
		return err
	}

	var records, regions, skipped int
	for _, r := range reports {
		records += r.Records
		regions += r.Regions
		skipped += r.SkippedTokens
	}
	fmt.Printf("\n%d file(s): %d records, %d regions, %d skipped tokens\n",
		len(reports), records, regions, skipped)
	return nil
}
