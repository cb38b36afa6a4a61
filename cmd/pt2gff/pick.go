package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pt2gff/internal/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose directories interactively, then convert",
	Long: `Pick opens a terminal directory chooser twice — first for the input
directory, then for the output directory — and runs the same batch
conversion as the convert command.`,
	RunE: runPick,
}

func init() {
	addBatchFlags(pickCmd)
	pickCmd.Flags().String("start-dir", ".", "directory the chooser starts in")

	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	start, _ := cmd.Flags().GetString("start-dir")

	inputDir, err := picker.Pick("Select the input directory", start)
	if err != nil {
		return err
	}
	outputDir, err := picker.Pick("Select the output directory", start)
	if err != nil {
		return err
	}

	cfg := batchConfig(cmd)
	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir
	return runBatch(cfg)
}
