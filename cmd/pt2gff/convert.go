package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pt2gff/internal/catalog"
	"github.com/pdiddy/pt2gff/internal/convert"
	"github.com/pdiddy/pt2gff/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert every .pt file in a directory to GFF3",
	Long: `Convert enumerates the input directory for files ending in .pt and
writes one GFF file per input into the output directory, named by replacing
the trailing .pt with _with_consecutive_regions.gff. Existing outputs are
skipped unless --force is given.`,
	RunE: runConvert,
}

func init() {
	addBatchFlags(convertCmd)
	convertCmd.Flags().String("input-dir", "", "directory containing .pt files")
	convertCmd.Flags().String("output-dir", "", "directory for GFF output")

	rootCmd.AddCommand(convertCmd)
}

// addBatchFlags registers the flags shared by convert and pick.
func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "rewrite outputs that already exist")
	cmd.Flags().String("run-file", "", "write a YAML run summary to this path")
	cmd.Flags().String("catalog", "", "record conversions in this SQLite database")
}

// stringSetting reads a flag, falling back to the viper config key when the
// flag was not provided.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

// batchConfig assembles the shared batch settings from flags and config.
func batchConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		CatalogPath: stringSetting(cmd, "catalog", "catalog"),
		RunFilePath: stringSetting(cmd, "run-file", "run_file"),
	}
	if cmd.Flags().Changed("force") {
		cfg.Force, _ = cmd.Flags().GetBool("force")
	} else {
		cfg.Force = viper.GetBool("force")
	}
	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := batchConfig(cmd)
	cfg.InputDir = stringSetting(cmd, "input-dir", "input_dir")
	cfg.OutputDir = stringSetting(cmd, "output-dir", "output_dir")

	if cfg.InputDir == "" || cfg.OutputDir == "" {
		return fmt.Errorf("input and output directories are required (flags --input-dir/--output-dir or config keys input_dir/output_dir)")
	}
	return runBatch(cfg)
}

// runBatch executes a configured batch conversion. It is shared by the
// convert and pick commands.
func runBatch(cfg types.ConvertConfig) error {
	logger.Info("starting conversion",
		"input_dir", cfg.InputDir, "output_dir", cfg.OutputDir, "force", cfg.Force)

	reports, result, err := convert.ConvertBatch(cfg, convert.Options{Force: cfg.Force}, os.Stdout)
	if err != nil {
		return err
	}

	for _, r := range reports {
		if r.SkippedTokens > 0 {
			logger.Warn("unparseable annotation values skipped",
				"file", r.Input, "tokens", r.SkippedTokens)
		}
	}

	if cfg.RunFilePath != "" {
		if err := convert.WriteRunFile(cfg.RunFilePath, cfg, reports, result); err != nil {
			return err
		}
		logger.Info("wrote run file", "path", cfg.RunFilePath)
	}

	if cfg.CatalogPath != "" {
		store, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.RecordBatch(reports); err != nil {
			return err
		}
		logger.Debug("recorded batch in catalog", "path", cfg.CatalogPath, "files", len(reports))
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
