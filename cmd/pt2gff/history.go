package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pt2gff/internal/catalog"
	"github.com/pdiddy/pt2gff/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions from the catalog",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().String("catalog", "", "SQLite catalog database to read")
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := stringSetting(cmd, "catalog", "catalog")
	if path == "" {
		return fmt.Errorf("a catalog database is required (flag --catalog or config key catalog)")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-9s  %s -> %s",
			e.ConvertedAt.Local().Format(time.DateTime), e.Status, e.Input, e.Output)
		if e.Status == types.ConversionFailed && e.Error != "" {
			line += "  (" + e.Error + ")"
		} else {
			line += fmt.Sprintf("  (%d records, %d regions)", e.Records, e.Regions)
		}
		fmt.Println(line)
	}
	return nil
}
