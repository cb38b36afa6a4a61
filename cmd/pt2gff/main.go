// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pt2gff CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes key-value diagnostics to stderr; conversion status lines
// go to stdout so the two streams can be separated.
var logger = log.New(os.Stderr)

// rootCmd is the base command for the pt2gff CLI.
var rootCmd = &cobra.Command{
	Use:   "pt2gff",
	Short: "Convert pt annotation files to GFF3",
	Long: `pt2gff converts flat-file pt annotation documents into a GFF3 subset.
A pt file holds repeating 3-line blocks: a '>' header, a '$' DNA sequence,
and a '#' comma-separated per-position value track. Each block becomes a
sequence-region pragma, a gene and CDS spanning the sequence, and one
region feature per maximal run of values >= 1.

Use convert for a configured batch run, pick for interactive directory
selection, scan to inspect inputs without writing, and history to query
the conversion catalog.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pt2gff.yaml or ~/.config/pt2gff/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pt2gff")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pt2gff"))
		}
	}

	viper.SetEnvPrefix("PT2GFF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
