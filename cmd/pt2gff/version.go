package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of pt2gff",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pt2gff %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
