package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of candidate-split",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("candidate-split %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
