// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the candidate-split CLI.
// Implements: prd001-splitting, prd002-history (CLI surface).
// See docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; running it without a subcommand performs the
// split.
var rootCmd = &cobra.Command{
	Use:   "candidate-split [pdf]",
	Short: "Split a bundled candidate PDF into per-candidate files",
	Long: `candidate-split divides a bundled multi-candidate application PDF into one
PDF per candidate, using the document outline as the table of contents. Each
candidate's pages are written to <output>/<Lastname_Firstname>/<Lastname_Firstname>.pdf
and every run appends human-readable progress lines to a log file.

When no PDF is given, the first file matching <input-prefix>*.pdf in the
working directory is used. Pass -a to inspect the document structure without
writing anything.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runSplit,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./candidate-split.yaml or ~/.config/candidate-split/config.yaml)")

	rootCmd.Flags().StringP("output", "o", "", "output directory for candidate folders (default: candidates)")
	rootCmd.Flags().BoolP("analyze", "a", false, "analyze PDF structure without splitting")
	rootCmd.Flags().String("input-prefix", "", "filename prefix used to discover the input PDF (default: R007)")
	rootCmd.Flags().String("log-file", "", "file progress lines are appended to (default: candidate-split.log)")
	rootCmd.Flags().Bool("no-history", false, "do not record the run in the history database")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("candidate-split")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "candidate-split"))
		}
	}

	viper.SetDefault("output_dir", "candidates")
	viper.SetDefault("input_prefix", "R007")
	viper.SetDefault("log_file", "candidate-split.log")
	viper.SetDefault("toc_scan_pages", 5)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.dir", "history")

	viper.SetEnvPrefix("CANDIDATE_SPLIT")
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
