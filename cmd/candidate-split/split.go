// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talentops/candidate-split/internal/analyze"
	"github.com/talentops/candidate-split/internal/discover"
	"github.com/talentops/candidate-split/internal/split"
	"github.com/talentops/candidate-split/pkg/types"
)

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := splitConfig(cmd)

	path, err := inputPath(args, cfg, os.Stderr)
	if err != nil {
		return err
	}

	if analyzeFlag, _ := cmd.Flags().GetBool("analyze"); analyzeFlag {
		return analyze.Report(path, os.Stdout)
	}

	logf, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
	}
	defer logf.Close()
	w := io.MultiWriter(os.Stderr, logf)

	result, err := split.Run(path, cfg, w)
	if err != nil {
		// cobra reports the error on stderr; the log file gets its own line.
		fmt.Fprintf(logf, "error: %v\n", err)
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d candidate(s) failed", result.Failed)
	}
	return nil
}

// splitConfig builds the run configuration from flags, falling back to
// viper-managed config file and environment values.
func splitConfig(cmd *cobra.Command) types.SplitConfig {
	cfg := types.SplitConfig{
		OutputDir:    stringSetting(cmd, "output", "output_dir"),
		InputPrefix:  stringSetting(cmd, "input-prefix", "input_prefix"),
		LogFile:      stringSetting(cmd, "log-file", "log_file"),
		TOCScanPages: viper.GetInt("toc_scan_pages"),
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Dir:     viper.GetString("history.dir"),
		},
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History.Enabled = false
	}
	return cfg
}

// stringSetting returns the flag value if set, the viper value otherwise.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

// inputPath resolves the input PDF: an explicit argument wins, otherwise the
// working directory is searched for files matching the configured prefix.
func inputPath(args []string, cfg types.SplitConfig, w io.Writer) (string, error) {
	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err != nil {
			return "", fmt.Errorf("PDF file not found: %s", args[0])
		}
		return args[0], nil
	}

	path, matches, err := discover.Input(".", cfg.InputPrefix)
	if err != nil {
		return "", err
	}
	if len(matches) > 1 {
		fmt.Fprintf(w, "warning: %d PDFs match prefix %q, using %s\n", len(matches), cfg.InputPrefix, path)
	}
	return path, nil
}
