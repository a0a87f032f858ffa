// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talentops/candidate-split/internal/history"
	"github.com/talentops/candidate-split/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent split runs",
	Long: `History lists split runs recorded in the local SQLite history database,
newest first, with per-run candidate counts. Use --sections to include the
individual candidate sections, or --json for machine-readable output.`,
	SilenceUsage: true,
	RunE:         runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = viper.GetString("history.dir")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(types.HistoryConfig{Enabled: true, Dir: dir})
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	showSections, _ := cmd.Flags().GetBool("sections")
	formatRuns(runs, showSections)
	return nil
}

func formatRuns(runs []types.RunRecord, showSections bool) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-40s  %-6s  %-8s  %s\n",
		"ID", "Started", "Source", "Pages", "Written", "Failed")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))

	for _, run := range runs {
		source := run.Source
		if len(source) > 40 {
			source = source[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-40s  %-6d  %-8d  %d\n",
			run.ID, run.Started.Format(time.DateTime), source, run.Pages, run.Written, run.Failed)

		if showSections {
			for _, sec := range run.Sections {
				fmt.Fprintf(os.Stdout, "      %-34s  pages %d-%d\n", sec.Name, sec.PageFrom, sec.PageThru)
			}
		}
	}

	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
}

func init() {
	historyCmd.Flags().Int("limit", 10, "maximum number of runs to list")
	historyCmd.Flags().String("dir", "", "history database directory (default: history)")
	historyCmd.Flags().Bool("sections", false, "include per-candidate sections")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}
