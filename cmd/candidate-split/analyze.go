package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/talentops/candidate-split/internal/analyze"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [pdf]",
	Short: "Print PDF structure without splitting",
	Long: `Analyze prints the document's page count, outline entries, and a text
preview of the leading pages. Use it to see why a split found the candidates
it did, or to inspect a document the splitter rejects for having no table of
contents. Equivalent to running the split with -a.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := splitConfig(cmd.Root())
		path, err := inputPath(args, cfg, os.Stderr)
		if err != nil {
			return err
		}
		return analyze.Report(path, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
