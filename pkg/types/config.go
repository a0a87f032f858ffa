// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HistoryConfig holds settings for the split run history store.
type HistoryConfig struct {
	// Enabled controls whether completed runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the history database (default "history").
	Dir string `json:"dir" yaml:"dir"`
}

// SplitConfig holds settings for a split run.
type SplitConfig struct {
	// OutputDir is the base directory for candidate folders (default "candidates").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// InputPrefix is the filename prefix used to discover the input PDF
	// when no path is given on the command line (default "R007").
	InputPrefix string `json:"input_prefix" yaml:"input_prefix"`

	// LogFile is the file progress lines are appended to (default "candidate-split.log").
	LogFile string `json:"log_file" yaml:"log_file"`

	// TOCScanPages is the number of leading pages scanned for a printed
	// table of contents when the document has no outline (default 5).
	TOCScanPages int `json:"toc_scan_pages" yaml:"toc_scan_pages"`

	// History configures run recording.
	History HistoryConfig `json:"history" yaml:"history"`
}
