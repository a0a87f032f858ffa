// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split divides a bundled multi-candidate PDF into one PDF per
// candidate, using table-of-contents entries as section boundaries.
// Implements: prd001-splitting (R1-R5); docs/ARCHITECTURE § Splitting.
package split

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.yaml.in/yaml/v3"

	"github.com/talentops/candidate-split/internal/candidate"
	"github.com/talentops/candidate-split/internal/history"
	"github.com/talentops/candidate-split/internal/outline"
	"github.com/talentops/candidate-split/pkg/types"
)

const (
	manifestFile        = "manifest.yaml"
	defaultTOCScanPages = 5
)

// ErrNoTOC is returned when neither the document outline nor the text scan
// yields any table-of-contents entries.
var ErrNoTOC = errors.New("no table of contents found: run analyze mode to inspect the document")

// Result holds the outcome of a split run.
type Result struct {
	Source string
	Pages  int

	// Written and Failed count candidate sections.
	Written int
	Failed  int

	// Sections are the planned sections in document order; written ones
	// carry their output path.
	Sections []types.Section

	// FromTextScan reports whether the entries came from the printed
	// table of contents rather than the document outline.
	FromTextScan bool
}

// Total returns the number of candidate sections processed.
func (r Result) Total() int {
	return r.Written + r.Failed
}

// HasFailures reports whether any section failed to write.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run splits the bundled PDF at path into per-candidate PDFs under
// cfg.OutputDir, writing each section to <Name>/<Name>.pdf. Individual
// section failures are logged to w and counted; the run continues with the
// remaining candidates. A manifest is written to the output directory and,
// when enabled, the run is recorded in the history store. Later sections
// with the same candidate name overwrite earlier output.
func Run(path string, cfg types.SplitConfig, w io.Writer) (Result, error) {
	result := Result{Source: path}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return result, fmt.Errorf("reading %s: %w", path, err)
	}
	result.Pages = pages
	fmt.Fprintf(w, "loaded %s (%d pages)\n", path, pages)

	entries, err := planEntries(path, cfg, &result, w)
	if err != nil {
		return result, err
	}

	sections := candidate.BuildSections(entries, pages)
	fmt.Fprintf(w, "processing %d candidates\n", len(sections))

	for i := range sections {
		sec := &sections[i]
		if sec.Name == "" {
			sec.Name = fmt.Sprintf("candidate_%d", i+1)
		}
		if err := writeSection(path, cfg.OutputDir, sec); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", sec.Name, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "created: %s (pages %d-%d)\n", sec.Path, sec.PageFrom, sec.PageThru)
		result.Written++
	}
	result.Sections = sections

	if err := writeManifest(cfg.OutputDir, result); err != nil {
		fmt.Fprintf(w, "warning: manifest write failed: %v\n", err)
	}

	if cfg.History.Enabled {
		if err := recordRun(cfg.History, result); err != nil {
			fmt.Fprintf(w, "warning: history record failed: %v\n", err)
		}
	}

	fmt.Fprintf(w, "\nSplit summary: %d written, %d failed (total: %d)\n",
		result.Written, result.Failed, result.Total())
	return result, nil
}

// planEntries reads the outline and falls back to the text scan, returning
// ErrNoTOC when both come up empty.
func planEntries(path string, cfg types.SplitConfig, result *Result, w io.Writer) ([]types.Entry, error) {
	entries, err := outline.Entries(path)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	fmt.Fprintln(w, "no outline found, scanning leading pages for a table of contents")
	scanPages := cfg.TOCScanPages
	if scanPages <= 0 {
		scanPages = defaultTOCScanPages
	}
	entries, err = outline.ScanText(path, scanPages)
	if err != nil {
		fmt.Fprintf(w, "warning: text scan failed: %v\n", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoTOC
	}
	result.FromTextScan = true
	return entries, nil
}

// writeSection copies the section's page range into a fresh PDF at
// <outDir>/<Name>/<Name>.pdf and records the path on the section.
func writeSection(srcPath, outDir string, sec *types.Section) error {
	dir := filepath.Join(outDir, sec.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	outPath := filepath.Join(dir, sec.Name+".pdf")
	pageRange := fmt.Sprintf("%d-%d", sec.PageFrom, sec.PageThru)
	if err := api.TrimFile(srcPath, outPath, []string{pageRange}, nil); err != nil {
		return fmt.Errorf("copying pages %s: %w", pageRange, err)
	}

	sec.Path = outPath
	return nil
}

func writeManifest(outDir string, r Result) error {
	m := types.Manifest{
		Source:     r.Source,
		Pages:      r.Pages,
		Candidates: r.Sections,
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	return os.WriteFile(filepath.Join(outDir, manifestFile), data, 0o644)
}

func recordRun(cfg types.HistoryConfig, r Result) error {
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(types.RunRecord{
		Source:   r.Source,
		Started:  time.Now().UTC(),
		Pages:    r.Pages,
		Written:  r.Written,
		Failed:   r.Failed,
		Sections: r.Sections,
	})
	return err
}
