// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline extracts candidate table-of-contents entries from a bundled
// PDF, reading the document outline first and falling back to scanning the
// leading pages for a printed table of contents.
// Implements: prd001-splitting (R1); docs/ARCHITECTURE § TOC Extraction.
package outline

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/talentops/candidate-split/pkg/types"
)

// Entries reads the document outline of the PDF at path and returns its
// top-level bookmarks as ordered (title, page) entries. Pages are 1-based
// and entries are sorted by page. A document without an outline yields an
// empty slice and no error; candidate boundaries are top-level bookmarks,
// so nested items are ignored.
func Entries(path string) ([]types.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	bms, err := api.Bookmarks(f, nil)
	if err != nil {
		// pdfcpu reports a missing outline as an error; a bundle without
		// one is not an error here, just zero candidates.
		if msg := err.Error(); strings.Contains(msg, "no outlines") || strings.Contains(msg, "no bookmarks") {
			return nil, nil
		}
		return nil, fmt.Errorf("reading outline of %s: %w", path, err)
	}

	entries := make([]types.Entry, 0, len(bms))
	for _, bm := range bms {
		if bm.PageFrom < 1 {
			continue
		}
		entries = append(entries, types.Entry{
			Title: strings.TrimSpace(bm.Title),
			Page:  bm.PageFrom,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})
	return entries, nil
}
