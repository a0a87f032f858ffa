// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze prints the structure of a bundled PDF so a user can see
// why splitting found the candidates it did, or none at all. It never
// writes output files.
package analyze

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/talentops/candidate-split/internal/outline"
)

// previewChars caps the text preview per page.
const previewChars = 1000

// previewPages is how many leading pages get a text preview; the second
// page is where a printed table of contents usually lives.
const previewPages = 2

// Report writes a structure report for the PDF at path: page count, outline
// entries, and a text preview of the leading pages.
func Report(path string, w io.Writer) error {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Fprintf(w, "=== PDF analysis: %s ===\n", path)
	fmt.Fprintf(w, "total pages: %d\n", pages)

	entries, err := outline.Entries(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "outline: none")
	} else {
		fmt.Fprintf(w, "outline entries: %d\n", len(entries))
		for _, e := range entries {
			fmt.Fprintf(w, "  %-40s page %d\n", e.Title, e.Page)
		}
	}

	texts, err := outline.PageTexts(path, previewPages)
	if err != nil {
		fmt.Fprintf(w, "warning: text extraction failed: %v\n", err)
		return nil
	}
	for i, text := range texts {
		fmt.Fprintf(w, "\n=== page %d text (first %d chars) ===\n", i+1, previewChars)
		fmt.Fprintln(w, preview(text))
	}
	return nil
}

func preview(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "(no extractable text)"
	}
	if len(text) > previewChars {
		return text[:previewChars]
	}
	return text
}
