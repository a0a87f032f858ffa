// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/talentops/candidate-split/pkg/types"
)

// tocLinePattern matches printed table-of-contents lines of the form
// "Lastname, Firstname ...... 12" with dot leaders or plain whitespace
// before the page number.
var tocLinePattern = regexp.MustCompile(`([A-Z][a-zA-Z\-']+,\s+[A-Z][a-zA-Z\-']+)[\s.]+(\d{1,4})\b`)

// PageTexts returns the plain text of up to maxPages leading pages of the
// PDF at path. Pages whose text cannot be extracted yield an empty string
// rather than an error. maxPages <= 0 means all pages.
func PageTexts(path string, maxPages int) ([]string, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	n := r.NumPage()
	if maxPages > 0 && n > maxPages {
		n = maxPages
	}

	texts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// ScanText recovers table-of-contents entries from the text of the first
// maxPages pages. It is the fallback for documents without an outline.
// Page numbers are taken as printed, i.e. 1-based.
func ScanText(path string, maxPages int) ([]types.Entry, error) {
	texts, err := PageTexts(path, maxPages)
	if err != nil {
		return nil, err
	}
	return ParseTOCText(strings.Join(texts, "\n")), nil
}

// ParseTOCText returns the entries for all candidate table-of-contents lines
// found in text, sorted by page.
func ParseTOCText(text string) []types.Entry {
	var entries []types.Entry
	for _, m := range tocLinePattern.FindAllStringSubmatch(text, -1) {
		page, err := strconv.Atoi(m[2])
		if err != nil || page < 1 {
			continue
		}
		entries = append(entries, types.Entry{
			Title: strings.TrimSpace(m[1]),
			Page:  page,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})
	return entries
}
