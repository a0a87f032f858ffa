// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package candidate

import (
	"github.com/talentops/candidate-split/pkg/types"
)

// BuildSections pairs consecutive table-of-contents entries into page ranges.
// Section i spans [entries[i].Page, entries[i+1].Page-1]; the last section
// runs to pageCount. Entries must be ordered by page; entries outside
// 1..pageCount or not strictly after the previous entry's page are dropped,
// so the resulting sections are always pairwise disjoint and ordered.
func BuildSections(entries []types.Entry, pageCount int) []types.Section {
	if pageCount < 1 {
		return nil
	}

	kept := entries[:0:0]
	lastPage := 0
	for _, e := range entries {
		if e.Page < 1 || e.Page > pageCount {
			continue
		}
		if e.Page <= lastPage {
			continue
		}
		kept = append(kept, e)
		lastPage = e.Page
	}

	sections := make([]types.Section, 0, len(kept))
	for i, e := range kept {
		thru := pageCount
		if i+1 < len(kept) {
			thru = kept[i+1].Page - 1
		}
		sections = append(sections, types.Section{
			Name:     ParseName(e.Title),
			Title:    e.Title,
			PageFrom: e.Page,
			PageThru: thru,
		})
	}
	return sections
}
