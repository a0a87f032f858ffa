// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package candidate

import (
	"testing"

	"github.com/talentops/candidate-split/pkg/types"
)

func TestBuildSections(t *testing.T) {
	tests := []struct {
		name      string
		entries   []types.Entry
		pageCount int
		want      []types.Section
	}{
		{
			name: "three candidates",
			entries: []types.Entry{
				{Title: "Smith, John", Page: 1},
				{Title: "Doe, Jane", Page: 4},
				{Title: "Brown, Alice", Page: 8},
			},
			pageCount: 10,
			want: []types.Section{
				{Name: "Smith_John", Title: "Smith, John", PageFrom: 1, PageThru: 3},
				{Name: "Doe_Jane", Title: "Doe, Jane", PageFrom: 4, PageThru: 7},
				{Name: "Brown_Alice", Title: "Brown, Alice", PageFrom: 8, PageThru: 10},
			},
		},
		{
			name:      "single candidate spans whole document",
			entries:   []types.Entry{{Title: "Smith, John", Page: 1}},
			pageCount: 5,
			want: []types.Section{
				{Name: "Smith_John", Title: "Smith, John", PageFrom: 1, PageThru: 5},
			},
		},
		{
			name: "first candidate after a cover page",
			entries: []types.Entry{
				{Title: "Smith, John", Page: 2},
				{Title: "Doe, Jane", Page: 4},
			},
			pageCount: 6,
			want: []types.Section{
				{Name: "Smith_John", Title: "Smith, John", PageFrom: 2, PageThru: 3},
				{Name: "Doe_Jane", Title: "Doe, Jane", PageFrom: 4, PageThru: 6},
			},
		},
		{
			name: "entry beyond page count dropped",
			entries: []types.Entry{
				{Title: "Smith, John", Page: 1},
				{Title: "Ghost, Gone", Page: 12},
			},
			pageCount: 10,
			want: []types.Section{
				{Name: "Smith_John", Title: "Smith, John", PageFrom: 1, PageThru: 10},
			},
		},
		{
			name: "duplicate start page dropped",
			entries: []types.Entry{
				{Title: "Smith, John", Page: 1},
				{Title: "Doe, Jane", Page: 1},
				{Title: "Brown, Alice", Page: 3},
			},
			pageCount: 4,
			want: []types.Section{
				{Name: "Smith_John", Title: "Smith, John", PageFrom: 1, PageThru: 2},
				{Name: "Brown_Alice", Title: "Brown, Alice", PageFrom: 3, PageThru: 4},
			},
		},
		{
			name:      "no entries",
			entries:   nil,
			pageCount: 10,
			want:      nil,
		},
		{
			name:      "zero pages",
			entries:   []types.Entry{{Title: "Smith, John", Page: 1}},
			pageCount: 0,
			want:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSections(tt.entries, tt.pageCount)
			if len(got) != len(tt.want) {
				t.Fatalf("BuildSections() returned %d sections, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("section %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestBuildSectionsPartition verifies that sections always partition the
// pages from the first entry to the end of the document: ordered, pairwise
// disjoint, and with no gaps.
func TestBuildSectionsPartition(t *testing.T) {
	entries := []types.Entry{
		{Title: "Smith, John", Page: 3},
		{Title: "Doe, Jane", Page: 4},
		{Title: "Brown, Alice", Page: 9},
		{Title: "White, Bob", Page: 15},
	}
	const pageCount = 20

	sections := BuildSections(entries, pageCount)
	if len(sections) != len(entries) {
		t.Fatalf("got %d sections, want %d", len(sections), len(entries))
	}

	next := entries[0].Page
	total := 0
	for i, sec := range sections {
		if sec.PageFrom != next {
			t.Errorf("section %d starts at %d, want %d (gap or overlap)", i, sec.PageFrom, next)
		}
		if sec.PageThru < sec.PageFrom {
			t.Errorf("section %d has empty range %d-%d", i, sec.PageFrom, sec.PageThru)
		}
		total += sec.Pages()
		next = sec.PageThru + 1
	}
	if last := sections[len(sections)-1]; last.PageThru != pageCount {
		t.Errorf("last section ends at %d, want %d", last.PageThru, pageCount)
	}
	if want := pageCount - entries[0].Page + 1; total != want {
		t.Errorf("sections cover %d pages, want %d", total, want)
	}
}
