// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/talentops/candidate-split/pkg/types"
)

func TestParseTOCText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []types.Entry
	}{
		{
			name: "dot leaders",
			text: "Table of Contents\nSmith, John .......... 3\nDoe, Jane ............ 12\n",
			want: []types.Entry{
				{Title: "Smith, John", Page: 3},
				{Title: "Doe, Jane", Page: 12},
			},
		},
		{
			name: "plain whitespace separator",
			text: "Smith, John   3\nDoe, Jane   12",
			want: []types.Entry{
				{Title: "Smith, John", Page: 3},
				{Title: "Doe, Jane", Page: 12},
			},
		},
		{
			name: "entries sorted by page",
			text: "Doe, Jane .... 12\nSmith, John .... 3\n",
			want: []types.Entry{
				{Title: "Smith, John", Page: 3},
				{Title: "Doe, Jane", Page: 12},
			},
		},
		{
			name: "hyphenated and apostrophe names",
			text: "Garcia-Lopez, Maria ... 5\nO'Brien, Pat ... 9\n",
			want: []types.Entry{
				{Title: "Garcia-Lopez, Maria", Page: 5},
				{Title: "O'Brien, Pat", Page: 9},
			},
		},
		{
			name: "surrounding prose ignored",
			text: "Recruitment round results.\nPlease see individual applications.\n",
			want: nil,
		},
		{
			name: "lowercase names not matched",
			text: "smith, john .... 3\n",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTOCText(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTOCText() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
