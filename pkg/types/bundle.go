// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Entry is one table-of-contents entry read from the document outline or
// recovered from a printed table of contents. Page is 1-based.
type Entry struct {
	Title string `json:"title" yaml:"title"`
	Page  int    `json:"page" yaml:"page"`
}

// Section is one candidate's contiguous page range within the bundle.
// PageFrom and PageThru are 1-based and inclusive.
type Section struct {
	// Name is the parsed Lastname_Firstname folder name.
	Name string `json:"name" yaml:"name"`

	// Title is the raw table-of-contents title the name was parsed from.
	Title string `json:"title" yaml:"title"`

	// PageFrom is the first page of the section.
	PageFrom int `json:"page_from" yaml:"page_from"`

	// PageThru is the last page of the section.
	PageThru int `json:"page_thru" yaml:"page_thru"`

	// Path is the output PDF path, set once the section has been written.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Pages returns the number of pages the section covers.
func (s Section) Pages() int {
	return s.PageThru - s.PageFrom + 1
}

// Manifest summarizes a split run. It is written to the output directory
// as manifest.yaml after every run.
type Manifest struct {
	// Source is the input PDF path.
	Source string `json:"source" yaml:"source"`

	// Pages is the input document's total page count.
	Pages int `json:"pages" yaml:"pages"`

	// Candidates lists the sections in document order.
	Candidates []Section `json:"candidates" yaml:"candidates"`
}

// RunRecord is one split run as stored in the history database.
type RunRecord struct {
	ID       int64     `json:"id" yaml:"id"`
	Source   string    `json:"source" yaml:"source"`
	Started  time.Time `json:"started" yaml:"started"`
	Pages    int       `json:"pages" yaml:"pages"`
	Written  int       `json:"written" yaml:"written"`
	Failed   int       `json:"failed" yaml:"failed"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}
