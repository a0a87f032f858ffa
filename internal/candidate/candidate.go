// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package candidate parses candidate names from table-of-contents titles and
// computes per-candidate page ranges.
// Implements: prd001-splitting (R2-R3); docs/ARCHITECTURE § Splitting.
package candidate

import "strings"

// invalidChars are characters that cannot appear in folder or file names.
const invalidChars = `<>:"/\|?*`

// Sanitize replaces filesystem-hostile characters in name with underscores
// and trims surrounding whitespace.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(invalidChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ParseName converts a table-of-contents title to Lastname_Firstname folder
// form. "Smith, John" becomes "Smith_John"; only the first given-name token
// after the comma is kept, so "Doe, Jane Marie" becomes "Doe_Jane".
//
// Titles without a comma are used as-is with runs of whitespace collapsed to
// single underscores: "John Smith" becomes "John_Smith", "Cher" stays "Cher".
// The result is always sanitized for filesystem use.
func ParseName(title string) string {
	title = strings.TrimSpace(title)

	if last, rest, ok := strings.Cut(title, ","); ok {
		last = strings.TrimSpace(last)
		first := ""
		if fields := strings.Fields(rest); len(fields) > 0 {
			first = fields[0]
		}
		if first == "" {
			return Sanitize(last)
		}
		return Sanitize(last + "_" + first)
	}

	return Sanitize(strings.Join(strings.Fields(title), "_"))
}
