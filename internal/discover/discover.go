// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover locates the input PDF when no path is given on the
// command line. Bundles exported from the applicant portal share a fixed
// filename prefix, so the first matching file in the working directory is
// taken as the input.
package discover

import (
	"fmt"
	"path/filepath"
)

// Input returns the first PDF in dir whose base name starts with prefix,
// plus the full match list so callers can warn when several qualify.
// Matches are in lexical order. No match is an error.
func Input(dir, prefix string) (string, []string, error) {
	pattern := filepath.Join(dir, prefix+"*.pdf")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", nil, fmt.Errorf("no PDF matching %s*.pdf found in %s: specify a file", prefix, dir)
	}
	return matches[0], matches, nil
}
