// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds tiny PDF documents for tests. The generated files
// use a classic cross-reference table, empty page content, and optionally a
// document outline with one top-level item per section, which is all the
// splitter needs from a real bundle.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Section describes one outline entry in a generated bundle.
type Section struct {
	Title string
	Pages int
}

// Bundle returns a PDF containing the given sections back to back, with a
// top-level outline item pointing at the first page of each section.
func Bundle(sections ...Section) []byte {
	return build(sections, true)
}

// Plain returns a PDF with the given number of empty pages and no outline.
func Plain(pages int) []byte {
	return build([]Section{{Pages: pages}}, false)
}

func build(sections []Section, withOutline bool) []byte {
	numPages := 0
	for _, s := range sections {
		numPages += s.Pages
	}
	numSections := len(sections)
	if !withOutline {
		numSections = 0
	}

	// Object numbering: 1 catalog, 2 page tree, 3 outline root (if any),
	// then one object per outline item, per page, and a shared empty
	// content stream last.
	pagesStart := 3
	if withOutline {
		pagesStart = 4 + numSections
	}
	itemObj := func(i int) int { return 4 + i }
	pageObj := func(i int) int { return pagesStart + i }
	contentObj := pagesStart + numPages

	var b builder
	b.buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	// 1: catalog
	catalog := "<< /Type /Catalog /Pages 2 0 R >>"
	if withOutline {
		catalog = "<< /Type /Catalog /Pages 2 0 R /Outlines 3 0 R >>"
	}
	b.obj(1, catalog)

	// 2: page tree
	var kids strings.Builder
	for i := 0; i < numPages; i++ {
		if i > 0 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(&kids, "%d 0 R", pageObj(i))
	}
	b.obj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), numPages))

	if withOutline {
		// 3: outline root
		b.obj(3, fmt.Sprintf("<< /Type /Outlines /First %d 0 R /Last %d 0 R /Count %d >>",
			itemObj(0), itemObj(numSections-1), numSections))

		// outline items, flat list with Prev/Next links
		page := 0
		for i, s := range sections {
			body := fmt.Sprintf("<< /Title (%s) /Parent 3 0 R /Dest [%d 0 R /Fit]",
				escape(s.Title), pageObj(page))
			if i > 0 {
				body += fmt.Sprintf(" /Prev %d 0 R", itemObj(i-1))
			}
			if i < numSections-1 {
				body += fmt.Sprintf(" /Next %d 0 R", itemObj(i+1))
			}
			body += " >>"
			b.obj(itemObj(i), body)
			page += s.Pages
		}
	}

	for i := 0; i < numPages; i++ {
		b.obj(pageObj(i), fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << >> /Contents %d 0 R >>",
			contentObj))
	}

	b.stream(contentObj, "")

	return b.finish()
}

type builder struct {
	buf     bytes.Buffer
	offsets []int
}

func (b *builder) obj(num int, body string) {
	b.offsets = append(b.offsets, b.buf.Len())
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", num, body)
}

func (b *builder) stream(num int, data string) {
	b.offsets = append(b.offsets, b.buf.Len())
	fmt.Fprintf(&b.buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", num, len(data), data)
}

func (b *builder) finish() []byte {
	xrefOffset := b.buf.Len()
	fmt.Fprintf(&b.buf, "xref\n0 %d\n", len(b.offsets)+1)
	b.buf.WriteString("0000000000 65535 f \n")
	for _, off := range b.offsets {
		fmt.Fprintf(&b.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(b.offsets)+1, xrefOffset)
	return b.buf.Bytes()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
