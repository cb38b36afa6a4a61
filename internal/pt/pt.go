// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pt parses the flat-file pt annotation format: repeating 3-line
// blocks of header (`>`), DNA sequence (`$`), and a comma-separated
// per-position value track (`#`).
package pt

import "strings"

// Record is one parsed 3-line block.
type Record struct {
	// Header is the block's first line with the leading '>' and
	// surrounding whitespace removed. It is used verbatim as the GFF
	// seqid; no identifier validation is applied.
	Header string

	// Sequence is the second line with the leading '$' stripped. Only its
	// length matters downstream.
	Sequence string

	// Values holds the raw comma-separated tokens of the third line.
	// Tokens are kept unparsed; interpretation is the region scan's job.
	Values []string

	// Index is the zero-based block number within the document. It seeds
	// the gene/cds identifiers, so it is only unique per document.
	Index int
}

// ParseDocument splits text into consecutive non-overlapping 3-line blocks
// and returns one Record per complete block. A trailing partial block
// (fewer than 3 remaining lines) is dropped without error. Lines are split
// on '\n'; TrimSpace absorbs a trailing '\r', so CRLF input parses the same.
func ParseDocument(text string) []Record {
	lines := strings.Split(text, "\n")
	var records []Record
	for i := 0; i+2 < len(lines); i += 3 {
		values := strings.Split(stripSigil(lines[i+2], "#"), ",")
		records = append(records, Record{
			Header:   stripSigil(lines[i], ">"),
			Sequence: stripSigil(lines[i+1], "$"),
			Values:   values,
			Index:    i / 3,
		})
	}
	return records
}

// stripSigil trims surrounding whitespace, then the leading sigil bytes.
// The order matters: a header like "> name" keeps its inner space.
func stripSigil(line, sigil string) string {
	return strings.TrimLeft(strings.TrimSpace(line), sigil)
}
