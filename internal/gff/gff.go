// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gff renders pt records as a fixed GFF3 subset: a sequence-region
// pragma, a gene and a CDS spanning the whole sequence, and one region
// feature per detected annotation run.
package gff

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pt2gff/internal/pt"
	"github.com/pdiddy/pt2gff/internal/region"
)

// Stats aggregates counts over one converted document.
type Stats struct {
	Records       int
	Regions       int
	SkippedTokens int
}

// WriteRecord writes the GFF3 lines for one record: the sequence-region
// pragma, the gene and CDS features covering 1..len(sequence), then the
// region features in detection order. Gene and CDS coordinates come from
// the sequence length; region coordinates index the value track.
func WriteRecord(w io.Writer, rec pt.Record, regions []region.Region) error {
	seqLen := len(rec.Sequence)
	if _, err := fmt.Fprintf(w, "##sequence-region %s 1 %d\n", rec.Header, seqLen); err != nil {
		return err
	}
	gene := fmt.Sprintf("gene%d", rec.Index)
	if _, err := fmt.Fprintf(w,
		"%s\t.\tgene\t1\t%d\t.\t+\t.\tID=%s;Name=ExampleGene\n",
		rec.Header, seqLen, gene,
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"%s\t.\tCDS\t1\t%d\t.\t+\t0\tID=cds%d;Parent=%s;Name=ExampleCDS\n",
		rec.Header, seqLen, rec.Index, gene,
	); err != nil {
		return err
	}
	for _, r := range regions {
		if _, err := fmt.Fprintf(w,
			"%s\t.\tregion\t%d\t%d\t.\t+\t.\tID=region%d;Name=Region%d;color=0,0,255\n",
			rec.Header, r.Start, r.End, r.Start, r.Start,
		); err != nil {
			return err
		}
	}
	return nil
}

// Convert transforms a whole pt document into GFF3 text: the gff-version
// pragma followed by every complete record in document order. The
// transformation is pure; the returned Stats let the caller report what
// was produced.
func Convert(text string) (string, Stats) {
	var b strings.Builder
	b.WriteString("##gff-version 3\n")

	var stats Stats
	for _, rec := range pt.ParseDocument(text) {
		regions, skipped := region.Detect(rec.Values)
		stats.Records++
		stats.Regions += len(regions)
		stats.SkippedTokens += skipped
		// strings.Builder writes cannot fail.
		_ = WriteRecord(&b, rec, regions)
	}
	return b.String(), stats
}
