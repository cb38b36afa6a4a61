// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gff

import (
	"strings"
	"testing"

	"github.com/pdiddy/pt2gff/internal/pt"
	"github.com/pdiddy/pt2gff/internal/region"
)

func TestConvert_SingleRecord(t *testing.T) {
	out, stats := Convert(">chr1\n$ACTG\n#0,1,1,0\n")

	want := "##gff-version 3\n" +
		"##sequence-region chr1 1 4\n" +
		"chr1\t.\tgene\t1\t4\t.\t+\t.\tID=gene0;Name=ExampleGene\n" +
		"chr1\t.\tCDS\t1\t4\t.\t+\t0\tID=cds0;Parent=gene0;Name=ExampleCDS\n" +
		"chr1\t.\tregion\t2\t3\t.\t+\t.\tID=region2;Name=Region2;color=0,0,255\n"
	if out != want {
		t.Errorf("Convert() =\n%q\nwant\n%q", out, want)
	}
	if stats.Records != 1 || stats.Regions != 1 || stats.SkippedTokens != 0 {
		t.Errorf("stats = %+v, want 1 record, 1 region, 0 skipped", stats)
	}
}

func TestConvert_EmptyDocument(t *testing.T) {
	out, stats := Convert("")
	if out != "##gff-version 3\n" {
		t.Errorf("empty document should emit only the version pragma, got %q", out)
	}
	if stats.Records != 0 {
		t.Errorf("records = %d, want 0", stats.Records)
	}
}

func TestConvert_PragmaPerCompleteBlock(t *testing.T) {
	// Two full blocks plus two dangling lines: exactly two pragmas.
	text := ">a\n$AC\n#1,1\n>b\n$GGT\n#0,0,0\n>dangling\n$AC"
	out, stats := Convert(text)

	if n := strings.Count(out, "##sequence-region "); n != 2 {
		t.Errorf("sequence-region pragmas = %d, want 2", n)
	}
	if stats.Records != 2 {
		t.Errorf("records = %d, want 2", stats.Records)
	}
	// The all-zero track contributes no region lines.
	if n := strings.Count(out, "\tregion\t"); n != 1 {
		t.Errorf("region lines = %d, want 1", n)
	}
}

func TestConvert_GeneAndCDSSpanWholeSequence(t *testing.T) {
	// Value track shorter than the sequence: gene/CDS still span 1..len(seq).
	out, _ := Convert(">chr9\n$ACTGACTG\n#1\n")

	if !strings.Contains(out, "chr9\t.\tgene\t1\t8\t") {
		t.Errorf("gene line should span 1..8:\n%s", out)
	}
	if !strings.Contains(out, "chr9\t.\tCDS\t1\t8\t") {
		t.Errorf("CDS line should span 1..8:\n%s", out)
	}
	// Region coordinates index the value track, not the sequence.
	if !strings.Contains(out, "chr9\t.\tregion\t1\t1\t") {
		t.Errorf("region line should span 1..1:\n%s", out)
	}
}

func TestConvert_IdentifiersPerBlock(t *testing.T) {
	out, _ := Convert(">a\n$AC\n#1\n>b\n$GT\n#1\n")

	for _, want := range []string{
		"ID=gene0;Name=ExampleGene",
		"ID=cds0;Parent=gene0;Name=ExampleCDS",
		"ID=gene1;Name=ExampleGene",
		"ID=cds1;Parent=gene1;Name=ExampleCDS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConvert_Idempotent(t *testing.T) {
	text := ">chr1\n$ACTGACTG\n#0,1,x,1,0,2,2,0\n"
	first, _ := Convert(text)
	second, _ := Convert(text)
	if first != second {
		t.Error("conversion of the same input should be byte-identical")
	}
}

func TestConvert_SkippedTokenCount(t *testing.T) {
	_, stats := Convert(">a\n$ACTG\n#1,x,y,1\n")
	if stats.SkippedTokens != 2 {
		t.Errorf("skipped tokens = %d, want 2", stats.SkippedTokens)
	}
	if stats.Regions != 1 {
		t.Errorf("regions = %d, want 1 (skip tokens are bridged)", stats.Regions)
	}
}

func TestWriteRecord_RegionIDUsesStartPosition(t *testing.T) {
	var b strings.Builder
	rec := pt.Record{Header: "chr2", Sequence: "ACTGA", Index: 3}
	regs := []region.Region{{Start: 4, End: 5}}
	if err := WriteRecord(&b, rec, regs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "ID=region4;Name=Region4;color=0,0,255") {
		t.Errorf("region attributes wrong:\n%s", b.String())
	}
}
