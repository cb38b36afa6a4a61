// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pt

import (
	"reflect"
	"testing"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Record
	}{
		{
			name: "single block",
			text: ">chr1\n$ACTG\n#0,1,1,0\n",
			want: []Record{
				{Header: "chr1", Sequence: "ACTG", Values: []string{"0", "1", "1", "0"}, Index: 0},
			},
		},
		{
			name: "two blocks index in document order",
			text: ">a\n$AC\n#1,0\n>b\n$GT\n#0,1\n",
			want: []Record{
				{Header: "a", Sequence: "AC", Values: []string{"1", "0"}, Index: 0},
				{Header: "b", Sequence: "GT", Values: []string{"0", "1"}, Index: 1},
			},
		},
		{
			name: "trailing partial block dropped",
			text: ">a\n$AC\n#1,0\n>leftover\n$AC",
			want: []Record{
				{Header: "a", Sequence: "AC", Values: []string{"1", "0"}, Index: 0},
			},
		},
		{
			name: "fewer than three lines yields nothing",
			text: ">only\n$AC",
			want: nil,
		},
		{
			name: "trailing newline completes the third line",
			// The final '\n' produces an empty third line, so the block
			// is complete and carries a single empty value token.
			text: ">a\n$AC\n#1,0\n>b\n$GT\n",
			want: []Record{
				{Header: "a", Sequence: "AC", Values: []string{"1", "0"}, Index: 0},
				{Header: "b", Sequence: "GT", Values: []string{""}, Index: 1},
			},
		},
		{
			name: "empty document",
			text: "",
			want: nil,
		},
		{
			name: "crlf line endings",
			text: ">chr1\r\n$ACTG\r\n#1,1,0,0\r\n",
			want: []Record{
				{Header: "chr1", Sequence: "ACTG", Values: []string{"1", "1", "0", "0"}, Index: 0},
			},
		},
		{
			name: "whitespace stripped before sigil",
			text: "  >chr1  \n  $ACTG\n  #1\n",
			want: []Record{
				{Header: "chr1", Sequence: "ACTG", Values: []string{"1"}, Index: 0},
			},
		},
		{
			name: "empty value line yields one empty token",
			text: ">chr1\n$ACTG\n#\n",
			want: []Record{
				{Header: "chr1", Sequence: "ACTG", Values: []string{""}, Index: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDocument(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDocument() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDocument_BlockCount(t *testing.T) {
	// One full block plus two leftover lines: exactly one record, no error.
	text := ">h\n$ACTG\n#1,0,0,1\n>dangling\n$AC"
	recs := ParseDocument(text)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Header != "h" {
		t.Errorf("header = %q, want %q", recs[0].Header, "h")
	}
}

func TestParseDocument_SigilOnlyLeading(t *testing.T) {
	// Sigils inside the line body survive.
	recs := ParseDocument(">a>b\n$AC$GT\n#1\n")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Header != "a>b" {
		t.Errorf("header = %q, want %q", recs[0].Header, "a>b")
	}
	if recs[0].Sequence != "AC$GT" {
		t.Errorf("sequence = %q, want %q", recs[0].Sequence, "AC$GT")
	}
}
