// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package region detects maximal runs of positions whose annotation value
// is at least 1.
package region

import (
	"strconv"
	"strings"
)

// Region is a maximal contiguous run of 1-based positions with parsed
// annotation value >= 1. Start and End are inclusive and index the value
// track, not the DNA sequence; the two can differ in length and no
// cross-check is performed.
type Region struct {
	Start int
	End   int
}

// Detect scans the raw value tokens once and returns the runs in order,
// plus the number of tokens that failed integer parsing. An unparseable
// token is a no-op: it neither starts, closes, nor extends a run, so a run
// spanning such a token keeps the last qualifying position as its end. An
// open run at the end of the track is closed and emitted.
func Detect(values []string) (regions []Region, skipped int) {
	start, end := 0, 0 // 0 = no open run; positions are 1-based
	for j, tok := range values {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			skipped++
			continue
		}
		switch {
		case v >= 1:
			if start == 0 {
				start = j + 1
			}
			end = j + 1
		case start != 0:
			regions = append(regions, Region{Start: start, End: end})
			start, end = 0, 0
		}
	}
	if start != 0 {
		regions = append(regions, Region{Start: start, End: end})
	}
	return regions, skipped
}
