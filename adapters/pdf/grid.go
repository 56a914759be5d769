package pdf

import (
	"regexp"
	"strings"

	"ratefinder/core/types"
)

// cellGapRe splits a text line into cells on tabs or runs of two or more
// spaces, the gaps pdfcpu positioning operators leave between columns.
var cellGapRe = regexp.MustCompile(`\t|\s{2,}`)

// gridFromText recovers an approximate cell grid from page text: one row
// per line, one cell per column gap. Blank lines are dropped; blank cells
// become nil so the extractor can tell "empty" from "missing".
func gridFromText(text string) types.Grid {
	var grid types.Grid

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := cellGapRe.Split(line, -1)
		row := make([]*string, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				row = append(row, nil)
				continue
			}
			cell := part
			row = append(row, &cell)
		}
		grid = append(grid, row)
	}

	return grid
}
