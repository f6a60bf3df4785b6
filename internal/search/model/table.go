package model

import (
	"strings"

	"arfigyelo-search/internal/utils"
)

// NewCell classifies one raw cell. Whole-cell numeric parse only; anything
// that mixes digits and words ("1.75l") stays text.
func NewCell(raw string) Cell {
	if strings.TrimSpace(raw) == "" {
		return Cell{Raw: raw, Kind: KindEmpty}
	}
	if f, ok := utils.ParseFloatHU(raw); ok {
		return Cell{Raw: raw, Num: f, Kind: KindNumber}
	}
	return Cell{Raw: raw, Kind: KindText}
}

// NewTable builds a Table from ordered headers and records. Short records
// are padded with empty cells, extra cells beyond the header are dropped.
func NewTable(headers []string, records [][]string) Table {
	t := Table{Columns: headers}
	for _, rec := range records {
		row := make(Row, len(headers))
		for i, col := range headers {
			if i < len(rec) {
				row[col] = NewCell(rec[i])
			} else {
				row[col] = Cell{Kind: KindEmpty}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
