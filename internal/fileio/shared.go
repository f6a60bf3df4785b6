package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadAny picks a parser by file extension and returns the ordered header
// row plus the data records below it. headerRow is 1-based.
func ReadAny(r io.Reader, filename string, headerRow int) ([]string, [][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// pickHeader takes the header row and substitutes "Column N" for blanks.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// dataRecords returns the rows below the header, padded/trimmed to the
// header width, skipping fully blank rows.
func dataRecords(rows [][]string, width, headerRow int) [][]string {
	var out [][]string
	for r := headerRow; r < len(rows); r++ {
		rec := make([]string, width)
		empty := true
		for c := 0; c < width; c++ {
			if c < len(rows[r]) {
				rec[c] = rows[r][c]
				if strings.TrimSpace(rec[c]) != "" {
					empty = false
				}
			}
		}
		if !empty {
			out = append(out, rec)
		}
	}
	return out
}
