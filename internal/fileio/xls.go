// Legacy .xls parser: fixes the table width itself and reads every cell up
// to it instead of trusting Row.LastCol().
package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// computeMaxCols probes a bounded number of columns per row for non-empty
// cells; header rows are often the widest, so they go first.
func computeMaxCols(sheet *xls.WorkSheet, headerRow int) int {
	const probeMax = 512
	maxCols := 0

	hdr0 := headerRow - 1
	if hdr0 < 0 {
		hdr0 = 0
	}
	checkRow := func(i int) {
		if i < 0 || i > int(sheet.MaxRow) {
			return
		}
		r := sheet.Row(i)
		if r == nil {
			return
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(r.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}

	checkRow(hdr0)
	checkRow(hdr0 + 1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		checkRow(i)
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLS(r io.Reader, headerRow int) ([]string, [][]string, error) {
	if headerRow <= 0 {
		return nil, nil, errors.New("headerRow must be 1-based and >= 1")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	// Old Hungarian exports tend to be Windows-1250 or ISO-8859-2.
	var wb *xls.WorkBook
	tryCharsets := []string{"utf-8", "windows-1250", "iso-8859-2"}
	var lastErr error
	for _, ch := range tryCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil, nil
	}

	maxCols := computeMaxCols(sheet, headerRow)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = row.Col(j)
			}
		}
		rows = append(rows, cols)
	}

	h := pickHeader(rows, headerRow)
	return h, dataRecords(rows, len(h), headerRow), nil
}
