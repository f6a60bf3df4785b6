package fileio

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"
)

func readXLSX(r io.Reader, headerRow int) ([]string, [][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	h := pickHeader(rows, headerRow)
	return h, dataRecords(rows, len(h), headerRow), nil
}
