package fileio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func xlsxFixture(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := xlsxFixture(t, [][]any{
		{"Termék név", "Márka", "Bruttó ár"},
		{"Coca Cola 1.75l", "Coca-Cola", 699},
		{"Pepsi Max 2l", "Pepsi", 650},
	})

	headers, records, err := ReadAny(buf, "export.xlsx", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Termék név", "Márka", "Bruttó ár"}, headers)
	require.Len(t, records, 2)
	assert.Equal(t, "Coca Cola 1.75l", records[0][0])
	assert.Equal(t, "699", records[0][2])
}

func TestReadXLSXEmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	headers, records, err := ReadAny(buf, "empty.xlsx", 1)
	require.NoError(t, err)
	assert.Empty(t, headers)
	assert.Empty(t, records)
}
