package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVSemicolon(t *testing.T) {
	data := "Termék név;Márka;Bruttó ár\nCoca Cola 1.75l;Coca-Cola;699\nPepsi Max 2l;Pepsi;650\n"
	headers, records, err := ReadAny(strings.NewReader(data), "export.csv", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Termék név", "Márka", "Bruttó ár"}, headers)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Coca Cola 1.75l", "Coca-Cola", "699"}, records[0])
}

func TestReadCSVComma(t *testing.T) {
	data := "name,price\nalma,120\n"
	headers, records, err := ReadAny(strings.NewReader(data), "t.csv", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price"}, headers)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"alma", "120"}, records[0])
}

func TestReadCSVBlankHeaderAndEmptyRows(t *testing.T) {
	data := "Termék,,Ár\ntej,friss,250\n,,\nkenyér,,400\n"
	headers, records, err := ReadAny(strings.NewReader(data), "t.csv", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Termék", "Column 2", "Ár"}, headers)
	require.Len(t, records, 2, "fully blank rows are skipped")
	assert.Equal(t, []string{"kenyér", "", "400"}, records[1])
}

func TestReadCSVHeaderRowOffset(t *testing.T) {
	data := "exported 2026-08-23\nname;qty\nalma;3\n"
	headers, records, err := ReadAny(strings.NewReader(data), "t.csv", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "qty"}, headers)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"alma", "3"}, records[0])
}

func TestReadAnyUnsupported(t *testing.T) {
	_, _, err := ReadAny(strings.NewReader("x"), "data.txt", 1)
	assert.Error(t, err)
}
