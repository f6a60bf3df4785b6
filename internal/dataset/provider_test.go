package dataset

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func exportBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Termék név", "Márka", "Bruttó ár"},
		{"Coca Cola 1.75l", "Coca-Cola", 699},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestProviderDownloadCaches(t *testing.T) {
	data := exportBytes(t)
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	p := New(srv.URL+"/export.xlsx", t.TempDir(), "", 5*time.Second)

	path1, err := p.Download(false)
	require.NoError(t, err)
	path2, err := p.Download(false)
	require.NoError(t, err)
	assert.Equal(t, path1, path2)
	assert.Equal(t, 1, hits, "second call must reuse the cache")

	_, err = p.Download(true)
	require.NoError(t, err)
	assert.Equal(t, 2, hits, "force re-downloads")
}

func TestProviderLoadParsesTable(t *testing.T) {
	data := exportBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	p := New(srv.URL+"/export.xlsx", t.TempDir(), "", 5*time.Second)
	table, err := p.Load(false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Termék név", "Márka", "Bruttó ár"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Coca Cola 1.75l", table.Rows[0]["Termék név"].Raw)
}

func TestProviderBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	p := New(srv.URL+"/export.xlsx", t.TempDir(), "", 5*time.Second)
	_, err := p.Download(false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestProviderSourceOverride(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "local.xlsx")
	require.NoError(t, os.WriteFile(src, exportBytes(t), 0o644))

	// no server: the local source must win without touching the network
	p := New("http://127.0.0.1:0/never", dir, src, time.Second)
	table, err := p.Load(false)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestProviderSourceMissing(t *testing.T) {
	p := New("", t.TempDir(), "/nonexistent/file.xlsx", time.Second)
	_, err := p.Load(false)
	assert.Error(t, err)
}
