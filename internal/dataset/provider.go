package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"arfigyelo-search/internal/fileio"
	"arfigyelo-search/internal/search/model"
)

// DefaultURL is the daily Árfigyelő product export.
const DefaultURL = "https://cdnarfigyeloprodweu.azureedge.net/excel/arfigyelo_napi_termekadatok.xlsx"

// Provider downloads the price list export and caches it on disk. It owns
// all I/O; the search core never touches the network or the filesystem.
type Provider struct {
	URL      string
	CacheDir string
	// Source, when set, is a local file used instead of downloading.
	Source string
	Client *http.Client
}

func New(url, cacheDir, source string, timeout time.Duration) *Provider {
	if url == "" {
		url = DefaultURL
	}
	return &Provider{
		URL:      url,
		CacheDir: cacheDir,
		Source:   source,
		Client:   &http.Client{Timeout: timeout},
	}
}

// cachePath keys the cache file by URL so switching exports never serves
// a stale file under the same name.
func (p *Provider) cachePath() string {
	sum := sha256.Sum256([]byte(p.URL))
	return filepath.Join(p.CacheDir, hex.EncodeToString(sum[:])[:16]+".xlsx")
}

// Download fetches the export into the cache and returns the local path.
// A present cache file is reused unless force is set. The write is
// tmp-then-rename so a failed download never clobbers a good copy.
func (p *Provider) Download(force bool) (string, error) {
	dest := p.cachePath()
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	if !force {
		if _, err := os.Stat(dest); err == nil {
			return dest, nil
		}
	}

	resp, err := p.Client.Get(p.URL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", p.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", p.URL, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "arfigyelo-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.ReadFrom(resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Load returns the export as a Table. The local Source override wins over
// the network; otherwise the cached (or freshly downloaded) file is parsed.
func (p *Provider) Load(force bool) (model.Table, error) {
	path := p.Source
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return model.Table{}, fmt.Errorf("dataset source %s: %w", path, err)
		}
	} else {
		var err error
		if path, err = p.Download(force); err != nil {
			return model.Table{}, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Table{}, err
	}
	defer f.Close()

	headers, records, err := fileio.ReadAny(f, path, 1)
	if err != nil {
		return model.Table{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return model.NewTable(headers, records), nil
}
