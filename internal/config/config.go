package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxUploadMB  int

	DatasetURL    string
	CacheDir      string
	DatasetSource string // local file override, skips downloading
	HTTPTimeout   time.Duration
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	timeoutSec, _ := strconv.Atoi(getenv("HTTP_TIMEOUT_SEC", "60"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:          getenv("HOST", "127.0.0.1"),
		Port:          port,
		AllowOrigins:  origins,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFile:       getenv("LOG_FILE", "logs/arfigyelo-search.log"),
		MaxUploadMB:   mb,
		DatasetURL:    getenv("DATASET_URL", ""),
		CacheDir:      getenv("CACHE_DIR", defaultCacheDir()),
		DatasetSource: getenv("DATASET_SOURCE", ""),
		HTTPTimeout:   time.Duration(timeoutSec) * time.Second,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "arfigyelo-search")
	}
	return filepath.Join(home, ".cache", "arfigyelo-search")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
