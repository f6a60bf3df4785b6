package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger: human-readable console output plus a rotated file.
func SetupLogger(cfg Config) zerolog.Logger {
	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755)

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	mw := zerolog.MultiLevelWriter(console, file)
	return setup(cfg, mw)
}

// SetupFileLogger logs to the rotated file only. The MCP binary uses it:
// stdout there is the protocol channel and must stay clean.
func SetupFileLogger(cfg Config) zerolog.Logger {
	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755)

	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	return setup(cfg, file)
}

func setup(cfg Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	logger := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
