package main

import (
	"arfigyelo-search/internal/config"
	"arfigyelo-search/internal/dataset"
	"arfigyelo-search/internal/mcpserver"
)

func main() {
	cfg := config.Load()
	logger := config.SetupFileLogger(cfg)

	provider := dataset.New(cfg.DatasetURL, cfg.CacheDir, cfg.DatasetSource, cfg.HTTPTimeout)
	srv := mcpserver.New(provider, logger)

	logger.Info().Msg("mcp server starting on stdio")
	if err := srv.Serve(); err != nil {
		logger.Fatal().Err(err).Msg("mcp serve")
	}
}
