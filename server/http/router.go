package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"arfigyelo-search/internal/config"
	"arfigyelo-search/internal/dataset"
	"arfigyelo-search/internal/middleware"
	searchHnd "arfigyelo-search/internal/search/handler"
	"arfigyelo-search/server/http/handlers"
)

func NewRouter(cfg config.Config, provider *dataset.Provider, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", searchHnd.SearchDataset(provider, logger))
		r.Post("/search", searchHnd.SearchUpload(logger))
		r.Get("/schema", searchHnd.InspectSchema(provider, logger))
		r.Post("/refresh", searchHnd.Refresh(provider, logger))
	})

	return r
}
