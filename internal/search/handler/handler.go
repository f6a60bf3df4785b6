package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"arfigyelo-search/internal/dataset"
	"arfigyelo-search/internal/fileio"
	"arfigyelo-search/internal/search/model"
	svc "arfigyelo-search/internal/search/service"
)

// SearchDataset serves GET /api/search over the configured dataset:
// ?q=coca+cola+1.75l&limit=5&min_score=45&refresh=false
func SearchDataset(p *dataset.Provider, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		query := r.URL.Query().Get("q")

		table, err := p.Load(toBool(r.URL.Query().Get("refresh"), false))
		if err != nil {
			logger.Error().Err(err).Msg("load dataset")
			httpError(w, "dataset unavailable: "+err.Error(), http.StatusBadGateway)
			return
		}

		opts := optsFromValues(r.URL.Query().Get("limit"), r.URL.Query().Get("min_score"))
		results, err := svc.Search(table, query, opts)
		if err != nil {
			httpError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		logger.Info().
			Str("query", query).
			Int("rows", len(table.Rows)).
			Int("matches", len(results)).
			Dur("elapsed", time.Since(start)).
			Msg("search done")
		writeJSON(w, searchResponse{Query: query, Matches: results})
	}
}

// SearchUpload serves POST /api/search: a multipart price list file plus a
// query, for searching ad-hoc exports without touching the cache.
func SearchUpload(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer r.Body.Close()

		if err := r.ParseMultipartForm(64 << 20); err != nil {
			httpError(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			httpError(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		headers, records, err := fileio.ReadAny(file, header.Filename, atoi(r.FormValue("header_row"), 1))
		if err != nil {
			httpError(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}
		table := model.NewTable(headers, records)

		query := r.FormValue("query")
		opts := optsFromValues(r.FormValue("limit"), r.FormValue("min_score"))
		results, err := svc.Search(table, query, opts)
		if err != nil {
			httpError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		logger.Info().
			Str("file", header.Filename).
			Str("query", query).
			Int("rows", len(table.Rows)).
			Int("matches", len(results)).
			Dur("elapsed", time.Since(start)).
			Msg("upload search done")
		writeJSON(w, searchResponse{Query: query, Matches: results})
	}
}

// InspectSchema serves GET /api/schema for column detection diagnostics.
func InspectSchema(p *dataset.Provider, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := p.Load(toBool(r.URL.Query().Get("refresh"), false))
		if err != nil {
			logger.Error().Err(err).Msg("load dataset")
			httpError(w, "dataset unavailable: "+err.Error(), http.StatusBadGateway)
			return
		}
		schema, err := svc.InspectSchema(table)
		if err != nil {
			httpError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, schemaResponse{
			Rows:    len(table.Rows),
			Columns: table.Columns,
			Schema:  schema,
		})
	}
}

// Refresh serves POST /api/refresh, forcing a re-download of the export.
func Refresh(p *dataset.Provider, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := p.Download(true)
		if err != nil {
			logger.Error().Err(err).Msg("refresh dataset")
			httpError(w, "refresh failed: "+err.Error(), http.StatusBadGateway)
			return
		}
		logger.Info().Str("path", path).Msg("dataset refreshed")
		writeJSON(w, map[string]string{"path": path})
	}
}

type searchResponse struct {
	Query   string              `json:"query"`
	Matches []model.MatchResult `json:"matches"`
}

type schemaResponse struct {
	Rows    int                `json:"rows"`
	Columns []string           `json:"columns"`
	Schema  model.ColumnSchema `json:"detected_schema"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func httpError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
