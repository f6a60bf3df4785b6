package service

import (
	"sort"
	"strings"

	"arfigyelo-search/internal/search/model"
)

// Match scores every candidate search text against the normalized query and
// returns the top `limit` rows, best first. Ties keep original row order
// (stable sort). Threshold filtering is the assembler's job, not ours.
func Match(query string, candidates []string, limit int) []model.Scored {
	nq := Normalize(query)
	scored := make([]model.Scored, len(candidates))
	for i, c := range candidates {
		scored[i] = model.Scored{Index: i, Score: TokenSetRatio(nq, c)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Assemble maps ranked candidates back to structured results, dropping
// everything under minScore (inclusive compare: a tie at the threshold
// stays in).
func Assemble(idx model.IndexedTable, schema model.ColumnSchema, scored []model.Scored, minScore float64) []model.MatchResult {
	results := make([]model.MatchResult, 0, len(scored))
	for _, sc := range scored {
		if sc.Score < minScore {
			continue
		}
		row := idx.Rows[sc.Index]
		results = append(results, model.MatchResult{
			Label:     row.Label,
			Score:     sc.Score,
			Store:     firstNonEmpty(row.Row, schema.StoreColumns),
			Brand:     firstNonEmpty(row.Row, schema.BrandColumns),
			ProductID: firstNonEmpty(row.Row, schema.IDColumns),
			Prices:    extractPrices(row.Row, schema.PriceColumns),
			SourceRow: sourceRow(idx.Columns, row.Row),
		})
	}
	return results
}

// Search is the composed pipeline: detect (unless overridden), index,
// match, assemble. Pure: the caller's table is read-only.
func Search(t model.Table, query string, opts model.Options) ([]model.MatchResult, error) {
	opts = opts.WithDefaults()

	var schema model.ColumnSchema
	if opts.Schema != nil {
		schema = *opts.Schema
	} else {
		var err error
		if schema, err = DetectSchema(t); err != nil {
			return nil, err
		}
	}

	idx := BuildIndex(t, schema)
	candidates := make([]string, len(idx.Rows))
	for i, r := range idx.Rows {
		candidates[i] = r.SearchText
	}
	scored := Match(query, candidates, opts.Limit)
	return Assemble(idx, schema, scored, opts.MinScore), nil
}

// InspectSchema exposes detection for diagnostics.
func InspectSchema(t model.Table) (model.ColumnSchema, error) {
	return DetectSchema(t)
}

// firstNonEmpty returns the first non-blank trimmed value over the given
// columns in order. One helper for store/brand/id, per role column lists.
func firstNonEmpty(row model.Row, columns []string) string {
	for _, col := range columns {
		if v := strings.TrimSpace(row[col].Raw); v != "" {
			return v
		}
	}
	return ""
}

func extractPrices(row model.Row, columns []string) map[string]float64 {
	prices := make(map[string]float64)
	for _, col := range columns {
		if c := row[col]; c.Kind == model.KindNumber {
			prices[col] = c.Num
		}
	}
	if len(prices) == 0 {
		return nil
	}
	return prices
}

func sourceRow(columns []string, row model.Row) map[string]string {
	out := make(map[string]string, len(columns))
	for _, col := range columns {
		out[col] = row[col].Raw
	}
	return out
}
