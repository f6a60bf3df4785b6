package service

import (
	"strings"

	"arfigyelo-search/internal/search/model"
)

// BuildIndex derives the searchable form of a table: per row a normalized
// search text (name values then brand values, empties dropped) and a
// display label. Never fails; missing cells read as empty strings.
// Deterministic for a fixed (table, schema) pair.
func BuildIndex(t model.Table, schema model.ColumnSchema) model.IndexedTable {
	idx := model.IndexedTable{Columns: t.Columns}
	for _, row := range t.Rows {
		idx.Rows = append(idx.Rows, model.IndexedRow{
			Row:        row,
			SearchText: searchText(row, schema),
			Label:      label(row, schema),
		})
	}
	return idx
}

func searchText(row model.Row, schema model.ColumnSchema) string {
	var parts []string
	for _, col := range append(append([]string{}, schema.NameColumns...), schema.BrandColumns...) {
		if v := Normalize(row[col].Raw); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// label joins the name values with " | " and appends the first brand value
// as " (<value>)" — even when that value is empty, to keep labels stable
// across rows of the same table.
func label(row model.Row, schema model.ColumnSchema) string {
	parts := make([]string, 0, len(schema.NameColumns))
	for _, col := range schema.NameColumns {
		parts = append(parts, row[col].Raw)
	}
	out := strings.Join(parts, " | ")
	if len(schema.BrandColumns) > 0 {
		out += " (" + row[schema.BrandColumns[0]].Raw + ")"
	}
	return out
}
