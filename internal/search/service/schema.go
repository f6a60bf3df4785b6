package service

import (
	"strings"

	"arfigyelo-search/internal/search/model"
)

// Role vocabularies, matched as substrings of the normalized column name.
// Accented Hungarian headers collapse onto these after Normalize
// ("Márka" -> "marka", "Bruttó ár" -> "brutto ar").
var roleKeys = struct {
	name  []string
	brand []string
	store []string
	price []string
	id    []string
}{
	name:  []string{"termek", "megnevez", "product", "item", "cikk"},
	brand: []string{"marka", "brand"},
	store: []string{"aruhaz", "bolt", "lanc", "store"},
	price: []string{"ar", "brutto", "price"},
	id:    []string{"id", "azonosito", "ean", "gtin"},
}

// DetectSchema classifies columns into the five roles by keyword
// containment over normalized names. Reads only column names and kinds,
// never row values. Fallbacks: no name column -> first column; no numeric
// price column -> every numeric column.
func DetectSchema(t model.Table) (model.ColumnSchema, error) {
	if len(t.Columns) == 0 {
		return model.ColumnSchema{}, model.ErrNoColumns
	}

	lowered := make(map[string]string, len(t.Columns))
	for _, col := range t.Columns {
		lowered[col] = Normalize(col)
	}

	pick := func(keys []string) []string {
		var out []string
		for _, col := range t.Columns {
			if containsAny(lowered[col], keys) {
				out = append(out, col)
			}
		}
		return out
	}

	s := model.ColumnSchema{
		NameColumns:  pick(roleKeys.name),
		BrandColumns: pick(roleKeys.brand),
		StoreColumns: pick(roleKeys.store),
		IDColumns:    pick(roleKeys.id),
	}
	if len(s.NameColumns) == 0 {
		s.NameColumns = []string{t.Columns[0]}
	}

	numeric := t.NumericColumns()
	for _, col := range pick(roleKeys.price) {
		if contains(numeric, col) {
			s.PriceColumns = append(s.PriceColumns, col)
		}
	}
	if len(s.PriceColumns) == 0 {
		s.PriceColumns = numeric
	}
	return s, nil
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
