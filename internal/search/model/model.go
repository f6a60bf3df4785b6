package model

import "errors"

// ErrNoColumns is returned when a table carries no columns at all.
// Everything else (empty query, no match above threshold) degrades to an
// empty result list instead of failing.
var ErrNoColumns = errors.New("table has no columns")

// ValueKind classifies a single cell.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindText
	KindNumber
)

// Cell keeps the raw cell text plus the parsed number when the whole cell
// is numeric under Hungarian formatting (decimal comma, space/NBSP grouping).
type Cell struct {
	Raw  string    `json:"raw"`
	Num  float64   `json:"num,omitempty"`
	Kind ValueKind `json:"-"`
}

// Row maps column name to cell value.
type Row map[string]Cell

// Table is an ordered set of columns shared by all rows. Column order is
// significant: schema detection falls back to the first column.
type Table struct {
	Columns []string
	Rows    []Row
}

// NumericColumns returns, in column order, every column whose non-empty
// cells are all numbers. Columns with no non-empty cell at all do not count.
func (t Table) NumericColumns() []string {
	var out []string
	for _, col := range t.Columns {
		hasNum := false
		hasText := false
		for _, r := range t.Rows {
			switch r[col].Kind {
			case KindNumber:
				hasNum = true
			case KindText:
				hasText = true
			}
			if hasText {
				break
			}
		}
		if hasNum && !hasText {
			out = append(out, col)
		}
	}
	return out
}

// IsNumeric reports whether col qualifies as a numeric column.
func (t Table) IsNumeric(col string) bool {
	for _, c := range t.NumericColumns() {
		if c == col {
			return true
		}
	}
	return false
}

// ColumnSchema is the inferred role assignment of columns. NameColumns is
// never empty after detection; the other sets may be. A column may appear
// under several roles.
type ColumnSchema struct {
	NameColumns  []string `json:"name_columns"`
	BrandColumns []string `json:"brand_columns"`
	StoreColumns []string `json:"store_columns"`
	PriceColumns []string `json:"price_columns"`
	IDColumns    []string `json:"id_columns"`
}

// IndexedRow pairs a source row with its derived search text and label.
// Lives only for the duration of one search call.
type IndexedRow struct {
	Row        Row
	SearchText string
	Label      string
}

// IndexedTable is the searchable form of a table. Rows keep original order.
type IndexedTable struct {
	Columns []string
	Rows    []IndexedRow
}

// Scored is one ranked candidate: the row index into the indexed table plus
// its token-set similarity score.
type Scored struct {
	Index int
	Score float64
}

// MatchResult is the only object that escapes to the caller.
type MatchResult struct {
	Label     string             `json:"label"`
	Score     float64            `json:"score"`
	Store     string             `json:"store,omitempty"`
	Brand     string             `json:"brand,omitempty"`
	ProductID string             `json:"product_id,omitempty"`
	Prices    map[string]float64 `json:"prices,omitempty"`
	SourceRow map[string]string  `json:"source_row"`
}

// Options control one search call. Zero values fall back to the defaults.
type Options struct {
	Limit    int           `json:"limit"`     // max matches, default 5
	MinScore float64       `json:"min_score"` // inclusive threshold, default 45
	Schema   *ColumnSchema `json:"-"`         // optional detection override
}

const (
	DefaultLimit    = 5
	DefaultMinScore = 45.0
)

// WithDefaults fills unset fields. MinScore < 0 means "explicitly zero".
func (o Options) WithDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.MinScore == 0 {
		o.MinScore = DefaultMinScore
	} else if o.MinScore < 0 {
		o.MinScore = 0
	}
	return o
}
