package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arfigyelo-search/internal/search/model"
)

func TestSearchCocaColaScenario(t *testing.T) {
	results, err := Search(priceListTable(), "kokakola 1.75 liter", model.Options{Limit: 5, MinScore: 45})
	require.NoError(t, err)
	require.Len(t, results, 1)

	m := results[0]
	assert.Contains(t, m.Label, "Coca Cola 1.75l")
	assert.Equal(t, "Coca-Cola", m.Brand)
	assert.Equal(t, "Tesco", m.Store)
	assert.Equal(t, map[string]float64{"Bruttó ár": 699.0}, m.Prices)
	assert.GreaterOrEqual(t, m.Score, 45.0)
	assert.Empty(t, m.ProductID)
	assert.Equal(t, "Coca Cola 1.75l", m.SourceRow["Termék név"])
}

func TestSearchUnrelatedQueryReturnsNothing(t *testing.T) {
	results, err := Search(priceListTable(), "teljesen máshogy", model.Options{Limit: 5, MinScore: 45})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRespectsLimitAndOrdering(t *testing.T) {
	table := model.NewTable(
		[]string{"Termék név"},
		[][]string{
			{"alma piros"},
			{"alma zöld"},
			{"alma sárga"},
			{"körte"},
		},
	)
	results, err := Search(table, "alma", model.Options{Limit: 2, MinScore: -1})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestSearchTieKeepsRowOrder(t *testing.T) {
	table := model.NewTable(
		[]string{"Termék név"},
		[][]string{
			{"tej"},
			{"tej"},
		},
	)
	results, err := Search(table, "tej", model.Options{Limit: 5, MinScore: -1})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "tej", results[0].SourceRow["Termék név"])
}

func TestSearchEmptyQuery(t *testing.T) {
	// not an error: scores come out low and the threshold drops everything
	results, err := Search(priceListTable(), "", model.Options{Limit: 5, MinScore: 45})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchNoColumns(t *testing.T) {
	_, err := Search(model.Table{}, "tej", model.Options{})
	assert.ErrorIs(t, err, model.ErrNoColumns)
}

func TestSearchDeterministic(t *testing.T) {
	a, err := Search(priceListTable(), "kokakola 1.75 liter", model.Options{})
	require.NoError(t, err)
	b, err := Search(priceListTable(), "kokakola 1.75 liter", model.Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSearchDefaults(t *testing.T) {
	// zero Options mean limit 5, min score 45
	results, err := Search(priceListTable(), "kokakola 1.75 liter", model.Options{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchSchemaOverride(t *testing.T) {
	schema := model.ColumnSchema{
		NameColumns:  []string{"Bolt"},
		PriceColumns: []string{"Bruttó ár"},
	}
	results, err := Search(priceListTable(), "tesco", model.Options{MinScore: -1, Schema: &schema})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Tesco", results[0].Label)
	assert.Equal(t, 100.0, results[0].Score)
}

func TestAssembleInclusiveThreshold(t *testing.T) {
	idx := model.IndexedTable{
		Columns: []string{"a"},
		Rows: []model.IndexedRow{
			{Row: model.Row{"a": model.NewCell("x")}, Label: "x", SearchText: "x"},
		},
	}
	scored := []model.Scored{{Index: 0, Score: 45.0}}
	results := Assemble(idx, model.ColumnSchema{NameColumns: []string{"a"}}, scored, 45.0)
	assert.Len(t, results, 1, "score equal to threshold must stay in")

	results = Assemble(idx, model.ColumnSchema{NameColumns: []string{"a"}}, scored, 45.01)
	assert.Empty(t, results)
}

func TestMatchDoesNotFilter(t *testing.T) {
	scored := Match("query", []string{"totally different", "another"}, 10)
	assert.Len(t, scored, 2, "threshold filtering belongs to Assemble")
}
