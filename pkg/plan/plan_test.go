package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darkcollective/relalg/pkg/registry"
)

func TestTableScanToSQLAndParenthetical(t *testing.T) {
	ts := NewTableScan("orders", "o")
	assert.Equal(t, "orders AS o", ts.ToSQL())
	assert.Equal(t, "TABLE_SCAN(orders AS o)", ToParenthetical(ts))

	bare := NewTableScan("orders", "")
	assert.Equal(t, "orders", bare.EffectiveName())
}

func TestSelectionWrapsChildInWhere(t *testing.T) {
	ts := NewTableScan("orders", "")
	sel := NewSelection("amount > 100", ts)
	assert.Equal(t, "orders WHERE amount > 100", sel.ToSQL())
	assert.Equal(t, "SELECTION(amount > 100, TABLE_SCAN(orders))", ToParenthetical(sel))
}

func TestJoinRendersBothChildren(t *testing.T) {
	left := NewTableScan("orders", "o")
	right := NewTableScan("customers", "c")
	j := NewJoin(InnerJoin, "o.customer_id = c.id", left, right)
	assert.Equal(t, "orders AS o JOIN customers AS c ON o.customer_id = c.id", j.ToSQL())
	assert.Equal(t, "INNER_JOIN", j.operatorName())
}

func TestJoinWithoutConditionOmitsOn(t *testing.T) {
	j := NewJoin(CrossJoin, "", NewTableScan("a", ""), NewTableScan("b", ""))
	assert.Equal(t, "a JOIN b", j.ToSQL())
}

func TestAggregationGroupByAndHaving(t *testing.T) {
	ts := NewTableScan("orders", "")
	agg := NewAggregation([]string{"status"}, []FunctionCall{{Name: "COUNT", Arguments: []string{"*"}, Category: registry.Aggregate}}, "COUNT(*) > 1", ts)
	assert.Equal(t, "orders GROUP BY status HAVING COUNT(*) > 1", agg.ToSQL())
}

func TestSortOrdersByColumns(t *testing.T) {
	ts := NewTableScan("orders", "")
	s := NewSort([]string{"amount DESC"}, ts)
	assert.Equal(t, "orders ORDER BY amount DESC", s.ToSQL())
}

func TestProjectionSelectsFromChild(t *testing.T) {
	ts := NewTableScan("orders", "")
	p := NewProjection([]string{"id", "amount"}, false, ts)
	assert.Equal(t, "SELECT id, amount FROM orders", p.ToSQL())
}

func TestProjectionDistinctWithAliases(t *testing.T) {
	ts := NewTableScan("orders", "")
	p := NewProjection(nil, true, ts)
	p.SelectItems = []SelectItem{
		{Expression: "amount", Alias: "total"},
		{Expression: "status"},
	}
	assert.Equal(t, "SELECT DISTINCT amount AS total, status FROM orders", p.ToSQL())
}

func TestProjectionComposesOverSelection(t *testing.T) {
	ts := NewTableScan("orders", "")
	sel := NewSelection("amount > 100", ts)
	p := NewProjection([]string{"id"}, false, sel)
	assert.Equal(t, "SELECT id FROM orders WHERE amount > 100", p.ToSQL())
}

func TestSubqueryEffectiveTableNameFallsBackToID(t *testing.T) {
	inner := NewTableScan("orders", "")
	sub := NewSubquery(SubqueryFrom, "", "abc123", inner)
	assert.Equal(t, "subquery_abc123", sub.EffectiveTableName())
	assert.Equal(t, "(orders)", sub.ToSQL())
}

func TestSubqueryEffectiveTableNamePrefersAlias(t *testing.T) {
	inner := NewTableScan("orders", "")
	sub := NewSubquery(SubqueryFrom, "o2", "abc123", inner)
	assert.Equal(t, "o2", sub.EffectiveTableName())
	assert.Equal(t, "(orders) AS o2", sub.ToSQL())
}

func TestToTreeStringIndentsChildren(t *testing.T) {
	ts := NewTableScan("orders", "")
	sel := NewSelection("amount > 100", ts)
	tree := sel.ToTreeString()
	assert.Contains(t, tree, "SELECTION(amount > 100)")
	assert.Contains(t, tree, "  TABLE_SCAN(orders)")
}

func TestFunctionCallToSQLAndCategoryHelpers(t *testing.T) {
	f := FunctionCall{Name: "SUM", Arguments: []string{"amount"}, Category: registry.Aggregate}
	assert.Equal(t, "SUM(amount)", f.ToSQL())
	assert.True(t, f.IsAggregate())
	assert.False(t, f.IsString())
	assert.False(t, f.IsNumeric())
}

func TestSelectItemEffectiveName(t *testing.T) {
	aliased := SelectItem{Expression: "amount", Alias: "total"}
	assert.True(t, aliased.HasAlias())
	assert.Equal(t, "total", aliased.EffectiveName())

	bare := SelectItem{Expression: "status"}
	assert.False(t, bare.HasAlias())
	assert.Equal(t, "status", bare.EffectiveName())
}
