package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkcollective/relalg/pkg/plan"
	"github.com/darkcollective/relalg/pkg/registry"
	"github.com/darkcollective/relalg/pkg/schema"
)

func testSchema() *schema.Schema {
	s := schema.New()
	users := schema.NewTable("users")
	users.AddColumn(schema.Column{Name: "id", DataType: schema.Integer})
	users.AddColumn(schema.Column{Name: "name", DataType: schema.Varchar})
	users.AddColumn(schema.Column{Name: "age", DataType: schema.Integer})
	s.AddTable(users)

	orders := schema.NewTable("orders")
	orders.AddColumn(schema.Column{Name: "id", DataType: schema.Integer})
	orders.AddColumn(schema.Column{Name: "user_id", DataType: schema.Integer})
	orders.AddColumn(schema.Column{Name: "total", DataType: schema.Decimal})
	s.AddTable(orders)
	return s
}

func TestValidateTableScanUnknownTable(t *testing.T) {
	scan := plan.NewTableScan("ghosts", "")
	result := Validate(scan, testSchema())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "does not exist in schema")
}

func TestValidateProjectionKnownColumns(t *testing.T) {
	scan := plan.NewTableScan("users", "")
	proj := plan.NewProjection([]string{"name", "age"}, false, scan)
	result := Validate(proj, testSchema())
	assert.True(t, result.Valid())
}

func TestValidateProjectionUnknownColumn(t *testing.T) {
	scan := plan.NewTableScan("users", "")
	proj := plan.NewProjection([]string{"nickname"}, false, scan)
	result := Validate(proj, testSchema())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "is not available in projection")
}

func TestValidateSelectionUnresolvedColumn(t *testing.T) {
	scan := plan.NewTableScan("users", "")
	sel := plan.NewSelection("favorite_color = 'blue'", scan)
	result := Validate(sel, testSchema())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "favorite_color")
	assert.Contains(t, result.Errors[0], "is not available")
}

func TestValidateJoinRequiresTwoChildren(t *testing.T) {
	scan := plan.NewTableScan("users", "")
	join := &plan.Join{Type: plan.InnerJoin}
	join.AddChild(scan)
	result := Validate(join, testSchema())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "must have exactly 2 children")
}

func TestValidateJoinAmbiguousColumnWarning(t *testing.T) {
	left := plan.NewTableScan("users", "u")
	right := plan.NewTableScan("users", "u2")
	join := plan.NewJoin(plan.InnerJoin, "u.id = u2.id", left, right)
	result := Validate(join, testSchema())
	assert.True(t, result.Valid())
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Ambiguous column name") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateAggregationGroupByAndHaving(t *testing.T) {
	scan := plan.NewTableScan("orders", "")
	agg := plan.NewAggregation(
		[]string{"user_id"},
		[]plan.FunctionCall{{Name: "COUNT", Arguments: []string{"*"}, Category: registry.Aggregate, OriginalExpression: "COUNT(*)"}},
		"COUNT(*) > 1",
		scan,
	)
	result := Validate(agg, testSchema())
	assert.True(t, result.Valid())
}

func TestValidateAggregationUnknownGroupByColumn(t *testing.T) {
	scan := plan.NewTableScan("orders", "")
	agg := plan.NewAggregation([]string{"bogus"}, nil, "", scan)
	result := Validate(agg, testSchema())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "GROUP BY column 'bogus' is not available")
}

func TestValidateSortUnknownColumn(t *testing.T) {
	scan := plan.NewTableScan("users", "")
	sort := plan.NewSort([]string{"nickname DESC"}, scan)
	result := Validate(sort, testSchema())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ORDER BY column 'nickname' is not available")
}

func TestValidateSubqueryRegistersUnderAlias(t *testing.T) {
	inner := plan.NewProjection([]string{"id"}, false, plan.NewTableScan("users", ""))
	sub := plan.NewSubquery(plan.SubqueryFrom, "u2", "abc", inner)
	proj := plan.NewProjection([]string{"u2.id"}, false, sub)
	result := Validate(proj, testSchema())
	assert.True(t, result.Valid())
}
