// Package validator implements the schema validator (component A7): a
// post-order walk over a plan tree that checks every table/column
// reference against a schema.Schema, accumulating errors and warnings
// rather than failing fast. Grounded on original_source's
// RelationalAlgebraValidator.java.
package validator

import (
	"fmt"
	"strings"

	"github.com/darkcollective/relalg/pkg/plan"
	"github.com/darkcollective/relalg/pkg/schema"
)

// Result holds every error and warning accumulated while validating a plan.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no errors (warnings are allowed).
func (r Result) Valid() bool { return len(r.Errors) == 0 }

type validator struct {
	schema *schema.Schema
	result Result
}

// Validate walks root against sch and returns every accumulated error and
// warning. It never returns a Go error itself — structural problems (e.g.
// a Join with other than two children) are reported as validation errors,
// matching original_source's accumulate-and-report design.
func Validate(root plan.Node, sch *schema.Schema) Result {
	v := &validator{schema: sch}
	v.validate(root)
	return v.result
}

func (v *validator) errf(format string, args ...any) {
	v.result.Errors = append(v.result.Errors, fmt.Sprintf(format, args...))
}

func (v *validator) warnf(format string, args ...any) {
	v.result.Warnings = append(v.result.Warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validate(n plan.Node) availableColumns {
	switch op := n.(type) {
	case *plan.TableScan:
		return v.validateTableScan(op)
	case *plan.Projection:
		return v.validateProjection(op)
	case *plan.Selection:
		return v.validateSelection(op)
	case *plan.Join:
		return v.validateJoin(op)
	case *plan.Aggregation:
		return v.validateAggregation(op)
	case *plan.Sort:
		return v.validateSort(op)
	case *plan.Subquery:
		return v.validateSubquery(op)
	}
	return nil
}

func (v *validator) validateTableScan(op *plan.TableScan) availableColumns {
	var cols availableColumns
	table, ok := v.schema.Table(op.TableName)
	if !ok {
		v.errf("Table '%s' does not exist in schema", op.TableName)
		return cols
	}
	qualifier := op.EffectiveName()
	for _, c := range table.Columns() {
		cols = append(cols, columnInfo{TableName: qualifier, ColumnName: c.Name, DataType: c.DataType})
		cols = append(cols, columnInfo{TableName: "", ColumnName: c.Name, DataType: c.DataType})
	}
	return cols
}

func (v *validator) validateProjection(op *plan.Projection) availableColumns {
	var childCols availableColumns
	if c := firstChild(op); c != nil {
		childCols = v.validate(c)
	}

	for _, col := range op.Columns {
		trimmed := strings.TrimSpace(col)
		switch {
		case trimmed == "*":
			continue
		case strings.Contains(trimmed, "(") && strings.Contains(trimmed, ")"):
			v.validateFunctionCallText(trimmed, childCols)
		default:
			if !childCols.hasColumn(trimmed) {
				v.errf("Column '%s' is not available in projection", trimmed)
			}
		}
	}
	for _, f := range op.FunctionCalls {
		v.validateFunctionCall(f, childCols)
	}
	return childCols
}

func (v *validator) validateFunctionCallText(text string, cols availableColumns) {
	for _, f := range extractFunctionCalls(text) {
		v.validateFunctionCall(f, cols)
	}
}

func (v *validator) validateFunctionCall(f plan.FunctionCall, cols availableColumns) {
	if f.IsAggregate() {
		return
	}
	for _, arg := range f.Arguments {
		arg = strings.TrimSpace(arg)
		if arg == "" || arg == "*" || isLiteralOrKeyword(arg) {
			continue
		}
		if !isIdentifierShaped(arg) {
			continue
		}
		if !cols.hasColumn(arg) {
			v.errf("Column '%s' is not available in projection", arg)
		}
	}
}

func isIdentifierShaped(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '.' {
			continue
		}
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}

func (v *validator) validateSelection(op *plan.Selection) availableColumns {
	var childCols availableColumns
	if c := firstChild(op); c != nil {
		childCols = v.validate(c)
	}
	v.validateCondition(op.Condition, childCols)
	return childCols
}

// validateCondition implements original_source's validateCondition:
// extract function calls first (validating their arguments), then scan the
// remaining text (with string literals and found function-call substrings
// removed) for unresolved identifier-shaped column references.
func (v *validator) validateCondition(condition string, cols availableColumns) {
	if strings.TrimSpace(condition) == "" {
		return
	}
	calls := extractFunctionCalls(condition)
	for _, f := range calls {
		v.validateFunctionCall(f, cols)
	}
	for _, unresolved := range findUnresolvedColumns(condition, calls, cols) {
		v.errf("Column '%s' in condition '%s' is not available", unresolved, condition)
	}
}

func (v *validator) validateJoin(op *plan.Join) availableColumns {
	if len(op.Children()) != 2 {
		v.errf("Join operator must have exactly 2 children")
		return nil
	}
	left := v.validate(op.Children()[0])
	right := v.validate(op.Children()[1])
	v.checkColumnConflicts(left, right)

	union := append(append(availableColumns{}, left...), right...)
	if strings.TrimSpace(op.Condition) != "" {
		v.validateCondition(op.Condition, union)
	}
	return union
}

// checkColumnConflicts warns on columns with the same name registered
// unqualified (tableName == "") on both sides of a join — the same
// mechanism original_source uses, since every TableScan column is
// registered once qualified and once unqualified.
func (v *validator) checkColumnConflicts(left, right availableColumns) {
	for _, l := range left {
		if l.TableName != "" {
			continue
		}
		for _, r := range right {
			if r.TableName != "" {
				continue
			}
			if strings.EqualFold(l.ColumnName, r.ColumnName) {
				v.warnf("Ambiguous column name '%s' exists in both sides of join", l.ColumnName)
			}
		}
	}
}

func (v *validator) validateAggregation(op *plan.Aggregation) availableColumns {
	var childCols availableColumns
	if c := firstChild(op); c != nil {
		childCols = v.validate(c)
	}

	var reduced availableColumns
	for _, g := range op.GroupBy {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if col, ok := childCols.lookup(g); ok {
			reduced = append(reduced, col)
		} else {
			v.errf("GROUP BY column '%s' is not available", g)
		}
	}
	for _, f := range op.AggregateFuncs {
		v.validateFunctionCallText(f.ToSQL(), childCols)
		reduced = append(reduced, columnInfo{ColumnName: f.ToSQL(), DataType: schema.Decimal})
	}

	if strings.TrimSpace(op.HavingCondition) != "" {
		v.validateHavingCondition(op.HavingCondition, reduced)
	}
	return reduced
}

// validateHavingCondition implements original_source's
// validateHavingCondition: aggregate function calls inside HAVING are
// never argument-validated (any aggregate is accepted there), only
// non-aggregate function calls are. The remaining text, after stripping
// every found function-call substring, is scanned for unresolved
// identifiers against the reduced post-aggregation context.
func (v *validator) validateHavingCondition(having string, reduced availableColumns) {
	calls := extractFunctionCalls(having)
	scrubbed := having
	for _, f := range calls {
		if f.IsAggregate() {
			scrubbed = strings.Replace(scrubbed, f.OriginalExpression, "", 1)
			continue
		}
		v.validateFunctionCall(f, reduced)
		scrubbed = strings.Replace(scrubbed, f.OriginalExpression, "", 1)
	}
	for _, unresolved := range findUnresolvedColumns(scrubbed, nil, reduced) {
		v.errf("Column '%s' in HAVING condition is not available. Only GROUP BY columns and aggregate functions are allowed in HAVING.", unresolved)
	}
}

func (v *validator) validateSort(op *plan.Sort) availableColumns {
	var childCols availableColumns
	if c := firstChild(op); c != nil {
		childCols = v.validate(c)
	}
	for _, col := range op.OrderBy {
		col = strings.TrimSpace(col)
		upper := strings.ToUpper(col)
		if upper == "ASC" || upper == "DESC" || col == "" {
			continue
		}
		// strip a trailing ASC/DESC before checking column availability
		fields := strings.Fields(col)
		name := col
		if len(fields) > 1 {
			last := strings.ToUpper(fields[len(fields)-1])
			if last == "ASC" || last == "DESC" {
				name = strings.Join(fields[:len(fields)-1], " ")
			}
		}
		if !childCols.hasColumn(name) {
			v.errf("ORDER BY column '%s' is not available", name)
		}
	}
	return childCols
}

func (v *validator) validateSubquery(op *plan.Subquery) availableColumns {
	var inner availableColumns
	if c := firstChild(op); c != nil {
		inner = v.validate(c)
	}
	qualifier := op.EffectiveTableName()
	var out availableColumns
	for _, c := range inner {
		out = append(out, columnInfo{TableName: qualifier, ColumnName: c.ColumnName, DataType: c.DataType})
		out = append(out, columnInfo{TableName: "", ColumnName: c.ColumnName, DataType: c.DataType})
	}
	return out
}

func firstChild(n plan.Node) plan.Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}
