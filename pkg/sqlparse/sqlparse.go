// Package sqlparse implements the SQL parser (component A5): it turns a
// SQL SELECT statement into a pkg/plan operator tree, locating clause
// boundaries at the top level of the token stream (skipping over anything
// nested inside parentheses) so a subquery's own WHERE/GROUP BY/ORDER BY
// never gets mistaken for the outer query's.
//
// Grounded on original_source's SqlParser.java.
package sqlparse

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/darkcollective/relalg/pkg/plan"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

func newSubqueryID() string { return uuid.NewString() }

// splitTokensOnComma groups a flat token slice into one string per
// top-level comma-separated item, joining each item's tokens with a single
// space — e.g. ["department", ",", "age", "ASC"] becomes
// ["department", "age ASC"]. spec.md models GROUP BY/ORDER BY columns as
// one entry per comma-separated clause item (ORDER BY's direction travels
// with its column as a single "col ASC" string), unlike
// original_source's SqlParser, which appends every non-comma token as its
// own list entry.
func splitTokensOnComma(tokens []string) []string {
	var out []string
	var current []string
	for _, t := range tokens {
		if t == "," {
			if len(current) > 0 {
				out = append(out, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		out = append(out, strings.Join(current, " "))
	}
	return out
}

// ParsedQuery pairs a parsed plan tree with the original SQL text it came
// from (empty when the tree was built some other way, e.g. from
// parenthetical notation).
type ParsedQuery struct {
	Root        plan.Node
	OriginalSQL string
}

// ToTreeString renders the plan tree in its indented debug form.
func (q *ParsedQuery) ToTreeString() string { return q.Root.ToTreeString() }

// ToSQL reconstructs a SQL statement from the plan tree.
func (q *ParsedQuery) ToSQL() string { return q.Root.ToSQL() }

// Parse parses a SQL SELECT statement into a ParsedQuery.
func Parse(sql string) (*ParsedQuery, error) {
	normalized := strings.TrimSpace(whitespaceRE.ReplaceAllString(sql, " "))
	root, err := parseQuery(tokenize(normalized))
	if err != nil {
		return nil, err
	}
	return &ParsedQuery{Root: root, OriginalSQL: sql}, nil
}

// parseQuery is the core recursive-descent entry point: find every
// top-level clause boundary first, then build the operator tree bottom-up
// (FROM, then WHERE, then GROUP BY/HAVING, then ORDER BY, then the
// outermost Projection), each step wrapping the previous operator as its
// single child.
func parseQuery(tokens []string) (plan.Node, error) {
	selectIndex := findKeyword(tokens, "SELECT")
	fromIndex := findTopLevelKeyword(tokens, "FROM")
	whereIndex := findTopLevelKeyword(tokens, "WHERE")
	groupByIndex := findTopLevelKeywordSequence(tokens, "GROUP", "BY")
	havingIndex := findTopLevelKeyword(tokens, "HAVING")
	orderByIndex := findTopLevelKeywordSequence(tokens, "ORDER", "BY")

	var selectColumns []string
	var functionCalls []plan.FunctionCall
	var selectItems []plan.SelectItem
	distinct := false

	if selectIndex != -1 {
		start := selectIndex + 1
		if start < len(tokens) && strings.EqualFold(tokens[start], "DISTINCT") {
			distinct = true
			start++
		}
		end := len(tokens)
		if fromIndex != -1 {
			end = fromIndex
		}
		selectColumns, functionCalls, selectItems = parseSelectItems(tokens[start:end])
	}

	var fromOperator plan.Node
	if fromIndex != -1 {
		fromEnd := findFromClauseEnd(tokens, fromIndex, whereIndex, groupByIndex, orderByIndex)
		op, err := parseFromClause(tokens[fromIndex+1 : fromEnd])
		if err != nil {
			return nil, err
		}
		fromOperator = op
	}

	if whereIndex != -1 && fromOperator != nil {
		end := len(tokens)
		if groupByIndex != -1 {
			end = groupByIndex
		} else if orderByIndex != -1 {
			end = orderByIndex
		}
		whereCondition := reconstructExpression(strings.Join(tokens[whereIndex+1:end], " "))
		fromOperator = plan.NewSelection(whereCondition, fromOperator)
	}

	if groupByIndex != -1 && fromOperator != nil {
		start := groupByIndex + 2
		havingStart := len(tokens)
		if havingIndex != -1 {
			havingStart = havingIndex
		} else if orderByIndex != -1 {
			havingStart = orderByIndex
		}

		groupByColumns := splitTokensOnComma(tokens[start:havingStart])

		having := ""
		if havingIndex != -1 {
			havingEnd := len(tokens)
			if orderByIndex != -1 {
				havingEnd = orderByIndex
			}
			having = reconstructExpression(strings.Join(tokens[havingIndex+1:havingEnd], " "))
		}

		aggregateFuncs := extractAggregateCalls(functionCalls)
		fromOperator = plan.NewAggregation(groupByColumns, aggregateFuncs, having, fromOperator)
	}

	if orderByIndex != -1 && fromOperator != nil {
		orderByColumns := splitTokensOnComma(tokens[orderByIndex+2:])
		fromOperator = plan.NewSort(orderByColumns, fromOperator)
	}

	if len(selectColumns) > 0 && fromOperator != nil {
		projection := plan.NewProjection(selectColumns, distinct, fromOperator)
		projection.FunctionCalls = functionCalls
		projection.SelectItems = selectItems
		return projection, nil
	}

	if fromOperator != nil {
		return fromOperator, nil
	}
	if selectIndex != -1 {
		return nil, &ParseError{Msg: "missing FROM clause"}
	}
	return nil, &ParseError{Msg: "no SELECT found"}
}
