package sqlparse

import (
	"regexp"
	"strings"

	"github.com/darkcollective/relalg/pkg/plan"
)

var (
	reconstructFuncCall  = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_]*)\s*\(\s*`)
	reconstructCloseWord = regexp.MustCompile(`\s*\)\s*([^><=!\s])`)
	reconstructCloseEnd  = regexp.MustCompile(`\s*\)\s*$`)
	reconstructCloseOp   = regexp.MustCompile(`\s*\)\s*([><=!]+)`)
)

// reconstructExpression re-tightens the spacing a token-join introduces
// around function-call parentheses while leaving spacing around operators
// alone. Ported as an exact four-step regex chain from
// original_source's SqlParser.reconstructExpression, including its
// ordering: spec.md §9 documents this as deliberately preserved, fragile
// behavior rather than a simplification target, since later steps can
// re-match text the earlier steps rewrote.
func reconstructExpression(expression string) string {
	s := expression
	s = reconstructFuncCall.ReplaceAllString(s, "$1(")
	s = reconstructCloseWord.ReplaceAllString(s, ")$1")
	s = reconstructCloseEnd.ReplaceAllString(s, ")")
	s = reconstructCloseOp.ReplaceAllString(s, ") $1")
	return s
}

// parseAlias splits expression on an explicit " AS " separator only.
//
// original_source's SqlExpressionParser.parseAlias additionally guesses at
// an implicit alias from bare trailing-word heuristics ("name full_name"),
// which collides with ordinary multi-word conditions and function-call
// text in ways that depend on incidental whitespace. relalg requires an
// explicit AS, documented in spec.md §9 as an intentional deviation.
func parseAlias(expression string) (expr, alias string) {
	trimmed := strings.TrimSpace(expression)
	idx := strings.Index(strings.ToUpper(trimmed), " AS ")
	if idx < 0 {
		return trimmed, ""
	}
	expr = strings.TrimSpace(trimmed[:idx])
	alias = strings.TrimSpace(trimmed[idx+4:])
	alias = strings.Trim(alias, `"`+"`")
	return expr, alias
}

// parseSelectItem parses one SELECT-list entry into expression, alias and
// any function calls found in the expression (not the alias).
func parseSelectItem(item string) plan.SelectItem {
	expr, alias := parseAlias(strings.TrimSpace(item))
	return plan.SelectItem{
		Expression: expr,
		Alias:      alias,
		Functions:  extractFunctionCalls(expr),
	}
}

// parseSelectItems splits the SELECT clause's tokens on top-level commas
// (paren-depth aware, since a comma may separate function arguments),
// reconstructs each item's spacing, and parses it into a SelectItem. It
// returns the parallel lists the caller feeds into a Projection/Aggregation
// pair, grounded on original_source's SqlParser.parseSelectItems.
func parseSelectItems(tokens []string) (columns []string, functionCalls []plan.FunctionCall, items []plan.SelectItem) {
	var current strings.Builder
	depth := 0

	flush := func() {
		if current.Len() == 0 {
			return
		}
		item := reconstructExpression(strings.TrimSpace(current.String()))
		columns = append(columns, item)
		parsed := parseSelectItem(item)
		items = append(items, parsed)
		functionCalls = append(functionCalls, parsed.Functions...)
		current.Reset()
	}

	for _, tok := range tokens {
		depth += strings.Count(tok, "(")
		depth -= strings.Count(tok, ")")

		if tok == "," && depth == 0 {
			flush()
			continue
		}
		if current.Len() > 0 && tok != "(" && !strings.HasSuffix(current.String(), "(") {
			current.WriteByte(' ')
		}
		current.WriteString(tok)
	}
	flush()
	return columns, functionCalls, items
}
