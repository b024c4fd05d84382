package sqlparse

import (
	"regexp"
	"strings"

	"github.com/darkcollective/relalg/pkg/plan"
	"github.com/darkcollective/relalg/pkg/registry"
)

// extractFunctionCalls scans expression text for registered function names
// followed by a parenthesis, matching the closing paren and skipping
// matches that overlap one already found. This is the same fragile
// longest-name/strings.Index-based algorithm as pkg/validator's
// extractFunctionCalls — original_source duplicates this logic between
// SqlExpressionParser (used while parsing SELECT items) and the validator,
// and relalg preserves that duplication rather than inventing a shared
// dependency between the two packages.
func extractFunctionCalls(expression string) []plan.FunctionCall {
	var found []plan.FunctionCall
	if strings.TrimSpace(expression) == "" {
		return found
	}
	for _, name := range registry.Names() {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\s*\(`)
		for _, loc := range re.FindAllStringIndex(expression, -1) {
			openParen := strings.IndexByte(expression[loc[1]-1:], '(') + loc[1] - 1
			closeParen := matchingParen(expression, openParen)
			if closeParen < 0 {
				continue
			}
			fullMatch := expression[loc[0] : closeParen+1]
			if overlapsExisting(expression, found, fullMatch) {
				continue
			}
			argsText := expression[openParen+1 : closeParen]
			found = append(found, plan.FunctionCall{
				Name:               strings.ToUpper(name),
				Arguments:          splitArgs(argsText),
				Category:           registry.CategoryOf(name),
				OriginalExpression: fullMatch,
			})
		}
	}
	return found
}

func overlapsExisting(text string, found []plan.FunctionCall, candidate string) bool {
	candStart := strings.Index(text, candidate)
	candEnd := candStart + len(candidate)
	for _, f := range found {
		exStart := strings.Index(text, f.OriginalExpression)
		exEnd := exStart + len(f.OriginalExpression)
		if candStart < exEnd && exStart < candEnd {
			return true
		}
	}
	return false
}

func matchingParen(text string, open int) int {
	depth := 0
	inQuote := false
	for i := open; i < len(text); i++ {
		c := text[i]
		if inQuote {
			if c == '\'' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '\'':
			inQuote = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitArgs(s string) []string {
	var out []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if c == '\'' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '\'':
			inQuote = true
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if strings.TrimSpace(s) != "" {
		out = append(out, strings.TrimSpace(s[start:]))
	}
	return out
}

// extractAggregateCalls filters calls down to aggregate-category ones,
// matching original_source's extractAggregateFunctions.
func extractAggregateCalls(calls []plan.FunctionCall) []plan.FunctionCall {
	var out []plan.FunctionCall
	for _, c := range calls {
		if c.IsAggregate() {
			out = append(out, c)
		}
	}
	return out
}
