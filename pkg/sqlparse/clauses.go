package sqlparse

import "strings"

// findKeyword returns the index of the first token equal to keyword
// (case-insensitive), or -1.
func findKeyword(tokens []string, keyword string) int {
	for i, t := range tokens {
		if strings.EqualFold(t, keyword) {
			return i
		}
	}
	return -1
}

// findTopLevelKeyword is like findKeyword but skips matches inside
// parentheses (subqueries), matching original_source's findTopLevelKeyword.
func findTopLevelKeyword(tokens []string, keyword string) int {
	depth := 0
	for i, t := range tokens {
		switch t {
		case "(":
			depth++
		case ")":
			depth--
		default:
			if depth == 0 && strings.EqualFold(t, keyword) {
				return i
			}
		}
	}
	return -1
}

// findTopLevelKeywordSequence finds a two-token keyword sequence (e.g.
// "GROUP BY", "ORDER BY") at paren depth 0.
func findTopLevelKeywordSequence(tokens []string, first, second string) int {
	depth := 0
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "(":
			depth++
		case ")":
			depth--
		default:
			if depth == 0 && strings.EqualFold(tokens[i], first) &&
				i+1 < len(tokens) && strings.EqualFold(tokens[i+1], second) {
				return i
			}
		}
	}
	return -1
}

// findFromClauseEnd walks forward from just after FROM, tracking paren
// depth, and returns the index of whichever top-level clause keyword
// (WHERE/GROUP/ORDER) comes first, or len(tokens) if none does. Tracking
// depth here (rather than just taking the pre-computed index) is what lets
// a FROM clause contain a parenthesized subquery with its own WHERE/GROUP
// BY/ORDER BY.
func findFromClauseEnd(tokens []string, fromIndex, whereIndex, groupByIndex, orderByIndex int) int {
	depth := 0
	for i := fromIndex + 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "(":
			depth++
		case ")":
			depth--
		default:
			if depth == 0 {
				if (i == whereIndex) || (i == groupByIndex) || (i == orderByIndex) {
					return i
				}
			}
		}
	}
	return len(tokens)
}
