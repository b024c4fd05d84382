package validator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/darkcollective/relalg/pkg/plan"
	"github.com/darkcollective/relalg/pkg/registry"
	"github.com/darkcollective/relalg/pkg/token"
)

// extractFunctionCalls scans already-serialized condition/expression text
// for occurrences of registered function names followed by a parenthesis,
// matching each call's closing paren (quote-aware) and skipping any match
// that overlaps one already found.
//
// This is a deliberate, documented preservation of
// original_source's SqlExpressionParser.extractFunctionCalls, including its
// fragility: overlap detection re-locates each already-found call by its
// first occurrence via strings.Index, which can misidentify the match when
// the same function-call substring appears more than once in the text.
// spec.md §9 calls this out as "ambiguous source behavior" and only asks
// for it to be preserved for behavioral fidelity where the validator must
// operate over flattened text; the real expression parser (pkg/expr) is a
// token-based recursive-descent parser with no such ambiguity.
func extractFunctionCalls(text string) []plan.FunctionCall {
	var found []plan.FunctionCall
	for _, name := range registry.Names() {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\s*\(`)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			openParen := strings.IndexByte(text[loc[1]-1:], '(') + loc[1] - 1
			closeParen := matchingParen(text, openParen)
			if closeParen < 0 {
				continue
			}
			fullMatch := text[loc[0] : closeParen+1]
			if overlapsExisting(text, found, fullMatch) {
				continue
			}
			argsText := text[openParen+1 : closeParen]
			args := splitArgs(argsText)
			found = append(found, plan.FunctionCall{
				Name:               strings.ToUpper(name),
				Arguments:          args,
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

var numericLiteralRE = regexp.MustCompile(`^\d+(\.\d+)?$`)

// isLiteralOrKeyword reports whether tok (an identifier-shaped token found
// while scanning condition text for unresolved columns) is actually a
// numeric literal, a quoted string literal, or a reserved keyword —
// matching original_source's isLiteralOrKeyword, using the single
// canonical keyword list (see pkg/token.Keywords and SPEC_FULL.md).
func isLiteralOrKeyword(tok string) bool {
	if numericLiteralRE.MatchString(tok) {
		return true
	}
	if strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'") {
		return true
	}
	if _, ok := token.Lookup(tok); ok {
		return true
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return true
	}
	return false
}

var columnRefRE = regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)?)\b`)

// removeStringLiterals replaces the content of single- and double-quoted
// spans with spaces (preserving length/boundaries) so a later regex scan
// for identifiers doesn't mistake literal content for a column reference.
// Ported from original_source's char-by-char quote tracking, which tracks
// each quote kind independently so a quote of one kind inside a span of the
// other is not treated as a delimiter.
func removeStringLiterals(s string) string {
	var sb strings.Builder
	inSingle, inDouble := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inSingle:
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					sb.WriteByte(' ')
					i++
					sb.WriteByte(' ')
					continue
				}
				inSingle = false
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(' ')
			}
		case inDouble:
			if c == '"' {
				inDouble = false
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(' ')
			}
		case c == '\'':
			inSingle = true
			sb.WriteByte(' ')
		case c == '"':
			inDouble = true
			sb.WriteByte(' ')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// findUnresolvedColumns scans condition text for identifier-shaped tokens
// that are not literals/keywords and are not present in cols, after first
// replacing any known function-call substrings with a neutral placeholder
// (so their argument text, and the function name itself, is never mistaken
// for a bare column reference) and then removing string literal spans.
func findUnresolvedColumns(conditionText string, calls []plan.FunctionCall, cols availableColumns) []string {
	scrubbed := conditionText
	for _, f := range calls {
		scrubbed = strings.Replace(scrubbed, f.OriginalExpression, "FUNC_PLACEHOLDER", 1)
	}
	scrubbed = removeStringLiterals(scrubbed)
	var unresolved []string
	seen := map[string]bool{}
	for _, m := range columnRefRE.FindAllString(scrubbed, -1) {
		if m == "FUNC_PLACEHOLDER" || isLiteralOrKeyword(m) {
			continue
		}
		if cols.hasColumn(m) {
			continue
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		unresolved = append(unresolved, m)
	}
	return unresolved
}
