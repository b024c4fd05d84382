package sqlparse

import (
	"strings"

	"github.com/darkcollective/relalg/pkg/plan"
	"github.com/darkcollective/relalg/pkg/token"
)

// containsSubquery reports whether tokens contains an opening parenthesis
// followed (within a couple tokens) by SELECT — original_source looks
// ahead up to 3 tokens to tolerate a stray token between "(" and SELECT.
func containsSubquery(tokens []string) bool {
	for i, t := range tokens {
		if t != "(" {
			continue
		}
		for j := i + 1; j < len(tokens) && j < i+3; j++ {
			if strings.EqualFold(tokens[j], "SELECT") {
				return true
			}
		}
	}
	return false
}

// parseFromClause builds the operator tree for a FROM clause: either a
// single subquery (possibly aliased) or a TableScan chained through zero
// or more Joins. Grounded on original_source's SqlParser.parseFromClause.
func parseFromClause(tokens []string) (plan.Node, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if containsSubquery(tokens) {
		return parseFromClauseWithSubquery(tokens)
	}

	var joinPositions []int
	for i, t := range tokens {
		if strings.EqualFold(t, "JOIN") {
			joinPositions = append(joinPositions, i)
		}
	}

	if len(joinPositions) == 0 {
		tableName := tokens[0]
		alias := ""
		if len(tokens) > 2 && strings.EqualFold(tokens[1], "AS") {
			alias = tokens[2]
		} else if len(tokens) > 1 && !strings.EqualFold(tokens[1], "AS") {
			alias = tokens[1]
		}
		return plan.NewTableScan(tableName, alias), nil
	}

	firstTable := tokens[0]
	firstAlias := ""
	firstTableEnd := 1
	if firstTableEnd < len(tokens) && strings.EqualFold(tokens[firstTableEnd], "AS") {
		firstTableEnd++
		if firstTableEnd < len(tokens) {
			firstAlias = tokens[firstTableEnd]
			firstTableEnd++
		}
	} else if firstTableEnd < len(tokens) && !token.IsJoinKeyword(tokens[firstTableEnd]) {
		firstAlias = tokens[firstTableEnd]
		firstTableEnd++
	}

	var current plan.Node = plan.NewTableScan(firstTable, firstAlias)

	for _, joinPos := range joinPositions {
		joinType := plan.InnerJoin
		if joinPos > 0 {
			switch strings.ToUpper(tokens[joinPos-1]) {
			case "LEFT":
				joinType = plan.LeftJoin
			case "RIGHT":
				joinType = plan.RightJoin
			case "FULL":
				joinType = plan.FullJoin
			case "CROSS":
				joinType = plan.CrossJoin
			case "INNER":
				joinType = plan.InnerJoin
			}
		}

		tableStart := joinPos + 1
		if tableStart >= len(tokens) {
			continue
		}
		joinTable := tokens[tableStart]
		joinAlias := ""
		tableEnd := tableStart + 1

		if tableEnd < len(tokens) && strings.EqualFold(tokens[tableEnd], "AS") {
			tableEnd++
			if tableEnd < len(tokens) {
				joinAlias = tokens[tableEnd]
				tableEnd++
			}
		} else if tableEnd < len(tokens) &&
			!strings.EqualFold(tokens[tableEnd], "ON") &&
			!token.IsJoinKeyword(tokens[tableEnd]) {
			joinAlias = tokens[tableEnd]
			tableEnd++
		}

		condition := ""
		onIndex := -1
		for i := tableEnd; i < len(tokens); i++ {
			if strings.EqualFold(tokens[i], "ON") {
				onIndex = i
				break
			}
		}
		if onIndex != -1 {
			conditionEnd := len(tokens)
			for i := onIndex + 1; i < len(tokens); i++ {
				if token.IsJoinKeyword(tokens[i]) {
					conditionEnd = i
					if i > 0 && token.IsJoinKeyword(tokens[i-1]) && strings.EqualFold(tokens[i], "JOIN") {
						conditionEnd = i - 1
					}
					break
				}
			}
			if onIndex+1 < conditionEnd {
				condition = strings.Join(tokens[onIndex+1:conditionEnd], " ")
			}
		}

		join := plan.NewJoin(joinType, condition, current, plan.NewTableScan(joinTable, joinAlias))
		current = join
	}

	return current, nil
}

// parseFromClauseWithSubquery locates a parenthesized "(SELECT ...)"
// subquery inside the FROM clause's tokens, recursively parses its inner
// query, and wraps it in a plan.Subquery tagged SubqueryFrom.
func parseFromClauseWithSubquery(tokens []string) (plan.Node, error) {
	startParen, endParen := -1, -1
	depth := 0

	for i, t := range tokens {
		if t != "(" {
			continue
		}
		for j := i + 1; j < len(tokens) && j < i+5; j++ {
			if strings.EqualFold(tokens[j], "SELECT") {
				startParen = i
				depth = 1
				break
			}
		}
		if startParen != -1 {
			break
		}
	}
	if startParen == -1 {
		return nil, &ParseError{Msg: "invalid subquery syntax in FROM clause: no SELECT found after opening parenthesis"}
	}

	for i := startParen + 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				endParen = i
			}
		}
		if endParen != -1 {
			break
		}
	}
	if endParen == -1 {
		return nil, &ParseError{Msg: "invalid subquery syntax in FROM clause: missing closing parenthesis"}
	}

	innerTokens := tokens[startParen+1 : endParen]
	innerSQL := strings.Join(innerTokens, " ")
	inner, err := parseQuery(tokenize(innerSQL))
	if err != nil {
		return nil, err
	}

	alias := ""
	if endParen+1 < len(tokens) {
		next := tokens[endParen+1]
		if strings.EqualFold(next, "AS") && endParen+2 < len(tokens) {
			alias = tokens[endParen+2]
		} else if !token.IsJoinKeyword(next) && !isSQLKeyword(next) {
			alias = next
		}
	}

	return plan.NewSubquery(plan.SubqueryFrom, alias, newSubqueryID(), inner), nil
}

func isSQLKeyword(word string) bool {
	_, ok := token.Lookup(word)
	return ok
}
