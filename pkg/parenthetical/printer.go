// Package parenthetical implements the parenthetical parser/printer
// (component A6): the OPNAME(params, children...) notation plan trees
// round-trip through. Grounded on original_source's
// ParentheticalAlgebraParser.java (parsing) and RelationalOperator.java's
// toParenthetical (printing).
package parenthetical

import "github.com/darkcollective/relalg/pkg/plan"

// Print renders n in parenthetical notation.
func Print(n plan.Node) string {
	return plan.ToParenthetical(n)
}
