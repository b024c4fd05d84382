// Package plan implements the relational-algebra plan tree (component A4):
// a closed set of node variants — TableScan, Projection, Selection, Join,
// Aggregation, Sort, Subquery — each able to render itself back to SQL, to
// an indented tree string, and to the parenthetical notation component A6
// parses and prints. Grounded on original_source's RelationalOperator.java
// and RelationalOperators.java.
package plan

import "strings"

// Node is the closed variant set of the plan tree.
type Node interface {
	Children() []Node
	AddChild(n Node)
	ToSQL() string
	ToTreeString() string
	operatorName() string
	operatorParameters() string
}

// ToParenthetical renders n in the parenthetical grammar component A6
// parses: OPNAME(params, child1, child2, ...).
func ToParenthetical(n Node) string {
	var sb strings.Builder
	sb.WriteString(n.operatorName())
	sb.WriteString("(")
	params := n.operatorParameters()
	wroteParams := params != ""
	if wroteParams {
		sb.WriteString(params)
	}
	children := n.Children()
	for i, c := range children {
		if wroteParams || i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ToParenthetical(c))
	}
	sb.WriteString(")")
	return sb.String()
}

func indent(text string, level int) string {
	lines := strings.Split(text, "\n")
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(strings.Repeat("  ", level))
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// base implements child-list bookkeeping shared by every concrete operator.
type base struct {
	children []Node
}

func (b *base) Children() []Node { return b.children }
func (b *base) AddChild(n Node)  { b.children = append(b.children, n) }
func (b *base) firstChild() Node {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[0]
}
