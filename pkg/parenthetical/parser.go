package parenthetical

import (
	"strings"

	"github.com/google/uuid"

	"github.com/darkcollective/relalg/pkg/plan"
	"github.com/darkcollective/relalg/pkg/registry"
)

var operatorNames = map[string]bool{
	"TABLE_SCAN": true, "PROJECTION": true, "SELECTION": true,
	"INNER_JOIN": true, "LEFT_JOIN": true, "RIGHT_JOIN": true,
	"FULL_JOIN": true, "CROSS_JOIN": true,
	"AGGREGATION": true, "SORT": true, "SUBQUERY": true,
}

// Parser parses parenthetical notation text into a plan.Node tree.
type Parser struct {
	input string
	pos   int
}

// Parse parses expression into a plan tree.
func Parse(expression string) (plan.Node, error) {
	p := &Parser{input: expression}
	p.skipSpace()
	node, err := p.parseOperator()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, &ParseError{Offset: p.pos, Msg: "unexpected trailing text"}
	}
	return node, nil
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\n' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *Parser) readName() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '(' || c == ',' || c == ')' || c == ' ' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *Parser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return &ParseError{Offset: p.pos, Msg: "expected '" + string(c) + "'"}
	}
	p.pos++
	return nil
}

// parseOperator reads NAME ( params... ) and dispatches on NAME.
func (p *Parser) parseOperator() (plan.Node, error) {
	p.skipSpace()
	name := strings.ToUpper(p.readName())
	if err := p.expect('('); err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}

	switch name {
	case "TABLE_SCAN":
		return parseTableScan(params)
	case "PROJECTION":
		return parseProjection(params)
	case "SELECTION":
		return parseSelection(params)
	case "INNER_JOIN", "LEFT_JOIN", "RIGHT_JOIN", "FULL_JOIN", "CROSS_JOIN":
		return parseJoin(name, params)
	case "AGGREGATION":
		return parseAggregation(params)
	case "SORT":
		return parseSort(params)
	case "SUBQUERY":
		return parseSubquery(params)
	}
	return nil, &ParseError{Offset: p.pos, Msg: "unknown operator " + name}
}

// param is one top-level comma-separated slot inside an operator's
// parentheses: either literal text or a nested operator expression.
type param struct {
	text   string
	isNode bool
	node   plan.Node
}

// parseParameterList splits the operator's argument list on top-level
// commas (paren-depth aware), then classifies each slot as a nested
// operator expression (when its pre-paren text names a known operator) or
// a literal parameter.
func (p *Parser) parseParameterList() ([]param, error) {
	var params []param
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ')' {
		return params, nil
	}
	for {
		p.skipSpace()
		if p.isOperatorExpressionAhead() {
			node, err := p.parseOperator()
			if err != nil {
				return nil, err
			}
			params = append(params, param{isNode: true, node: node})
		} else {
			text, err := p.readLiteralParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param{text: text})
		}
		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	return params, nil
}

// isOperatorExpressionAhead peeks at the text up to the next '(' to see if
// it names a registered operator, without consuming input.
func (p *Parser) isOperatorExpressionAhead() bool {
	save := p.pos
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '(' {
			name := strings.ToUpper(strings.TrimSpace(p.input[start:p.pos]))
			p.pos = save
			return operatorNames[name]
		}
		if c == ',' || c == ')' {
			break
		}
		p.pos++
	}
	p.pos = save
	return false
}

// readLiteralParam reads a literal parameter up to the next top-level
// comma or closing paren, tracking nested parens (for literal text that
// itself contains a function call like COUNT(*)) and single quotes.
func (p *Parser) readLiteralParam() (string, error) {
	start := p.pos
	depth := 0
	inQuote := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if inQuote {
			if c == '\'' {
				inQuote = false
			}
			p.pos++
			continue
		}
		switch c {
		case '\'':
			inQuote = true
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return strings.TrimSpace(p.input[start:p.pos]), nil
			}
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(p.input[start:p.pos]), nil
			}
		}
		p.pos++
	}
	return strings.TrimSpace(p.input[start:p.pos]), nil
}

func splitCommaAware(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
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
	if start < len(s) {
		tail := strings.TrimSpace(s[start:])
		if tail != "" {
			out = append(out, tail)
		}
	}
	return out
}

func parseTableScan(params []param) (plan.Node, error) {
	if len(params) == 0 {
		return nil, &ParseError{Msg: "TABLE_SCAN requires a table name parameter"}
	}
	text := params[0].text
	if idx := strings.Index(strings.ToUpper(text), " AS "); idx >= 0 {
		name := strings.TrimSpace(text[:idx])
		alias := strings.TrimSpace(text[idx+4:])
		return plan.NewTableScan(name, alias), nil
	}
	return plan.NewTableScan(strings.TrimSpace(text), ""), nil
}

// parseProjection handles PROJECTION's parameter list: an optional leading
// DISTINCT marker, then a mix of plain column names and nested operator
// expressions, matching original_source's
// ParentheticalAlgebraParser.parseProjection.
func parseProjection(params []param) (plan.Node, error) {
	if len(params) == 0 {
		return nil, &ParseError{Msg: "PROJECTION requires at least one parameter"}
	}

	distinct := false
	start := 0
	if !params[0].isNode && strings.EqualFold(params[0].text, "DISTINCT") {
		distinct = true
		start = 1
	}

	var columns []string
	var children []plan.Node
	for _, p := range params[start:] {
		if p.isNode {
			children = append(children, p.node)
		} else if p.text != "" {
			columns = append(columns, p.text)
		}
	}

	var child plan.Node
	if len(children) > 0 {
		child = children[0]
	}
	proj := plan.NewProjection(columns, distinct, child)
	if len(children) > 1 {
		for _, extra := range children[1:] {
			proj.AddChild(extra)
		}
	}
	return proj, nil
}

func parseSelection(params []param) (plan.Node, error) {
	if len(params) < 2 || !params[len(params)-1].isNode {
		return nil, &ParseError{Msg: "SELECTION requires a condition and a child operator"}
	}
	condition := params[0].text
	return plan.NewSelection(condition, params[len(params)-1].node), nil
}

func parseJoin(opName string, params []param) (plan.Node, error) {
	var joinType plan.JoinType
	switch opName {
	case "INNER_JOIN":
		joinType = plan.InnerJoin
	case "LEFT_JOIN":
		joinType = plan.LeftJoin
	case "RIGHT_JOIN":
		joinType = plan.RightJoin
	case "FULL_JOIN":
		joinType = plan.FullJoin
	case "CROSS_JOIN":
		joinType = plan.CrossJoin
	}
	var nodes []plan.Node
	condition := ""
	for _, p := range params {
		if p.isNode {
			nodes = append(nodes, p.node)
		} else if p.text != "" {
			condition = p.text
		}
	}
	if len(nodes) != 2 {
		return nil, &ParseError{Msg: opName + " requires exactly two child operators"}
	}
	return plan.NewJoin(joinType, condition, nodes[0], nodes[1]), nil
}

func parseAggregation(params []param) (plan.Node, error) {
	var groupBy []string
	var aggregates []string
	having := ""
	var child plan.Node
	// The printer joins list entries with bare commas, so a GROUP_BY:/AGG:
	// list arrives split across several params; unprefixed params extend
	// the list most recently opened.
	last := ""
	for _, p := range params {
		if p.isNode {
			child = p.node
			continue
		}
		switch {
		case strings.HasPrefix(p.text, "GROUP_BY:"):
			groupBy = splitCommaAware(strings.TrimPrefix(p.text, "GROUP_BY:"))
			last = "GROUP_BY"
		case strings.HasPrefix(p.text, "AGG:"):
			aggregates = splitCommaAware(strings.TrimPrefix(p.text, "AGG:"))
			last = "AGG"
		case strings.HasPrefix(p.text, "HAVING:"):
			having = strings.TrimPrefix(p.text, "HAVING:")
			last = "HAVING"
		case last == "GROUP_BY":
			groupBy = append(groupBy, p.text)
		case last == "AGG":
			aggregates = append(aggregates, p.text)
		}
	}
	if child == nil {
		return nil, &ParseError{Msg: "AGGREGATION requires a child operator"}
	}
	calls := make([]plan.FunctionCall, 0, len(aggregates))
	for _, a := range aggregates {
		calls = append(calls, functionCallFromText(a))
	}
	return plan.NewAggregation(groupBy, calls, having, child), nil
}

func parseSort(params []param) (plan.Node, error) {
	var orderBy []string
	var child plan.Node
	for _, p := range params {
		if p.isNode {
			child = p.node
		} else if p.text != "" {
			orderBy = append(orderBy, splitCommaAware(p.text)...)
		}
	}
	if child == nil {
		return nil, &ParseError{Msg: "SORT requires a child operator"}
	}
	return plan.NewSort(orderBy, child), nil
}

func parseSubquery(params []param) (plan.Node, error) {
	subType := plan.SubqueryFrom
	alias := ""
	var child plan.Node
	for _, p := range params {
		if p.isNode {
			child = p.node
			continue
		}
		switch {
		case strings.HasPrefix(p.text, "TYPE:"):
			subType = plan.SubqueryType(strings.TrimPrefix(p.text, "TYPE:"))
		case strings.HasPrefix(p.text, "ALIAS:"):
			alias = strings.TrimPrefix(p.text, "ALIAS:")
		}
	}
	if child == nil {
		return nil, &ParseError{Msg: "SUBQUERY requires a child operator"}
	}
	return plan.NewSubquery(subType, alias, uuid.NewString(), child), nil
}

// functionCallFromText builds a plan.FunctionCall from a "NAME(args)"
// string, best-effort — used when reconstructing aggregate metadata from
// parenthetical notation alone.
func functionCallFromText(text string) plan.FunctionCall {
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return plan.FunctionCall{Name: text, OriginalExpression: text}
	}
	name := strings.ToUpper(strings.TrimSpace(text[:open]))
	argsText := text[open+1 : len(text)-1]
	var args []string
	if argsText != "" {
		args = splitCommaAware(argsText)
	}
	return plan.FunctionCall{
		Name:               name,
		Arguments:          args,
		Category:           registry.CategoryOf(name),
		OriginalExpression: text,
	}
}
