package expr

import (
	"strconv"
	"strings"

	"github.com/darkcollective/relalg/pkg/registry"
	"github.com/darkcollective/relalg/pkg/token"
)

// Parser implements the recursive-descent expression grammar, in
// precedence order lowest to highest: OR; AND; comparison (= != <> < > <=
// >= and LIKE); + -; * / %. This ordering matches the operator-search
// order of original_source's ExpressionTreeParser.findOperatorOutsideParentheses.
type Parser struct {
	toks []token.Token
	pos  int
}

// NewParser returns a Parser over toks. Callers pass the full token slice
// produced by lexer.Tokenize, including its terminating EOF token.
func NewParser(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses a complete expression and returns an error if trailing
// tokens remain.
func (p *Parser) Parse() (Expr, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, &ParseError{Pos: p.cur().Pos, Msg: "unexpected trailing token " + p.cur().String()}
	}
	return e, nil
}

func (p *Parser) cur() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return token.Token{Type: token.EOF}
}

func (p *Parser) atEnd() bool { return p.cur().Type == token.EOF }

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) isKeyword(word string) bool {
	t := p.cur()
	return t.Type == token.KEYWORD && t.Keyword == word
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("OR") {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Operator{Op: "OR", Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("AND") {
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Operator{Op: "AND", Left: left, Right: right}
	}
	return left, nil
}

var comparisonTokenOp = map[token.Type]string{
	token.EQ: "=", token.NEQ: "!=", token.LT: "<", token.GT: ">",
	token.LTE: "<=", token.GTE: ">=",
}

func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op, ok := comparisonTokenOp[p.cur().Type]; ok {
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &Operator{Op: op, Left: left, Right: right}, nil
	}
	if p.isKeyword("LIKE") {
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &Operator{Op: "LIKE", Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.PLUS || p.cur().Type == token.MINUS || p.cur().Type == token.CONCAT {
		opTok := p.advance()
		op := "+"
		switch opTok.Type {
		case token.MINUS:
			op = "-"
		case token.CONCAT:
			op = "||"
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Operator{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.STAR || p.cur().Type == token.SLASH || p.cur().Type == token.PCT {
		opTok := p.advance()
		op := "*"
		switch opTok.Type {
		case token.SLASH:
			op = "/"
		case token.PCT:
			op = "%"
		}
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &Operator{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case token.LPAREN:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.cur().Type != token.RPAREN {
			return nil, &ParseError{Pos: p.cur().Pos, Msg: "expected closing parenthesis"}
		}
		p.advance()
		return inner, nil
	case token.NUMBER:
		p.advance()
		if _, err := strconv.ParseFloat(tok.Literal, 64); err != nil {
			return nil, &ArgumentError{Msg: "invalid numeric literal: " + tok.Literal}
		}
		return NewNumericLiteral(tok.Literal), nil
	case token.STRING:
		p.advance()
		return NewStringLiteral(tok.Literal), nil
	case token.IDENT, token.QIDENT:
		return p.parseIdentOrCall()
	}
	return nil, &ParseError{Pos: tok.Pos, Msg: "unexpected token " + tok.String()}
}

// parseIdentOrCall handles the two productions that start with an
// identifier: a function call (NAME '(' args? ')') when the identifier is a
// registered function name immediately followed by '(', and a plain
// (optionally table-qualified) column reference otherwise — matching
// original_source's isFunctionCall dispatch in ExpressionTreeParser.
func (p *Parser) parseIdentOrCall() (Expr, error) {
	name := p.advance().Literal
	if p.cur().Type == token.LPAREN && registry.IsRegistered(name) {
		return p.parseCallArgs(name)
	}
	if p.cur().Type == token.DOT {
		p.advance()
		col := p.cur()
		if col.Type != token.IDENT && col.Type != token.QIDENT {
			return nil, &ParseError{Pos: col.Pos, Msg: "expected column name after '.'"}
		}
		p.advance()
		return &Column{TableName: name, ColumnName: col.Literal}, nil
	}
	return &Column{ColumnName: name}, nil
}

func (p *Parser) parseCallArgs(name string) (Expr, error) {
	p.advance() // consume '('
	var args []Expr
	if p.cur().Type != token.RPAREN {
		for {
			if p.cur().Type == token.STAR {
				p.advance()
				args = append(args, &Column{ColumnName: "*"})
			} else {
				arg, err := p.parseOr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
			if p.cur().Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if p.cur().Type != token.RPAREN {
		return nil, &ParseError{Pos: p.cur().Pos, Msg: "expected closing parenthesis in call to " + name}
	}
	p.advance()
	return &Function{Name: strings.ToUpper(name), Args: args, Category: registry.CategoryOf(name)}, nil
}
