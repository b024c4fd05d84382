// Package expr implements the expression tree (part of component A4's data
// model) and the expression parser (component A3): a small recursive-
// descent parser that turns a token stream into a tree of Literal, Column,
// Operator and Function nodes, each carrying inferred data types.
//
// The type-inference and argument-validation rules are grounded on
// original_source's OperatorNode.java and FunctionNode.java. Where the Java
// original's two type-inference methods (getDataType vs inferDataType)
// disagreed for NUMERIC-category functions, relalg follows getDataType's
// first-argument-aware rule; see DESIGN.md.
package expr

import (
	"github.com/darkcollective/relalg/pkg/registry"
	"github.com/darkcollective/relalg/pkg/schema"
)

// Expr is the closed variant set of the expression tree: Literal, Column,
// Operator or Function. Every Expr knows its own inferred DataType;
// Operator and Function also validate their operand/argument types
// (ValidateTypes, ValidateArguments).
type Expr interface {
	exprNode()
	// DataType returns the inferred SQL type of this expression, or ""
	// when the type cannot be determined (e.g. an operator applied to
	// incompatible operand types).
	DataType() schema.DataType
	// Original returns the source text this node was parsed from.
	Original() string
}

// LiteralKind distinguishes numeric from string literals.
type LiteralKind int

const (
	NumericLiteral LiteralKind = iota
	StringLiteral
)

// Literal is a constant value in an expression.
type Literal struct {
	Kind     LiteralKind
	Value    string // original textual form
	original string
}

func (*Literal) exprNode() {}

// DataType returns DECIMAL for numeric literals containing a '.', INTEGER
// for numeric literals without one, and VARCHAR for string literals —
// matching original_source's LiteralNode.createNumeric/createString.
func (l *Literal) DataType() schema.DataType {
	if l.Kind == StringLiteral {
		return schema.Varchar
	}
	for _, r := range l.Value {
		if r == '.' {
			return schema.Decimal
		}
	}
	return schema.Integer
}

func (l *Literal) Original() string { return l.original }

// NewNumericLiteral builds a Literal from numeric text. The caller is
// expected to have already validated it parses as a number (the parser
// does this; see Parser.parsePrimary).
func NewNumericLiteral(text string) *Literal {
	return &Literal{Kind: NumericLiteral, Value: text, original: text}
}

// NewStringLiteral builds a Literal from string content already stripped
// of its surrounding quotes.
func NewStringLiteral(content string) *Literal {
	return &Literal{Kind: StringLiteral, Value: content, original: "'" + content + "'"}
}

// Column is a (possibly table-qualified) column reference.
type Column struct {
	TableName  string // empty when unqualified
	ColumnName string
	Type       schema.DataType // resolved by the caller (validator/parser); VARCHAR default
}

func (*Column) exprNode() {}

func (c *Column) DataType() schema.DataType {
	if c.Type == "" {
		return schema.Varchar
	}
	return c.Type
}

func (c *Column) Original() string {
	if c.TableName != "" {
		return c.TableName + "." + c.ColumnName
	}
	return c.ColumnName
}

var (
	numericOperators    = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
	stringOperators     = map[string]bool{"||": true}
	comparisonOperators = map[string]bool{"=": true, "!=": true, "<>": true, "<": true, ">": true, "<=": true, ">=": true}
	logicalOperators    = map[string]bool{"AND": true, "OR": true}
)

// Operator is a binary operation over two sub-expressions.
type Operator struct {
	Op          string
	Left, Right Expr
}

func (*Operator) exprNode() {}

// DataType implements original_source's OperatorNode.getDataType: comparison
// operators always yield BOOLEAN; '+' and '||' yield VARCHAR when both
// operands are string-typed, a numeric result type when both are numeric,
// and "" (invalid) otherwise; the remaining numeric operators require both
// operands numeric and yield a numeric result type; anything else defaults
// to VARCHAR.
func (o *Operator) DataType() schema.DataType {
	if comparisonOperators[o.Op] {
		return schema.Boolean
	}
	if logicalOperators[o.Op] {
		return schema.Boolean
	}
	leftT, rightT := o.Left.DataType(), o.Right.DataType()

	if o.Op == "+" || o.Op == "||" {
		if leftT.IsString() && rightT.IsString() {
			return schema.Varchar
		}
		if leftT.IsNumeric() && rightT.IsNumeric() {
			return numericResultType(leftT, rightT)
		}
		return ""
	}
	if numericOperators[o.Op] {
		if leftT.IsNumeric() && rightT.IsNumeric() {
			return numericResultType(leftT, rightT)
		}
		return ""
	}
	return schema.Varchar
}

func numericResultType(a, b schema.DataType) schema.DataType {
	if a == schema.Decimal || b == schema.Decimal {
		return schema.Decimal
	}
	return schema.Integer
}

func (o *Operator) Original() string {
	return o.Left.Original() + " " + o.Op + " " + o.Right.Original()
}

// ValidateTypes recursively validates operand types, matching
// original_source's OperatorNode.validateTypes: '+' allows all-numeric or
// all-string operands, '||' requires all-string, every other numeric
// operator requires all-numeric, and comparison/logical operators impose no
// operand-type constraint.
func (o *Operator) ValidateTypes() bool {
	if lv, ok := o.Left.(*Operator); ok && !lv.ValidateTypes() {
		return false
	}
	if rv, ok := o.Right.(*Operator); ok && !rv.ValidateTypes() {
		return false
	}
	leftT, rightT := o.Left.DataType(), o.Right.DataType()
	switch {
	case o.Op == "+":
		return (leftT.IsNumeric() && rightT.IsNumeric()) || (leftT.IsString() && rightT.IsString())
	case o.Op == "||":
		return leftT.IsString() && rightT.IsString()
	case numericOperators[o.Op]:
		return leftT.IsNumeric() && rightT.IsNumeric()
	default:
		return true
	}
}

// Function is a call to a registered SQL function.
type Function struct {
	Name     string
	Args     []Expr
	Category registry.Category
}

func (*Function) exprNode() {}

// DataType implements original_source's FunctionNode.getDataType.
func (f *Function) DataType() schema.DataType {
	switch f.Category {
	case registry.Aggregate:
		switch f.Name {
		case "COUNT":
			return schema.Integer
		case "SUM", "AVG", "MIN", "MAX":
			if len(f.Args) > 0 && f.Args[0].DataType().IsNumeric() {
				return f.Args[0].DataType()
			}
			return schema.Decimal
		default:
			return schema.Decimal
		}
	case registry.String:
		if f.Name == "LENGTH" || f.Name == "LEN" {
			return schema.Integer
		}
		return schema.Varchar
	case registry.Numeric:
		if len(f.Args) > 0 {
			if t := f.Args[0].DataType(); t == schema.Integer || t == schema.Decimal {
				return t
			}
		}
		return schema.Decimal
	case registry.Date:
		return schema.Timestamp
	default:
		return schema.Varchar
	}
}

func (f *Function) Original() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.Original()
	}
	s := f.Name + "("
	for i, p := range parts {
		if i > 0 {
			s += ", "
		}
		s += p
	}
	return s + ")"
}

// ValidateArguments implements original_source's
// FunctionNode.validateFunctionArguments: STRING-category functions require
// every argument to have a character data type, NUMERIC-category functions
// require every argument to have a numeric data type, and AGGREGATE/DATE/
// CONDITIONAL functions impose no argument-type constraint.
func (f *Function) ValidateArguments() bool {
	switch f.Category {
	case registry.String:
		for _, a := range f.Args {
			if !a.DataType().IsString() {
				return false
			}
		}
	case registry.Numeric:
		for _, a := range f.Args {
			if !a.DataType().IsNumeric() {
				return false
			}
		}
	}
	return true
}
