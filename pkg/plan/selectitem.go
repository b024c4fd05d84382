package plan

import "github.com/darkcollective/relalg/pkg/registry"

// FunctionCall is a flattened record of a function call found while parsing
// a SELECT item or condition: its name, raw argument text, category and the
// original source text it was extracted from. Grounded on
// original_source's SqlFunctionCall.java — kept distinct from expr.Function
// (the expression-tree node) because plan nodes record function calls as
// flat metadata for reporting, not as a tree to evaluate.
type FunctionCall struct {
	Name               string
	Arguments          []string
	Category           registry.Category
	OriginalExpression string
}

// IsAggregate reports whether the call is to a registered aggregate function.
func (f FunctionCall) IsAggregate() bool { return f.Category == registry.Aggregate }

// IsString reports whether the call is to a registered string function.
func (f FunctionCall) IsString() bool { return f.Category == registry.String }

// IsNumeric reports whether the call is to a registered numeric function.
func (f FunctionCall) IsNumeric() bool { return f.Category == registry.Numeric }

// ToSQL reconstructs the call as "NAME(arg1,arg2)".
func (f FunctionCall) ToSQL() string {
	s := f.Name + "("
	for i, a := range f.Arguments {
		if i > 0 {
			s += ","
		}
		s += a
	}
	return s + ")"
}

// SelectItem is one projected expression in a SELECT list, with its
// optional alias and any function calls it contains. Grounded on
// original_source's SqlExpressionParser.SelectItem.
type SelectItem struct {
	Expression string
	Alias      string
	Functions  []FunctionCall
}

// HasAlias reports whether the item carries an explicit alias.
func (s SelectItem) HasAlias() bool { return s.Alias != "" }

// EffectiveName returns the alias if present, otherwise the raw expression
// text — the name this column is known by downstream (ORDER BY, outer
// queries, the validator).
func (s SelectItem) EffectiveName() string {
	if s.HasAlias() {
		return s.Alias
	}
	return s.Expression
}
