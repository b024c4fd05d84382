package plan

import "strings"

// TableScan is a leaf operator reading directly from a named table.
type TableScan struct {
	base
	TableName string
	Alias     string
}

func NewTableScan(tableName, alias string) *TableScan {
	return &TableScan{TableName: tableName, Alias: alias}
}

func (t *TableScan) operatorName() string { return "TABLE_SCAN" }

func (t *TableScan) operatorParameters() string {
	if t.Alias != "" {
		return t.TableName + " AS " + t.Alias
	}
	return t.TableName
}

func (t *TableScan) ToSQL() string {
	if t.Alias != "" {
		return t.TableName + " AS " + t.Alias
	}
	return t.TableName
}

func (t *TableScan) ToTreeString() string {
	return "TABLE_SCAN(" + t.operatorParameters() + ")"
}

// EffectiveName is the alias if present, else the table name.
func (t *TableScan) EffectiveName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.TableName
}

// Selection is a WHERE filter over its single child.
type Selection struct {
	base
	Condition string
}

func NewSelection(condition string, child Node) *Selection {
	s := &Selection{Condition: condition}
	s.AddChild(child)
	return s
}

func (s *Selection) operatorName() string       { return "SELECTION" }
func (s *Selection) operatorParameters() string { return s.Condition }

func (s *Selection) ToSQL() string {
	if c := s.firstChild(); c != nil {
		return c.ToSQL() + " WHERE " + s.Condition
	}
	return "WHERE " + s.Condition
}

func (s *Selection) ToTreeString() string {
	var sb strings.Builder
	sb.WriteString("SELECTION(" + s.Condition + ")\n")
	if c := s.firstChild(); c != nil {
		sb.WriteString(indent(c.ToTreeString(), 1))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// JoinType is the closed set of SQL join kinds relalg represents.
type JoinType string

const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	FullJoin  JoinType = "FULL"
	CrossJoin JoinType = "CROSS"
)

// Join combines exactly two children on an optional condition.
type Join struct {
	base
	Type      JoinType
	Condition string // empty for CROSS JOIN
}

func NewJoin(joinType JoinType, condition string, left, right Node) *Join {
	j := &Join{Type: joinType, Condition: condition}
	j.AddChild(left)
	j.AddChild(right)
	return j
}

func (j *Join) operatorName() string       { return string(j.Type) + "_JOIN" }
func (j *Join) operatorParameters() string { return j.Condition }

func (j *Join) ToSQL() string {
	if len(j.children) != 2 {
		return ""
	}
	sql := j.children[0].ToSQL() + " JOIN " + j.children[1].ToSQL()
	if j.Condition != "" {
		sql += " ON " + j.Condition
	}
	return sql
}

func (j *Join) ToTreeString() string {
	var sb strings.Builder
	sb.WriteString(j.operatorName())
	if j.Condition != "" {
		sb.WriteString("(" + j.Condition + ")")
	} else {
		sb.WriteString("()")
	}
	sb.WriteString("\n")
	for _, c := range j.children {
		sb.WriteString(indent(c.ToTreeString(), 1) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Aggregation groups its child by GROUP BY columns, computing aggregate
// functions, with an optional HAVING condition.
type Aggregation struct {
	base
	GroupBy         []string
	AggregateFuncs  []FunctionCall
	HavingCondition string
}

func NewAggregation(groupBy []string, aggregates []FunctionCall, having string, child Node) *Aggregation {
	a := &Aggregation{GroupBy: groupBy, AggregateFuncs: aggregates, HavingCondition: having}
	a.AddChild(child)
	return a
}

func (a *Aggregation) operatorName() string { return "AGGREGATION" }

func (a *Aggregation) operatorParameters() string {
	var parts []string
	if len(a.GroupBy) > 0 {
		parts = append(parts, "GROUP_BY:"+strings.Join(a.GroupBy, ","))
	}
	if len(a.AggregateFuncs) > 0 {
		names := make([]string, len(a.AggregateFuncs))
		for i, f := range a.AggregateFuncs {
			names[i] = f.ToSQL()
		}
		parts = append(parts, "AGG:"+strings.Join(names, ","))
	}
	if a.HavingCondition != "" {
		parts = append(parts, "HAVING:"+a.HavingCondition)
	}
	return strings.Join(parts, ", ")
}

func (a *Aggregation) ToSQL() string {
	sql := ""
	if c := a.firstChild(); c != nil {
		sql = c.ToSQL()
	}
	if len(a.GroupBy) > 0 {
		sql += " GROUP BY " + strings.Join(a.GroupBy, ", ")
	}
	if a.HavingCondition != "" {
		sql += " HAVING " + a.HavingCondition
	}
	return sql
}

func (a *Aggregation) ToTreeString() string {
	var sb strings.Builder
	sb.WriteString("AGGREGATION(" + a.operatorParameters() + ")\n")
	if c := a.firstChild(); c != nil {
		sb.WriteString(indent(c.ToTreeString(), 1))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Sort orders its child's rows by the given ORDER BY column expressions
// (each including any trailing ASC/DESC).
type Sort struct {
	base
	OrderBy []string
}

func NewSort(orderBy []string, child Node) *Sort {
	s := &Sort{OrderBy: orderBy}
	s.AddChild(child)
	return s
}

func (s *Sort) operatorName() string       { return "SORT" }
func (s *Sort) operatorParameters() string { return strings.Join(s.OrderBy, ", ") }

func (s *Sort) ToSQL() string {
	sql := ""
	if c := s.firstChild(); c != nil {
		sql = c.ToSQL()
	}
	if len(s.OrderBy) > 0 {
		sql += " ORDER BY " + strings.Join(s.OrderBy, ", ")
	}
	return sql
}

func (s *Sort) ToTreeString() string {
	var sb strings.Builder
	sb.WriteString("SORT(" + s.operatorParameters() + ")\n")
	if c := s.firstChild(); c != nil {
		sb.WriteString(indent(c.ToTreeString(), 1))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Projection is the root-most operator of a SELECT: it chooses output
// columns (optionally DISTINCT and/or aliased) over its single child.
//
// ToSQL always renders "SELECT ... FROM <child>", trusting the child to
// either be a table/join (which legitimately follows FROM) or to have
// already rendered its own FROM clause internally — original_source's
// ProjectionOperator.toSql only emitted "FROM" when the child was literally
// a TableScanOperator, which breaks for the common case of a child chain
// like Selection->TableScan; relalg's unconditional rule is the one
// spec.md's prose describes, and the one that actually composes.
type Projection struct {
	base
	Columns       []string
	Distinct      bool
	FunctionCalls []FunctionCall
	SelectItems   []SelectItem
}

func NewProjection(columns []string, distinct bool, child Node) *Projection {
	p := &Projection{Columns: columns, Distinct: distinct}
	p.AddChild(child)
	return p
}

func (p *Projection) operatorName() string { return "PROJECTION" }

func (p *Projection) columnsWithAliases() []string {
	if len(p.SelectItems) == 0 {
		return p.Columns
	}
	out := make([]string, len(p.SelectItems))
	for i, item := range p.SelectItems {
		if item.HasAlias() {
			out[i] = item.Expression + " AS " + item.Alias
		} else {
			out[i] = item.Expression
		}
	}
	return out
}

func (p *Projection) hasAliases() bool {
	for _, item := range p.SelectItems {
		if item.HasAlias() {
			return true
		}
	}
	return false
}

func (p *Projection) operatorParameters() string {
	var sb strings.Builder
	if p.Distinct {
		sb.WriteString("DISTINCT, ")
	}
	if p.hasAliases() {
		sb.WriteString(strings.Join(p.columnsWithAliases(), ", "))
	} else {
		sb.WriteString(strings.Join(p.Columns, ", "))
	}
	return sb.String()
}

func (p *Projection) ToSQL() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if p.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if p.hasAliases() {
		sb.WriteString(strings.Join(p.columnsWithAliases(), ", "))
	} else {
		sb.WriteString(strings.Join(p.Columns, ", "))
	}
	if c := p.firstChild(); c != nil {
		sb.WriteString(" FROM ")
		sb.WriteString(c.ToSQL())
	}
	return sb.String()
}

func (p *Projection) ToTreeString() string {
	var sb strings.Builder
	sb.WriteString("PROJECTION(")
	if p.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if p.hasAliases() {
		sb.WriteString(strings.Join(p.columnsWithAliases(), ", "))
	} else {
		sb.WriteString(strings.Join(p.Columns, ", "))
	}
	sb.WriteString(")")
	if len(p.FunctionCalls) > 0 {
		names := make([]string, len(p.FunctionCalls))
		for i, f := range p.FunctionCalls {
			names[i] = f.ToSQL()
		}
		sb.WriteString("\nFUNCTIONS: " + strings.Join(names, ", "))
	}
	sb.WriteString("\n")
	if c := p.firstChild(); c != nil {
		sb.WriteString(indent(c.ToTreeString(), 1))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// SubqueryType is the closed set of contexts a Subquery operator appears in.
type SubqueryType string

const (
	SubqueryFrom         SubqueryType = "FROM"
	SubqueryWhereExists  SubqueryType = "EXISTS"
	SubqueryWhereIn      SubqueryType = "IN"
	SubqueryWhereNotIn   SubqueryType = "NOT_IN"
	SubqueryWhereScalar  SubqueryType = "SCALAR"
	SubquerySelectScalar SubqueryType = "SELECT_SCALAR"
)

// Subquery wraps a nested plan, optionally aliased, tagged with the clause
// context it was found in.
type Subquery struct {
	base
	Type  SubqueryType
	Alias string
	id    string // fallback synthetic name when Alias == ""
}

// NewSubquery wraps inner. id is used to derive a synthetic
// "subquery_<id>" effective table name when no alias is given — relalg
// uses a caller-supplied id (typically a uuid) in place of
// original_source's JVM-specific System.identityHashCode.
func NewSubquery(subType SubqueryType, alias, id string, inner Node) *Subquery {
	s := &Subquery{Type: subType, Alias: alias, id: id}
	s.AddChild(inner)
	return s
}

func (s *Subquery) operatorName() string { return "SUBQUERY" }

func (s *Subquery) operatorParameters() string {
	parts := []string{"TYPE:" + string(s.Type)}
	if s.Alias != "" {
		parts = append(parts, "ALIAS:"+s.Alias)
	}
	return strings.Join(parts, ", ")
}

// EffectiveTableName returns Alias if set, else "subquery_<id>".
func (s *Subquery) EffectiveTableName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return "subquery_" + s.id
}

func (s *Subquery) ToSQL() string {
	sql := "("
	if c := s.firstChild(); c != nil {
		sql += c.ToSQL()
	}
	sql += ")"
	if s.Alias != "" {
		sql += " AS " + s.Alias
	}
	return sql
}

func (s *Subquery) ToTreeString() string {
	var sb strings.Builder
	sb.WriteString("SUBQUERY(" + s.operatorParameters() + ")\n")
	if c := s.firstChild(); c != nil {
		sb.WriteString(indent(c.ToTreeString(), 1))
	}
	return strings.TrimRight(sb.String(), "\n")
}
