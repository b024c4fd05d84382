// Package schema holds the database schema model the validator (A7) checks
// plans against, grounded on original_source's Schema.java.
package schema

import "strings"

// DataType is the closed set of column types relalg understands, matching
// original_source's Schema.DataType enum.
type DataType string

const (
	Integer   DataType = "INTEGER"
	BigInt    DataType = "BIGINT"
	Decimal   DataType = "DECIMAL"
	Float     DataType = "FLOAT"
	Double    DataType = "DOUBLE"
	Varchar   DataType = "VARCHAR"
	Char      DataType = "CHAR"
	Text      DataType = "TEXT"
	Date      DataType = "DATE"
	Time      DataType = "TIME"
	Timestamp DataType = "TIMESTAMP"
	Boolean   DataType = "BOOLEAN"
	Blob      DataType = "BLOB"
	Clob      DataType = "CLOB"
)

// IsNumeric reports whether d is one of the numeric data types.
func (d DataType) IsNumeric() bool {
	switch d {
	case Integer, BigInt, Decimal, Float, Double:
		return true
	}
	return false
}

// IsString reports whether d is one of the character data types.
func (d DataType) IsString() bool {
	switch d {
	case Varchar, Char, Text:
		return true
	}
	return false
}

// Column describes a single table column.
type Column struct {
	Name       string
	DataType   DataType
	Nullable   bool
	PrimaryKey bool
}

// Table is a case-insensitively addressed set of columns.
type Table struct {
	Name    string
	columns map[string]Column
	order   []string
}

// NewTable returns an empty table named name.
func NewTable(name string) *Table {
	return &Table{Name: name, columns: make(map[string]Column)}
}

// AddColumn registers col on the table, case-folding its name for lookup.
func (t *Table) AddColumn(col Column) {
	key := strings.ToLower(col.Name)
	if _, exists := t.columns[key]; !exists {
		t.order = append(t.order, key)
	}
	t.columns[key] = col
}

// Column looks up a column by name, case-insensitively.
func (t *Table) Column(name string) (Column, bool) {
	c, ok := t.columns[strings.ToLower(name)]
	return c, ok
}

// HasColumn reports whether name (case-insensitive) exists on the table.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[strings.ToLower(name)]
	return ok
}

// Columns returns the table's columns in the order they were added.
func (t *Table) Columns() []Column {
	out := make([]Column, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.columns[key])
	}
	return out
}

// Schema is a case-insensitively addressed set of tables.
type Schema struct {
	tables map[string]*Table
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{tables: make(map[string]*Table)}
}

// AddTable registers t on the schema, case-folding its name for lookup.
func (s *Schema) AddTable(t *Table) {
	s.tables[strings.ToLower(t.Name)] = t
}

// Table looks up a table by name, case-insensitively.
func (s *Schema) Table(name string) (*Table, bool) {
	t, ok := s.tables[strings.ToLower(name)]
	return t, ok
}

// HasTable reports whether name (case-insensitive) exists in the schema.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.tables[strings.ToLower(name)]
	return ok
}
