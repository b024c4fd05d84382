package validator

import "strings"

import "github.com/darkcollective/relalg/pkg/schema"

// columnInfo is one column registered in a validation context: its
// qualifying table (empty when registered unqualified), name and type.
// Grounded on original_source's RelationalAlgebraValidator.ColumnInfo.
type columnInfo struct {
	TableName  string
	ColumnName string
	DataType   schema.DataType
}

// availableColumns is the set of columns visible at a point in the plan
// tree, flowing bottom-up (post-order) as the validator walks the tree.
type availableColumns []columnInfo

// hasColumn implements original_source's hasColumn: a dot-qualified
// reference requires an exact table match (case-insensitive); an
// unqualified reference matches any registered column by name, including
// ones that also carry a table qualifier (every TableScan column is
// registered both ways, which is what makes unqualified lookups work at
// all after a join).
func (cols availableColumns) hasColumn(ref string) bool {
	table, column, qualified := splitQualified(ref)
	for _, c := range cols {
		if qualified {
			if strings.EqualFold(c.TableName, table) && strings.EqualFold(c.ColumnName, column) {
				return true
			}
			continue
		}
		if strings.EqualFold(c.ColumnName, ref) {
			return true
		}
	}
	return false
}

func (cols availableColumns) lookup(ref string) (columnInfo, bool) {
	table, column, qualified := splitQualified(ref)
	for _, c := range cols {
		if qualified {
			if strings.EqualFold(c.TableName, table) && strings.EqualFold(c.ColumnName, column) {
				return c, true
			}
			continue
		}
		if strings.EqualFold(c.ColumnName, ref) {
			return c, true
		}
	}
	return columnInfo{}, false
}

func splitQualified(ref string) (table, column string, qualified bool) {
	idx := strings.IndexByte(ref, '.')
	if idx < 0 {
		return "", ref, false
	}
	return ref[:idx], ref[idx+1:], true
}
