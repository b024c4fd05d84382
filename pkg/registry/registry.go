// Package registry implements the function registry (component A2): a
// closed, category-tagged table of known SQL function names, grounded
// name-for-name on original_source's SqlFunctionRegistry.java.
package registry

import "strings"

// Category is the closed set of function categories relalg recognizes.
type Category string

const (
	Aggregate   Category = "AGGREGATE"
	String      Category = "STRING"
	Numeric     Category = "NUMERIC"
	Date        Category = "DATE"
	Conditional Category = "CONDITIONAL"
	Unknown     Category = "UNKNOWN"
)

var byName = map[string]Category{
	// AGGREGATE
	"COUNT": Aggregate, "SUM": Aggregate, "AVG": Aggregate, "MIN": Aggregate,
	"MAX": Aggregate, "GROUP_CONCAT": Aggregate, "STRING_AGG": Aggregate,
	"STDDEV": Aggregate, "VARIANCE": Aggregate, "MEDIAN": Aggregate,

	// STRING
	"UPPER": String, "LOWER": String, "TRIM": String, "LTRIM": String,
	"RTRIM": String, "SUBSTR": String, "SUBSTRING": String, "LENGTH": String,
	"LEN": String, "CONCAT": String, "REPLACE": String, "LEFT": String,
	"RIGHT": String, "REVERSE": String, "CHARINDEX": String, "PATINDEX": String,
	"STUFF": String, "REPLICATE": String,

	// NUMERIC
	"ROUND": Numeric, "FLOOR": Numeric, "CEIL": Numeric, "ABS": Numeric,
	"SQRT": Numeric, "POWER": Numeric, "MOD": Numeric, "RAND": Numeric,
	"SIN": Numeric, "COS": Numeric, "TAN": Numeric, "LOG": Numeric,
	"LOG10": Numeric, "EXP": Numeric, "PI": Numeric, "SIGN": Numeric,

	// DATE
	"NOW": Date, "CURRENT_DATE": Date, "CURRENT_TIME": Date,
	"CURRENT_TIMESTAMP": Date, "DATEADD": Date, "DATEDIFF": Date,
	"EXTRACT": Date, "YEAR": Date, "MONTH": Date, "DAY": Date, "HOUR": Date,
	"MINUTE": Date, "SECOND": Date, "GETDATE": Date, "GETUTCDATE": Date,

	// CONDITIONAL
	"CASE": Conditional, "WHEN": Conditional, "THEN": Conditional,
	"ELSE": Conditional, "END": Conditional, "COALESCE": Conditional,
	"NULLIF": Conditional, "ISNULL": Conditional, "IIF": Conditional,
	"CHOOSE": Conditional,
}

// CategoryOf returns the category of name (case-insensitive), or Unknown if
// name is not a registered function.
func CategoryOf(name string) Category {
	if c, ok := byName[strings.ToUpper(name)]; ok {
		return c
	}
	return Unknown
}

// IsRegistered reports whether name (case-insensitive) is a known function.
func IsRegistered(name string) bool {
	_, ok := byName[strings.ToUpper(name)]
	return ok
}

// IsAggregate reports whether name is a registered aggregate function.
func IsAggregate(name string) bool {
	return CategoryOf(name) == Aggregate
}

// Names returns every registered function name, longest-first then
// alphabetical — the order the validator's condition scanner needs when it
// searches raw text for function-call occurrences, so that a longer name
// is never shadowed by a shorter one that is also a substring of it.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sortLongestFirst(names)
	return names
}

func sortLongestFirst(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0; j-- {
			a, b := names[j-1], names[j]
			if len(a) < len(b) || (len(a) == len(b) && a > b) {
				names[j-1], names[j] = names[j], names[j-1]
				continue
			}
			break
		}
	}
}
