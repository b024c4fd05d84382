package token

import "strings"

// Keywords is the single canonical reserved-word set shared by the lexer,
// the expression parser's identifier extraction and the schema validator's
// condition scanning. spec.md's §4.7 keyword list and the original Java
// validator's isLiteralOrKeyword set agreed on everything except CASE/WHEN/
// THEN/ELSE/END/UNION/ALL/INTERSECT/EXCEPT, which only the validator's list
// carried; relalg uses one list everywhere rather than two slightly
// different ones.
var Keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "JOIN": true,
	"INNER": true, "LEFT": true, "RIGHT": true, "FULL": true, "CROSS": true,
	"GROUP": true, "BY": true, "HAVING": true, "ORDER": true,
	"DISTINCT": true, "ON": true, "AS": true,
	"AND": true, "OR": true, "NOT": true,
	"IN": true, "EXISTS": true, "BETWEEN": true, "LIKE": true, "IS": true,
	"NULL": true, "TRUE": true, "FALSE": true,
	"ASC": true, "DESC": true,
	"WHEN": true, "THEN": true, "ELSE": true, "CASE": true, "END": true,
	"UNION": true, "ALL": true, "INTERSECT": true, "EXCEPT": true,
}

// Lookup reports whether ident (compared case-insensitively) is a reserved
// keyword, and returns its canonical upper-case spelling.
func Lookup(ident string) (canonical string, ok bool) {
	upper := strings.ToUpper(ident)
	if Keywords[upper] {
		return upper, true
	}
	return "", false
}

// IsJoinKeyword reports whether word introduces or qualifies a JOIN clause.
func IsJoinKeyword(word string) bool {
	switch strings.ToUpper(word) {
	case "JOIN", "INNER", "LEFT", "RIGHT", "FULL", "CROSS":
		return true
	}
	return false
}
