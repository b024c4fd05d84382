package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darkcollective/relalg/pkg/registry"
	"github.com/darkcollective/relalg/pkg/schema"
)

func TestLiteralDataType(t *testing.T) {
	assert.Equal(t, schema.Integer, NewNumericLiteral("42").DataType())
	assert.Equal(t, schema.Decimal, NewNumericLiteral("4.2").DataType())
	assert.Equal(t, schema.Varchar, NewStringLiteral("hi").DataType())
}

func TestColumnDataTypeDefaultsToVarchar(t *testing.T) {
	c := &Column{ColumnName: "name"}
	assert.Equal(t, schema.Varchar, c.DataType())
	assert.Equal(t, "name", c.Original())

	qualified := &Column{TableName: "users", ColumnName: "id", Type: schema.Integer}
	assert.Equal(t, schema.Integer, qualified.DataType())
	assert.Equal(t, "users.id", qualified.Original())
}

func TestOperatorDataTypeComparisonIsBoolean(t *testing.T) {
	op := &Operator{Op: "=", Left: NewNumericLiteral("1"), Right: NewNumericLiteral("2")}
	assert.Equal(t, schema.Boolean, op.DataType())
}

func TestOperatorDataTypeNumericAddition(t *testing.T) {
	op := &Operator{Op: "+", Left: NewNumericLiteral("1"), Right: NewNumericLiteral("2.5")}
	assert.Equal(t, schema.Decimal, op.DataType())
}

func TestOperatorDataTypeStringConcat(t *testing.T) {
	op := &Operator{Op: "||", Left: NewStringLiteral("a"), Right: NewStringLiteral("b")}
	assert.Equal(t, schema.Varchar, op.DataType())
}

func TestOperatorDataTypeInvalidMix(t *testing.T) {
	op := &Operator{Op: "+", Left: NewStringLiteral("a"), Right: NewNumericLiteral("1")}
	assert.Equal(t, schema.DataType(""), op.DataType())
}

func TestOperatorValidateTypesRejectsMixedNumericOperator(t *testing.T) {
	op := &Operator{Op: "-", Left: NewStringLiteral("a"), Right: NewNumericLiteral("1")}
	assert.False(t, op.ValidateTypes())
}

func TestOperatorValidateTypesAllowsNestedValidOperators(t *testing.T) {
	inner := &Operator{Op: "+", Left: NewNumericLiteral("1"), Right: NewNumericLiteral("2")}
	outer := &Operator{Op: "*", Left: inner, Right: NewNumericLiteral("3")}
	assert.True(t, outer.ValidateTypes())
}

func TestFunctionDataTypeCount(t *testing.T) {
	f := &Function{Name: "COUNT", Category: registry.Aggregate, Args: []Expr{&Column{ColumnName: "*"}}}
	assert.Equal(t, schema.Integer, f.DataType())
}

func TestFunctionDataTypeSumFollowsArgument(t *testing.T) {
	f := &Function{Name: "SUM", Category: registry.Aggregate, Args: []Expr{&Column{ColumnName: "amount", Type: schema.Decimal}}}
	assert.Equal(t, schema.Decimal, f.DataType())
}

func TestFunctionValidateArgumentsRejectsNonStringForStringFunction(t *testing.T) {
	f := &Function{Name: "UPPER", Category: registry.String, Args: []Expr{NewNumericLiteral("1")}}
	assert.False(t, f.ValidateArguments())
}

func TestFunctionOriginalRendersArgs(t *testing.T) {
	f := &Function{Name: "CONCAT", Category: registry.String, Args: []Expr{NewStringLiteral("a"), NewStringLiteral("b")}}
	assert.Equal(t, "CONCAT('a', 'b')", f.Original())
}
