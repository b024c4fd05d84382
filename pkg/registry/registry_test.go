package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOfIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Aggregate, CategoryOf("count"))
	assert.Equal(t, Aggregate, CategoryOf("COUNT"))
}

func TestCategoryOfUnknownName(t *testing.T) {
	assert.Equal(t, Unknown, CategoryOf("NOT_A_FUNCTION"))
}

func TestIsRegistered(t *testing.T) {
	assert.True(t, IsRegistered("upper"))
	assert.False(t, IsRegistered("not_a_function"))
}

func TestIsAggregate(t *testing.T) {
	assert.True(t, IsAggregate("SUM"))
	assert.False(t, IsAggregate("UPPER"))
	assert.False(t, IsAggregate("NOT_A_FUNCTION"))
}

func TestNamesSortedLongestFirstThenAlphabetical(t *testing.T) {
	names := Names()
	assert.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		a, b := names[i-1], names[i]
		if len(a) == len(b) {
			assert.LessOrEqual(t, a, b, "same-length names must be alphabetical: %s before %s", a, b)
		} else {
			assert.Greater(t, len(a), len(b), "names must be sorted longest-first: %s before %s", a, b)
		}
	}
}

func TestNamesContainsEveryCategory(t *testing.T) {
	names := Names()
	seen := map[Category]bool{}
	for _, n := range names {
		seen[CategoryOf(n)] = true
	}
	for _, c := range []Category{Aggregate, String, Numeric, Date, Conditional} {
		assert.True(t, seen[c], "expected at least one registered function of category %s", c)
	}
}
