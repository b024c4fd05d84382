package bktree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, LevenshteinDistance("cat", "cat"))
	assert.Equal(t, 1, LevenshteinDistance("cat", "cot"))
	assert.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 3, LevenshteinDistance("", "cat"))
}

func TestInsertSkipsExactDuplicate(t *testing.T) {
	tree := New()
	tree.Insert("cat")
	tree.Insert("cat")
	matches := tree.Search("cat", 2)
	for _, m := range matches {
		assert.NotEqual(t, "cat", m.Word)
	}
}

func TestSearchWithinDistance(t *testing.T) {
	tree := New()
	for _, w := range []string{"cat", "cot", "cut", "dog", "bat"} {
		tree.Insert(w)
	}
	matches := tree.Search("cat", 1)
	var words []string
	for _, m := range matches {
		words = append(words, m.Word)
	}
	assert.ElementsMatch(t, []string{"cot", "cut", "bat"}, words)
}

func TestSearchExcludesExactMatch(t *testing.T) {
	tree := New()
	tree.Insert("cat")
	tree.Insert("cot")
	matches := tree.Search("cat", 2)
	for _, m := range matches {
		assert.NotEqual(t, 0, m.Distance)
	}
}

func TestSearchSortedByDistanceThenLength(t *testing.T) {
	tree := New()
	for _, w := range []string{"cats", "cat", "cut", "scat"} {
		tree.Insert(w)
	}
	matches := tree.Search("cat", 2)
	for i := 1; i < len(matches); i++ {
		assert.True(t, matches[i-1].Distance <= matches[i].Distance)
		if matches[i-1].Distance == matches[i].Distance {
			assert.True(t, len(matches[i-1].Word) <= len(matches[i].Word))
		}
	}
}
