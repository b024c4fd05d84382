package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaded(t *testing.T, words ...string) *Vocabulary {
	t.Helper()
	v := New()
	require.NoError(t, v.Load(strings.NewReader(strings.Join(words, "\n"))))
	return v
}

func TestLoadSkipsBlankLinesAndLowercases(t *testing.T) {
	v := loaded(t, "Hello", "", "  ", "World")
	assert.Equal(t, 2, v.WordCount())
	assert.True(t, v.IsValidWord("hello"))
	assert.True(t, v.IsValidWord("HELLO"))
}

func TestIsValidWordExactOnly(t *testing.T) {
	v := loaded(t, "hello")
	assert.True(t, v.IsValidWord("hello"))
	assert.False(t, v.IsValidWord("helo"))
}

func TestFindClosestMatchesCapsAtFive(t *testing.T) {
	v := loaded(t, "cat", "bat", "rat", "hat", "mat", "sat", "fat")
	matches := v.FindClosestMatches("cat", 2)
	assert.LessOrEqual(t, len(matches), MaxSuggestions)
}

func TestFindClosestMatchesExcludesExactWord(t *testing.T) {
	v := loaded(t, "cat", "cot")
	matches := v.FindClosestMatches("cat", 2)
	assert.NotContains(t, matches, "cat")
}

func TestLoadSwapsAtomically(t *testing.T) {
	v := loaded(t, "hello")
	require.NoError(t, v.Load(strings.NewReader("goodbye")))
	assert.False(t, v.IsValidWord("hello"))
	assert.True(t, v.IsValidWord("goodbye"))
}
