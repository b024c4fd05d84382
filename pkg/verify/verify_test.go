package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkcollective/relalg/pkg/vocab/vocabulary"
)

func loadedVocab(t *testing.T, words ...string) *vocabulary.Vocabulary {
	t.Helper()
	v := vocabulary.New()
	require.NoError(t, v.Load(strings.NewReader(strings.Join(words, "\n"))))
	return v
}

func TestReportMarksKnownWordsWithCheck(t *testing.T) {
	v := loadedVocab(t, "hello", "world")
	out := Report(v, "hello world", 2)
	assert.Equal(t, "✓ hello\n✓ world", out)
}

func TestReportMarksUnknownWordsWithSuggestions(t *testing.T) {
	v := loadedVocab(t, "hello")
	out := Report(v, "helo", 2)
	assert.Equal(t, "✘ helo; hello", out)
}

func TestReportStripsPunctuationAndDedupes(t *testing.T) {
	v := loadedVocab(t, "hello")
	out := Report(v, "hello, hello! hello.", 2)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 1)
}

func TestReportEmptyInputYieldsEmptyReport(t *testing.T) {
	v := loadedVocab(t, "hello")
	assert.Equal(t, "", Report(v, "   ", 2))
}
