// Package verify implements the word-verification report that
// pairs each word of an input text with either a checkmark or a set of
// closest-match suggestions. Grounded on original_source's
// WordVerificationService.java.
package verify

import (
	"regexp"
	"strings"

	"github.com/darkcollective/relalg/pkg/vocab/vocabulary"
)

// nonLetterRE strips everything but ASCII letters from each extracted
// word, matching WordVerificationService's word.replaceAll("[^a-zA-Z]",
// "").
var nonLetterRE = regexp.MustCompile(`[^a-zA-Z]`)

// extractWords splits input on whitespace, strips non-letters from each
// token, drops empties, and de-duplicates by first occurrence.
func extractWords(input string) []string {
	fields := strings.Fields(input)
	seen := make(map[string]bool, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := nonLetterRE.ReplaceAllString(f, "")
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// Report renders one line per distinct word in input: "✓ word" if vocab
// contains it exactly, else "✘ word; suggestion, suggestion, ..." using
// vocab's closest matches within maxDistance edits. Lines are joined with
// "\n" and the result is trimmed, matching
// WordVerificationService.verifyWords.
func Report(vocab *vocabulary.Vocabulary, input string, maxDistance int) string {
	var b strings.Builder
	for _, word := range extractWords(input) {
		if vocab.IsValidWord(word) {
			b.WriteString("✓ ")
			b.WriteString(word)
			b.WriteString("\n")
			continue
		}
		matches := vocab.FindClosestMatches(word, maxDistance)
		b.WriteString("✘ ")
		b.WriteString(word)
		b.WriteString("; ")
		b.WriteString(strings.Join(matches, ", "))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
