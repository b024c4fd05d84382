// Package vocabulary provides the facade over a Trie and a BK-tree that
// the word-verification API uses: exact membership checks and
// closest-match suggestions for misspelled words (component B3). Grounded
// on original_source's VocabularyService.java.
package vocabulary

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/darkcollective/relalg/pkg/vocab/bktree"
	"github.com/darkcollective/relalg/pkg/vocab/trie"
)

// DefaultMaxDistance is the edit-distance budget used when verifying
// ordinary prose, matching original_source's WordVerificationService
// constant.
const DefaultMaxDistance = 2

// MaxSuggestions caps how many closest matches FindClosestMatches ever
// returns.
const MaxSuggestions = 5

// Vocabulary is a concurrency-safe, swappable word list: Load atomically
// replaces both index structures, so a concurrent verification request
// sees either the old or the new vocabulary, never a half-built one.
type Vocabulary struct {
	mu    sync.RWMutex
	trie  *trie.Trie
	bk    *bktree.BKTree
	words int
}

// New returns an empty Vocabulary.
func New() *Vocabulary {
	return &Vocabulary{trie: trie.New(), bk: bktree.New()}
}

// Load reads one lowercased, trimmed word per line from r into a fresh
// Trie and BK-tree, then atomically swaps them in. Blank lines are
// skipped, matching original_source's VocabularyService.init.
func (v *Vocabulary) Load(r io.Reader) error {
	t := trie.New()
	bk := bktree.New()
	count := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		t.Insert(word)
		bk.Insert(word)
		count++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	v.mu.Lock()
	v.trie = t
	v.bk = bk
	v.words = count
	v.mu.Unlock()
	return nil
}

// IsValidWord reports whether word is an exact entry in the vocabulary.
func (v *Vocabulary) IsValidWord(word string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.trie.Search(word)
}

// FindClosestMatches returns up to MaxSuggestions words within
// maxDistance edits of word, closest first.
//
// This replicates two distinct sorts original_source performs in
// sequence rather than one: BKTree.search orders its raw matches by
// distance then by length, and VocabularyService.findClosestMatches then
// re-sorts that already-sorted list by length ALONE before truncating to
// five. The second sort is not a no-op — Go's sort.SliceStable preserves
// the first sort's relative order among equal-length words, so a closer
// match only wins a length tie because it was already ahead after the
// first pass.
func (v *Vocabulary) FindClosestMatches(word string, maxDistance int) []string {
	v.mu.RLock()
	matches := v.bk.Search(strings.ToLower(word), maxDistance)
	v.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].Word) < len(matches[j].Word)
	})

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Word
	}
	return out
}

// WordCount returns how many words are currently loaded.
func (v *Vocabulary) WordCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.words
}
