// Package trie implements the prefix tree used to answer exact
// membership queries over a vocabulary (component B1). Grounded on
// original_source's Trie.java.
package trie

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerCaser does locale-independent Unicode lower-casing, used in place
// of strings.ToLower so normalization behaves correctly for letters
// outside ASCII (e.g. the Turkish dotless I, German ß expansion rules).
var lowerCaser = cases.Lower(language.Und)

func lower(s string) string {
	return lowerCaser.String(s)
}

type node struct {
	children map[byte]*node
	isEnd    bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is a case-folding (by default) prefix tree tracking aggregate
// statistics over every word inserted.
type Trie struct {
	root          *node
	caseSensitive bool
	wordCount     int
	totalChars    int
	maxWordLength int
}

// New returns an empty, case-insensitive Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// NewCaseSensitive returns an empty Trie that does not lower-case inserted
// words (but still lower-cases lookup words in Search, matching
// original_source's quirk where Trie.search always normalizes to
// lower-case regardless of the caseSensitive flag).
func NewCaseSensitive() *Trie {
	return &Trie{root: newNode(), caseSensitive: true}
}

func (t *Trie) normalize(word string) string {
	if t.caseSensitive {
		return word
	}
	return lower(word)
}

// Insert adds word to the trie, updating statistics only the first time a
// given word is inserted.
func (t *Trie) Insert(word string) {
	normalized := t.normalize(word)
	if normalized == "" {
		return
	}
	cur := t.root
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		next, ok := cur.children[c]
		if !ok {
			next = newNode()
			cur.children[c] = next
		}
		cur = next
	}
	if !cur.isEnd {
		cur.isEnd = true
		t.wordCount++
		t.totalChars += len(normalized)
		if len(normalized) > t.maxWordLength {
			t.maxWordLength = len(normalized)
		}
	}
}

// Search reports whether word is a complete entry in the trie. Per
// original_source's Trie.search, the lookup word is always lower-cased
// regardless of the trie's case-sensitivity setting.
func (t *Trie) Search(word string) bool {
	n := t.findNode(lower(word))
	return n != nil && n.isEnd
}

// HasPrefix reports whether any entry in the trie starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.findNode(lower(prefix)) != nil
}

func (t *Trie) findNode(word string) *node {
	cur := t.root
	for i := 0; i < len(word); i++ {
		next, ok := cur.children[word[i]]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// GetWordsWithPrefix returns every complete word in the trie beginning
// with prefix.
func (t *Trie) GetWordsWithPrefix(prefix string) []string {
	normalizedPrefix := lower(prefix)
	start := t.findNode(normalizedPrefix)
	if start == nil {
		return nil
	}
	var words []string
	collectWords(start, normalizedPrefix, &words)
	return words
}

func collectWords(n *node, prefix string, out *[]string) {
	if n.isEnd {
		*out = append(*out, prefix)
	}
	for c, child := range n.children {
		collectWords(child, prefix+string(c), out)
	}
}

// Remove deletes word from the trie, pruning any node left with no
// children and not itself the end of another word.
func (t *Trie) Remove(word string) bool {
	normalized := t.normalize(word)
	removed := removeHelper(t.root, normalized, 0)
	if removed {
		t.wordCount--
		t.totalChars -= len(normalized)
	}
	return removed
}

func removeHelper(n *node, word string, depth int) bool {
	if depth == len(word) {
		if !n.isEnd {
			return false
		}
		n.isEnd = false
		return true
	}
	c := word[depth]
	child, ok := n.children[c]
	if !ok {
		return false
	}
	removed := removeHelper(child, word, depth+1)
	if removed && len(child.children) == 0 && !child.isEnd {
		delete(n.children, c)
	}
	return removed
}

// Statistics summarizes aggregate counts over every word currently in the
// trie.
type Statistics struct {
	WordCount         int
	TotalCharacters   int
	MaxWordLength     int
	AverageWordLength float64
}

// Stats computes the trie's current Statistics.
func (t *Trie) Stats() Statistics {
	avg := 0.0
	if t.wordCount > 0 {
		avg = float64(t.totalChars) / float64(t.wordCount)
	}
	return Statistics{
		WordCount:         t.wordCount,
		TotalCharacters:   t.totalChars,
		MaxWordLength:     t.maxWordLength,
		AverageWordLength: avg,
	}
}
