/*
Package dict holds the compiled-in dictionaries the analyzers run against:
common-word sets, misspelling correction maps, profane root lists, the
whitelist, and the leetspeak substitution table.

Every structure here is built once at startup and never mutated afterwards,
so all lookups are safe for concurrent use without locking.
*/
package dict

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Language tags which corpus an entry or a match belongs to.
type Language string

const (
	English Language = "english"
	Tagalog Language = "tagalog"
	// Mixed is only ever produced by the profanity scanner when both
	// corpora contributed surviving matches.
	Mixed Language = "mixed"
)

// WordSet is an immutable set of lowercase words backed by a patricia trie
// for membership tests. Insertion order is preserved so that iteration is
// stable and reproducible; the edit-distance matcher depends on that for
// deterministic tie-breaking.
type WordSet struct {
	trie  *patricia.Trie
	order []string
}

// NewWordSet builds a set from the given words. Words are lowercased and
// duplicates are dropped, keeping the first occurrence's position.
func NewWordSet(words ...string) *WordSet {
	s := &WordSet{
		trie:  patricia.NewTrie(),
		order: make([]string, 0, len(words)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if s.trie.Insert(patricia.Prefix(w), struct{}{}) {
			s.order = append(s.order, w)
		}
	}
	return s
}

// Contains reports whether word is in the set. Comparison is
// case-insensitive.
func (s *WordSet) Contains(word string) bool {
	if s == nil || word == "" {
		return false
	}
	return s.trie.Match(patricia.Prefix(strings.ToLower(word)))
}

// Words returns the set's entries in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *WordSet) Words() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// Len returns the number of entries.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
