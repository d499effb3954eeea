package dict

import (
	"strings"
	"testing"
)

func TestWordSet(t *testing.T) {
	set := NewWordSet("Apple", "banana", "APPLE", "  cherry ", "")

	if set.Len() != 3 {
		t.Errorf("expected 3 entries after dedup, got %d", set.Len())
	}

	testCases := []struct {
		word     string
		expected bool
	}{
		{"apple", true},
		{"Apple", true},
		{"BANANA", true},
		{"cherry", true},
		{"grape", false},
		{"", false},
		// membership is exact, not prefix
		{"app", false},
		{"apples", false},
	}

	for _, tc := range testCases {
		if got := set.Contains(tc.word); got != tc.expected {
			t.Errorf("Contains(%q) = %v, expected %v", tc.word, got, tc.expected)
		}
	}

	// iteration order follows insertion, first occurrence wins
	words := set.Words()
	expected := []string{"apple", "banana", "cherry"}
	for i, w := range expected {
		if words[i] != w {
			t.Errorf("Words()[%d] = %q, expected %q", i, words[i], w)
		}
	}
}

func TestWordSetNil(t *testing.T) {
	var set *WordSet
	if set.Contains("anything") {
		t.Error("nil set should contain nothing")
	}
	if set.Len() != 0 || set.Words() != nil {
		t.Error("nil set should be empty")
	}
}

func TestCorrectionMap(t *testing.T) {
	m := NewCorrectionMap([]Correction{
		{"teh", "the"},
		{"Teh", "THE"}, // dup after lowering, first wins
		{"wierd", "weird"},
		{"", "nothing"},
	})

	if m.Len() != 2 {
		t.Errorf("expected 2 pairs, got %d", m.Len())
	}

	if canon, ok := m.Lookup("TEH"); !ok || canon != "the" {
		t.Errorf("Lookup(TEH) = %q, %v; expected the, true", canon, ok)
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Error("Lookup(missing) should miss")
	}
	if _, ok := m.Lookup(""); ok {
		t.Error("Lookup of empty string should miss")
	}
}

// A wrong form that is also a common word would shadow the word set: the
// spell checker consults corrections first. Keep the data free of that.
func TestCorrectionsDoNotShadowWords(t *testing.T) {
	for _, corpus := range []*Corpus{NewTagalogCorpus(), NewEnglishCorpus()} {
		for _, p := range corpus.Corrections.Pairs() {
			if corpus.Words.Contains(p.Wrong) {
				t.Errorf("%s: wrong form %q is also a common word", corpus.Lang, p.Wrong)
			}
			if p.Wrong == strings.ToLower(p.Canonical) {
				t.Errorf("%s: identity pair %q", corpus.Lang, p.Wrong)
			}
		}
	}
}

func TestSubstitutionsStartWithBaseLetter(t *testing.T) {
	for base, alts := range DefaultSubstitutions() {
		if len(alts) == 0 || alts[0] != string(base) {
			t.Errorf("alternatives for %q must lead with the base letter, got %v", base, alts)
		}
	}
}

func TestLeetToLetterRoundTrip(t *testing.T) {
	subs := DefaultSubstitutions()
	for leet, letter := range LeetToLetter() {
		found := false
		for _, alt := range subs[letter] {
			if alt == string(leet) {
				found = true
			}
		}
		if !found {
			t.Errorf("reverse entry %q -> %q has no forward counterpart", leet, letter)
		}
	}
}

func TestCorporaNonEmpty(t *testing.T) {
	for _, corpus := range []*Corpus{NewTagalogCorpus(), NewEnglishCorpus()} {
		if corpus.Words.Len() == 0 || corpus.Corrections.Len() == 0 || len(corpus.Roots) == 0 {
			t.Errorf("%s corpus is missing data", corpus.Lang)
		}
	}
	if NewWhitelist().Len() == 0 {
		t.Error("whitelist is empty")
	}
}
