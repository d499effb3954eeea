package correct

import (
	"testing"

	"github.com/campuslink/textguard/pkg/dict"
)

func newTestCorrector() *Corrector {
	return NewCorrector(dict.NewTagalogCorpus().Corrections, dict.NewEnglishCorpus().Corrections)
}

func TestApply(t *testing.T) {
	c := newTestCorrector()

	testCases := []struct {
		input       string
		expected    string
		changes     int
		description string
	}{
		{"", "", 0, "Empty input"},
		{"   ", "   ", 0, "Blank input stays blank"},
		{"All good here.", "All good here.", 0, "Nothing to fix"},

		// spelling
		{"teh exam", "the exam", 1, "Known misspelling"},
		{"kelan po", "kailan po", 1, "Tagalog text-speak"},
		{"alot of forms", "a lot of forms", 1, "Multi-word canonical form"},

		// casing preserved
		{"Teh exam", "The exam", 1, "Leading capital kept"},
		{"TEH EXAM", "THE EXAM", 1, "All caps kept"},

		// grammar
		{"the the exam", "the exam", 1, "Doubled article"},
		{"the the the exam", "the exam", 2, "Tripled article collapses fully"},
		{"I should of gone", "I should have gone", 1, "Modal of"},

		// whitespace
		{"too  many   spaces", "too many spaces", 1, "Inner runs collapsed"},
		{"  padded  ", "padded", 1, "Edges trimmed"},

		// the canonical combined example
		{"teh dog should of gone", "the dog should have gone", 2, "Spelling then grammar"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			res := c.Apply(tc.input)
			if res.Corrected != tc.expected {
				t.Errorf("Apply(%q) = %q, expected %q", tc.input, res.Corrected, tc.expected)
			}
			if len(res.Changes) != tc.changes {
				t.Errorf("Apply(%q) recorded %d changes, expected %d: %+v",
					tc.input, len(res.Changes), tc.changes, res.Changes)
			}
			if res.Original != tc.input {
				t.Errorf("Original = %q, expected the input back", res.Original)
			}
			if res.HasChanges != (tc.input != tc.expected) {
				t.Errorf("HasChanges = %v for %q -> %q", res.HasChanges, tc.input, tc.expected)
			}
			if res.Changes == nil {
				t.Error("Changes must never be nil")
			}
		})
	}
}

func TestApplyChangeRecords(t *testing.T) {
	c := newTestCorrector()
	res := c.Apply("teh dog should of gone")

	if len(res.Changes) != 2 {
		t.Fatalf("expected 2 changes, got %+v", res.Changes)
	}
	if res.Changes[0].Type != ChangeSpelling || res.Changes[0].From != "teh" || res.Changes[0].To != "the" {
		t.Errorf("first change = %+v", res.Changes[0])
	}
	if res.Changes[1].Type != ChangeGrammar || res.Changes[1].To != "should have" {
		t.Errorf("second change = %+v", res.Changes[1])
	}
}

// Correcting already-corrected text is a no-op, whatever the input was.
func TestApplyIdempotent(t *testing.T) {
	c := newTestCorrector()

	inputs := []string{
		"teh dog should of gone",
		"the the the exam",
		"too   many spaces",
		"kelan ang  meeting",
	}
	for _, input := range inputs {
		once := c.Apply(input)
		twice := c.Apply(once.Corrected)
		if twice.HasChanges {
			t.Errorf("Apply(%q) not idempotent: %q -> %q", input, once.Corrected, twice.Corrected)
		}
	}
}

func TestMatchCase(t *testing.T) {
	testCases := []struct {
		tok      string
		canon    string
		expected string
	}{
		{"teh", "the", "the"},
		{"Teh", "the", "The"},
		{"TEH", "the", "THE"},
		{"T", "the", "The"}, // single letter counts as leading capital
	}

	for _, tc := range testCases {
		if got := matchCase(tc.tok, tc.canon); got != tc.expected {
			t.Errorf("matchCase(%q, %q) = %q, expected %q", tc.tok, tc.canon, got, tc.expected)
		}
	}
}
