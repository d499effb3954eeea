package pattern

import (
	"testing"

	"github.com/campuslink/textguard/pkg/dict"
)

func TestMatcherVariants(t *testing.T) {
	subs := dict.DefaultSubstitutions()

	testCases := []struct {
		root        string
		input       string
		expected    bool
		description string
	}{
		// plain spellings
		{"fuck", "fuck", true, "Exact root"},
		{"fuck", "FUCK", true, "Case insensitive"},
		{"fuck", "say fuck now", true, "Root inside text"},

		// leetspeak substitution
		{"fuck", "fvck", true, "u to v"},
		{"shit", "sh1t", true, "i to 1"},
		{"shit", "5hit", true, "s to 5"},
		{"ass", "a$$", true, "s to dollar"},
		{"bitch", "b!tch", true, "i to bang"},
		{"bad", "b4d", true, "a to 4"},

		// elongation
		{"fuck", "fuuuck", true, "Elongated vowel"},
		{"shit", "shiiit", true, "Elongated vowel"},

		// separators
		{"fuck", "f.u.c.k", true, "Dot separated"},
		{"shit", "s h i t", true, "Space separated"},
		{"fuck", "f-u-c-k", true, "Hyphen separated"},
		{"fuck", "f_u*c_k", true, "Mixed separators"},

		// separator bound: three or more between characters breaks the run
		{"fuck", "f...u...c...k", false, "Separator run too long"},

		// negatives
		{"fuck", "duck", false, "Different first letter"},
		{"fuck", "firetruck", false, "Letters not adjacent"},
		{"fuck", "fork", false, "Unrelated word"},
		{"shit", "shirt", false, "Letter inserted"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			m := Compile(tc.root, subs)
			if got := m.Matches(tc.input); got != tc.expected {
				t.Errorf("Compile(%q).Matches(%q) = %v, expected %v", tc.root, tc.input, got, tc.expected)
			}
		})
	}
}

func TestFindAllSpans(t *testing.T) {
	m := Compile("fuck", dict.DefaultSubstitutions())
	spans := m.FindAll("say fuck now")
	if len(spans) != 1 || spans[0][0] != 4 || spans[0][1] != 8 {
		t.Errorf("expected one span [4,8], got %v", spans)
	}
}

// Unknown characters degrade to literal steps; compilation never fails.
func TestCompileUnknownCharacters(t *testing.T) {
	m := Compile("xyz", dict.DefaultSubstitutions())
	if !m.Matches("xyz") {
		t.Error("literal root should match itself")
	}
	if m.Matches("abc") {
		t.Error("literal root should not match unrelated text")
	}
	if m.Root() != "xyz" {
		t.Errorf("Root() = %q", m.Root())
	}
}

func TestParseSteps(t *testing.T) {
	steps := Parse("ax", dict.DefaultSubstitutions())
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Kind != StepClass || len(steps[0].Alts) != 3 {
		t.Errorf("step for 'a' should be a 3-alternative class, got %+v", steps[0])
	}
	if steps[1].Kind != StepLiteral || steps[1].Literal != 'x' {
		t.Errorf("step for 'x' should be literal, got %+v", steps[1])
	}
}

func TestCacheReusesMatchers(t *testing.T) {
	cache := NewCache(dict.DefaultSubstitutions())

	first := cache.Get("fuck")
	second := cache.Get("fuck")
	if first != second {
		t.Error("same root should return the same compiled matcher")
	}
	if cache.Len() != 1 {
		t.Errorf("cache should hold 1 entry, got %d", cache.Len())
	}

	cache.Get("shit")
	if cache.Len() != 2 {
		t.Errorf("cache should hold 2 entries, got %d", cache.Len())
	}
}
