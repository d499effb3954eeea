package grammar

import (
	"strings"
	"testing"

	"github.com/campuslink/textguard/pkg/report"
)

// ruleNames collects which rules fired, in order.
func ruleNames(issues []report.Issue) []string {
	names := make([]string, len(issues))
	for i, is := range issues {
		names[i] = is.Rule
	}
	return names
}

func hasRule(issues []report.Issue, name string) bool {
	for _, is := range issues {
		if is.Rule == name {
			return true
		}
	}
	return false
}

func TestCheckRules(t *testing.T) {
	e := NewEngine()

	testCases := []struct {
		input       string
		expected    []string // rules that must fire
		absent      []string // rules that must not fire
		description string
	}{
		{"", nil, nil, "Empty input"},
		{"All good here.", nil, nil, "Clean sentence"},

		{"The the cat ran.", []string{"repetition", "double-article"}, nil, "Doubled article"},
		{"I would of gone.", []string{"modal-of"}, []string{"repetition"}, "Modal of"},
		{"Everyone are invited.", []string{"indefinite-are"}, nil, "Indefinite plural verb"},
		{"Everyone were invited.", []string{"indefinite-were"}, nil, "Indefinite past plural"},
		{"Nobody have seen it.", []string{"indefinite-have"}, nil, "Indefinite have"},
		{"Sige na na po.", []string{"double-particle", "repetition"}, nil, "Doubled Tagalog particle"},
		{"Your welcome po.", []string{"your-youre"}, nil, "Your for you're"},
		{"There house is big.", []string{"there-their"}, nil, "There for their"},
		{"Their is a problem.", []string{"their-there"}, nil, "Their for there"},
		{"Its a good day.", []string{"its-its"}, nil, "Its for it's"},
		{"She bought a apple.", []string{"a-an"}, []string{"an-a"}, "A before vowel"},
		{"Bring an banana.", []string{"an-a"}, []string{"a-an"}, "An before consonant"},
		{"Wait for an hour.", nil, []string{"an-a"}, "An hour stays legal"},
		{"Hello,world everyone.", []string{"space-after-punct"}, nil, "Missing space after comma"},
		{"Too  many spaces here.", []string{"multi-space"}, nil, "Double space"},
		{"It rained. we stayed.", []string{"lowercase-sentence"}, nil, "Lowercase sentence start"},
		{"no punctuation at the end", []string{"terminal-punct"}, nil, "Missing terminal punctuation"},
		{"ok", nil, []string{"terminal-punct"}, "Too short for terminal rule"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			issues := e.Check(tc.input)
			for _, name := range tc.expected {
				if !hasRule(issues, name) {
					t.Errorf("Check(%q): rule %q did not fire; fired: %v", tc.input, name, ruleNames(issues))
				}
			}
			for _, name := range tc.absent {
				if hasRule(issues, name) {
					t.Errorf("Check(%q): rule %q fired unexpectedly", tc.input, name)
				}
			}
			if tc.expected == nil && tc.absent == nil && len(issues) != 0 {
				t.Errorf("Check(%q) should be clean, got %v", tc.input, ruleNames(issues))
			}
		})
	}
}

func TestCheckSuggestions(t *testing.T) {
	e := NewEngine()

	testCases := []struct {
		input        string
		rule         string
		expectedSugg string
	}{
		{"I would of gone.", "modal-of", "would have"},
		{"Everyone are invited.", "indefinite-are", "Everyone is"},
		{"The the cat ran.", "double-article", "the"},
		{"Its a good day.", "its-its", "it's a"},
	}

	for _, tc := range testCases {
		issues := e.Check(tc.input)
		found := false
		for _, is := range issues {
			if is.Rule != tc.rule {
				continue
			}
			found = true
			if is.Suggestion != tc.expectedSugg {
				t.Errorf("%q: rule %s suggestion = %q, expected %q", tc.input, tc.rule, is.Suggestion, tc.expectedSugg)
			}
		}
		if !found {
			t.Errorf("%q: rule %s did not fire", tc.input, tc.rule)
		}
	}
}

func TestRepetitionIgnoresCase(t *testing.T) {
	e := NewEngine()
	issues := e.Check("The the cat ran.")
	for _, is := range issues {
		if is.Rule == "repetition" && is.Suggestion != "the" {
			t.Errorf("repetition suggestion = %q, expected the", is.Suggestion)
		}
	}
}

func TestLongRun(t *testing.T) {
	e := NewEngine()

	issues := e.Check(strings.TrimSpace(strings.Repeat("word ", 45)))
	if !hasRule(issues, "long-run") {
		t.Errorf("45 unpunctuated words should trip long-run; fired: %v", ruleNames(issues))
	}

	issues = e.Check(strings.TrimSpace(strings.Repeat("word ", 20)) + ".")
	if hasRule(issues, "long-run") {
		t.Error("20 words should not trip long-run")
	}
}

func TestCheckSeverities(t *testing.T) {
	e := NewEngine()
	issues := e.Check("I would of gone.")
	if len(issues) != 1 || issues[0].Severity != report.SeverityError {
		t.Fatalf("modal-of should be a single error, got %+v", issues)
	}
	if issues[0].Category != report.CategoryGrammar {
		t.Errorf("category = %q", issues[0].Category)
	}
}
