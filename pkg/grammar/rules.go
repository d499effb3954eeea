package grammar

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/campuslink/textguard/pkg/dict"
	"github.com/campuslink/textguard/pkg/report"
)

// hit is one place a rule fired: the offending fragment and, when the rule
// knows one, a fixed replacement.
type hit struct {
	word       string
	suggestion string
}

// Rule is one entry of the fixed, ordered rule table. A rule is either
// regex-driven (re + optional Replacement template) or function-driven
// (fn). Rules are independent: each emits zero or more issues and none
// stops the others from running.
type Rule struct {
	Name        string
	Category    report.Category
	Severity    report.Severity
	Message     string
	Language    string
	Replacement string
	re          *regexp.Regexp
	fn          func(text string) []hit
}

// longRunWordLimit flags a stretch of this many words with no
// sentence-ending punctuation anywhere inside it.
const longRunWordLimit = 40

// defaultRules builds the rule table. Order is fixed; it is also the order
// issues appear in the final report.
func defaultRules() []Rule {
	return []Rule{
		{
			Name:     "repetition",
			Category: report.CategoryGrammar,
			Severity: report.SeverityWarning,
			Message:  "immediate word repetition",
			fn:       repeatedWords,
		},
		{
			Name:        "double-article",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityWarning,
			Message:     "doubled article",
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\b(?:the|an?)\s+(the|an?)\b`),
			Replacement: "$1",
		},
		{
			Name:     "double-particle",
			Category: report.CategoryGrammar,
			Severity: report.SeverityWarning,
			Message:  "doubled linking particle",
			Language: string(dict.Tagalog),
			re:       regexp.MustCompile(`(?i)\b(?:na na|ng ng|ay ay|si si|ang ang|yung yung|mga mga)\b`),
		},
		{
			Name:     "space-after-punct",
			Category: report.CategoryGrammar,
			Severity: report.SeveritySuggestion,
			Message:  "missing space after punctuation",
			re:       regexp.MustCompile(`[A-Za-z][.!?,;:][A-Za-z]`),
		},
		{
			Name:        "multi-space",
			Category:    report.CategoryGrammar,
			Severity:    report.SeveritySuggestion,
			Message:     "multiple consecutive spaces",
			re:          regexp.MustCompile(`(\S)  +(\S)`),
			Replacement: "$1 $2",
		},
		{
			Name:     "lowercase-sentence",
			Category: report.CategoryGrammar,
			Severity: report.SeverityWarning,
			Message:  "sentence should start with a capital letter",
			re:       regexp.MustCompile(`[.!?]\s+[a-z]\w*`),
		},
		{
			Name:     "terminal-punct",
			Category: report.CategoryGrammar,
			Severity: report.SeveritySuggestion,
			Message:  "text does not end with punctuation",
			fn:       missingTerminalPunct,
		},
		{
			Name:        "modal-of",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityError,
			Message:     `"of" after a modal verb; use "have"`,
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\b(would|could|should|must|might)\s+of\b`),
			Replacement: "$1 have",
		},
		{
			Name:        "their-there",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityWarning,
			Message:     `"their" before a verb usually means "there"`,
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\btheir\s+(is|are|was|were)\b`),
			Replacement: "there $1",
		},
		{
			Name:        "there-their",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityWarning,
			Message:     `"there" before a noun usually means "their"`,
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\bthere\s+(own|house|car|books?|friends?|grades?|things?)\b`),
			Replacement: "their $1",
		},
		{
			Name:        "your-youre",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityWarning,
			Message:     `"your" here usually means "you're"`,
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\byour\s+(welcome|right|wrong|going|coming|invited|required)\b`),
			Replacement: "you're $1",
		},
		{
			Name:        "its-its",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityWarning,
			Message:     `"its" here usually means "it's"`,
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\bits\s+(a|an|the|not|very|too|time)\b`),
			Replacement: "it's $1",
		},
		{
			Name:     "a-an",
			Category: report.CategoryGrammar,
			Severity: report.SeverityWarning,
			Message:  `"a" before a vowel sound; use "an"`,
			Language: string(dict.English),
			re:       regexp.MustCompile(`(?i)\ba\s+[aeiou][a-z]+\b`),
		},
		{
			Name:     "an-a",
			Category: report.CategoryGrammar,
			Severity: report.SeverityWarning,
			Message:  `"an" before a consonant sound; use "a"`,
			Language: string(dict.English),
			// h left out so "an hour" and friends stay legal
			re: regexp.MustCompile(`(?i)\ban\s+[bcdfgjklmnpqrstvwxyz][a-z]+\b`),
		},
		{
			Name:        "indefinite-are",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityError,
			Message:     "indefinite pronouns take a singular verb",
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\b(everyone|everybody|someone|somebody|anyone|anybody|nobody|each)\s+are\b`),
			Replacement: "$1 is",
		},
		{
			Name:        "indefinite-were",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityError,
			Message:     "indefinite pronouns take a singular verb",
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\b(everyone|everybody|someone|somebody|anyone|anybody|nobody|each)\s+were\b`),
			Replacement: "$1 was",
		},
		{
			Name:        "indefinite-have",
			Category:    report.CategoryGrammar,
			Severity:    report.SeverityError,
			Message:     "indefinite pronouns take a singular verb",
			Language:    string(dict.English),
			re:          regexp.MustCompile(`(?i)\b(everyone|everybody|someone|somebody|anyone|anybody|nobody|each)\s+have\b`),
			Replacement: "$1 has",
		},
		{
			Name:     "long-run",
			Category: report.CategoryReadability,
			Severity: report.SeveritySuggestion,
			Message:  "very long stretch without sentence-ending punctuation",
			fn:       longUnpunctuatedRun,
		},
	}
}

// repeatedWords finds immediate word repetitions ("the the"). RE2 has no
// backreferences, so this walks token pairs instead of using a pattern.
func repeatedWords(text string) []hit {
	fields := strings.Fields(text)
	var hits []hit
	for i := 1; i < len(fields); i++ {
		prev := wordCore(fields[i-1])
		curr := wordCore(fields[i])
		if prev == "" || prev != curr {
			continue
		}
		hits = append(hits, hit{
			word:       fields[i-1] + " " + fields[i],
			suggestion: fields[i],
		})
	}
	return hits
}

// missingTerminalPunct fires once, and only against the very end of the
// text: at least three words and a final letter or digit.
func missingTerminalPunct(text string) []hit {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || len(strings.Fields(trimmed)) < 3 {
		return nil
	}
	last := []rune(trimmed)[len([]rune(trimmed))-1]
	if !unicode.IsLetter(last) && !unicode.IsDigit(last) {
		return nil
	}
	tail := trimmed
	if fields := strings.Fields(trimmed); len(fields) > 4 {
		tail = "... " + strings.Join(fields[len(fields)-3:], " ")
	}
	return []hit{{word: tail}}
}

// longUnpunctuatedRun flags each sentence-less stretch beyond the word
// limit.
func longUnpunctuatedRun(text string) []hit {
	var hits []hit
	for _, seg := range regexp.MustCompile(`[.!?]+`).Split(text, -1) {
		words := strings.Fields(seg)
		if len(words) <= longRunWordLimit {
			continue
		}
		hits = append(hits, hit{word: strings.Join(words[:5], " ") + " ..."})
	}
	return hits
}

// wordCore lowercases a token and strips everything but letters, so
// "The" and "the," compare equal.
func wordCore(tok string) string {
	var b strings.Builder
	for _, r := range tok {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
