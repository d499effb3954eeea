/*
Package spell classifies every token of a text through a fixed ladder of
checks: skip rules, misspelling maps, common-word sets, word-shape
plausibility, and finally edit distance. The ladder is ordered cheap to
expensive; the edit-distance matcher only runs for tokens nothing else
could place.

Unknown tokens with a plausible shape and no close dictionary neighbor are
deliberately left alone: course codes, names and jargon are common in
campus posts and silence beats a false positive.
*/
package spell

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/campuslink/textguard/pkg/dict"
	"github.com/campuslink/textguard/pkg/editdist"
	"github.com/campuslink/textguard/pkg/report"
)

// Checker spell-checks text against the Tagalog and English corpora.
// Stateless; safe for concurrent use.
type Checker struct {
	tagalog *dict.Corpus
	english *dict.Corpus
}

// NewChecker wires a checker from its corpora.
func NewChecker(tagalog, english *dict.Corpus) *Checker {
	return &Checker{tagalog: tagalog, english: english}
}

// Check returns one Issue per token that fails classification.
func (c *Checker) Check(text string) []report.Issue {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var issues []report.Issue
	for _, raw := range strings.Fields(text) {
		tok := CleanToken(raw)
		if issue, ok := c.checkToken(tok); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}

// checkToken walks one token through the classification ladder.
func (c *Checker) checkToken(tok string) (report.Issue, bool) {
	// Short tokens, acronyms and contractions are not spell-checked.
	if utf8.RuneCountInString(tok) < 2 {
		return report.Issue{}, false
	}
	if isAllUpper(tok) {
		return report.Issue{}, false
	}
	if strings.ContainsRune(tok, '\'') {
		return report.Issue{}, false
	}

	lower := strings.ToLower(tok)

	// Known misspellings. Filipino text-speak is common and expected, so
	// those hits are softened to warnings; English hits are errors.
	if canon, ok := c.tagalog.Corrections.Lookup(lower); ok {
		return report.Issue{
			Category:   report.CategorySpelling,
			Severity:   report.SeverityWarning,
			Word:       tok,
			Message:    fmt.Sprintf("%q is text-speak for %q", tok, canon),
			Suggestion: canon,
			Language:   string(dict.Tagalog),
		}, true
	}
	if canon, ok := c.english.Corrections.Lookup(lower); ok {
		return report.Issue{
			Category:   report.CategorySpelling,
			Severity:   report.SeverityError,
			Word:       tok,
			Message:    fmt.Sprintf("%q is a misspelling of %q", tok, canon),
			Suggestion: canon,
			Language:   string(dict.English),
		}, true
	}

	// Valid word of either language.
	if c.tagalog.Words.Contains(lower) || c.english.Words.Contains(lower) {
		return report.Issue{}, false
	}

	// Implausible in both languages: definitely not a word.
	if implausible(lower, tagalogShape) && implausible(lower, englishShape) {
		issue := report.Issue{
			Category: report.CategorySpelling,
			Severity: report.SeverityError,
			Word:     tok,
			Message:  fmt.Sprintf("%q does not look like a word", tok),
		}
		if cand, _, ok := c.nearestEither(lower, editdist.Threshold(utf8.RuneCountInString(lower))); ok {
			issue.Suggestion = cand
			issue.Message = fmt.Sprintf("%q does not look like a word; did you mean %q?", tok, cand)
		}
		return issue, true
	}

	// Plausible but unrecognized: suggest only a very close neighbor.
	if cand, distance, ok := c.nearestEither(lower, 2); ok && distance > 0 {
		return report.Issue{
			Category:   report.CategorySpelling,
			Severity:   report.SeverityWarning,
			Word:       tok,
			Message:    fmt.Sprintf("%q may be a misspelling of %q", tok, cand),
			Suggestion: cand,
		}, true
	}

	return report.Issue{}, false
}

// nearestEither returns the closer of the two dictionaries' nearest
// candidates, Tagalog winning ties.
func (c *Checker) nearestEither(word string, maxDist int) (string, int, bool) {
	tCand, tDist, tOK := editdist.Nearest(word, c.tagalog.Words, maxDist)
	eCand, eDist, eOK := editdist.Nearest(word, c.english.Words, maxDist)
	switch {
	case tOK && eOK:
		if eDist < tDist {
			return eCand, eDist, true
		}
		return tCand, tDist, true
	case tOK:
		return tCand, tDist, true
	case eOK:
		return eCand, eDist, true
	}
	return "", 0, false
}

// CleanToken strips a raw whitespace token down to its letters-and-
// apostrophe core: edge punctuation goes, inner hyphens and digits mark the
// token as not-a-word and clear it entirely.
func CleanToken(raw string) string {
	tok := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, r := range tok {
		if !unicode.IsLetter(r) && r != '\'' {
			return ""
		}
	}
	return tok
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
