/*
Package grammar applies a fixed, ordered table of independent pattern rules
to a text. Rules cover both languages: word repetition, doubled
articles/particles, punctuation spacing, sentence capitalization, modal
"of", homophone confusion, a/an choice, indefinite-pronoun agreement, and
an over-long-run readability flag.

A text may trigger many rules at once; every hit from every rule is
reported.
*/
package grammar

import (
	"strings"

	"github.com/campuslink/textguard/pkg/report"
)

// Engine holds the compiled rule table. Build it once and share it; Check
// is stateless.
type Engine struct {
	rules []Rule
}

// NewEngine compiles the default rule table.
func NewEngine() *Engine {
	return &Engine{rules: defaultRules()}
}

// Rules exposes the table for introspection (stats, docs).
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Check runs every rule over text, in table order, and returns all issues.
func (e *Engine) Check(text string) []report.Issue {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var issues []report.Issue
	for _, rule := range e.rules {
		for _, h := range rule.apply(text) {
			issues = append(issues, report.Issue{
				Category:   rule.Category,
				Severity:   rule.Severity,
				Word:       h.word,
				Message:    rule.Message,
				Suggestion: h.suggestion,
				Language:   rule.Language,
				Rule:       rule.Name,
			})
		}
	}
	return issues
}

// apply evaluates one rule, regex- or function-driven.
func (r *Rule) apply(text string) []hit {
	if r.fn != nil {
		return r.fn(text)
	}

	matches := r.re.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	hits := make([]hit, 0, len(matches))
	for _, frag := range matches {
		h := hit{word: frag}
		if r.Replacement != "" {
			h.suggestion = r.re.ReplaceAllString(frag, r.Replacement)
		}
		hits = append(hits, h)
	}
	return hits
}
