/*
Package quality merges the spelling and grammar analyzers into one report:
all issues, a readability estimate over the content, a bounded 0-100
quality score, and a one-line status.

The profanity scan contributes only a boolean signal here; it never moves
the quality score.
*/
package quality

import (
	"strings"

	"github.com/campuslink/textguard/pkg/grammar"
	"github.com/campuslink/textguard/pkg/profanity"
	"github.com/campuslink/textguard/pkg/report"
	"github.com/campuslink/textguard/pkg/spell"
)

// Per-issue score drop is weight x scorePerWeight, so a single error
// (weight 3) costs exactly 15 points.
const scorePerWeight = 5

// Status labels, picked by the worst severity present.
const (
	StatusNeedsAttention = "needs_attention"
	StatusReview         = "review"
	StatusGood           = "good"
	StatusExcellent      = "excellent"
)

// Analyzer aggregates the three analyzers. Stateless; safe for concurrent
// use.
type Analyzer struct {
	scanner *profanity.Scanner
	spell   *spell.Checker
	grammar *grammar.Engine
}

// NewAnalyzer wires an aggregator from its parts.
func NewAnalyzer(scanner *profanity.Scanner, checker *spell.Checker, rules *grammar.Engine) *Analyzer {
	return &Analyzer{scanner: scanner, spell: checker, grammar: rules}
}

// Analyze runs every analyzer over title plus content and produces the
// final report. Empty input yields a full-score, issue-free report.
func (a *Analyzer) Analyze(title, content string) report.AnalysisReport {
	combined := strings.TrimSpace(title + " " + content)

	rep := report.AnalysisReport{
		Issues:      []report.Issue{},
		Readability: EstimateReadability(content),
	}
	if combined != "" {
		rep.HasProfanity = a.scanner.Scan(combined).HasMatch
		rep.Issues = append(rep.Issues, a.spell.Check(combined)...)
		rep.Issues = append(rep.Issues, a.grammar.Check(combined)...)
	}

	rep.QualityScore = Score(rep.Issues)
	rep.Status = StatusFor(rep.Issues)
	return rep
}

// Score maps issues to the bounded quality score. More weighted issues can
// only drag the score down, never up.
func Score(issues []report.Issue) int {
	total := 0
	for _, is := range issues {
		total += is.Severity.Weight()
	}
	score := 100 - scorePerWeight*total
	if score < 0 {
		score = 0
	}
	return score
}

// StatusFor picks the one-line status by priority: any error wins, then
// any warning, then any suggestion.
func StatusFor(issues []report.Issue) string {
	hasWarning, hasSuggestion := false, false
	for _, is := range issues {
		switch is.Severity {
		case report.SeverityError:
			return StatusNeedsAttention
		case report.SeverityWarning:
			hasWarning = true
		case report.SeveritySuggestion:
			hasSuggestion = true
		}
	}
	switch {
	case hasWarning:
		return StatusReview
	case hasSuggestion:
		return StatusGood
	}
	return StatusExcellent
}
