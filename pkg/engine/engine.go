/*
Package engine assembles the full text-integrity pipeline behind one
facade: profanity scanning and censoring, combined spelling/grammar
analysis with a quality score, and deterministic auto-correction.

An Engine is built once at startup; every method is then a pure function of
its input plus the compiled-in dictionaries, so one Engine may be shared by
any number of goroutines.
*/
package engine

import (
	"github.com/campuslink/textguard/pkg/correct"
	"github.com/campuslink/textguard/pkg/dict"
	"github.com/campuslink/textguard/pkg/grammar"
	"github.com/campuslink/textguard/pkg/pattern"
	"github.com/campuslink/textguard/pkg/profanity"
	"github.com/campuslink/textguard/pkg/quality"
	"github.com/campuslink/textguard/pkg/report"
	"github.com/campuslink/textguard/pkg/spell"
)

// Engine owns the dictionaries, the compiled-pattern cache, and every
// analyzer built on them.
type Engine struct {
	tagalog   *dict.Corpus
	english   *dict.Corpus
	whitelist *dict.WordSet
	cache     *pattern.Cache

	scanner   *profanity.Scanner
	spell     *spell.Checker
	grammar   *grammar.Engine
	quality   *quality.Analyzer
	corrector *correct.Corrector
}

// New builds an engine over the compiled-in dictionaries.
func New() *Engine {
	tagalog := dict.NewTagalogCorpus()
	english := dict.NewEnglishCorpus()
	whitelist := dict.NewWhitelist()
	cache := pattern.NewCache(dict.DefaultSubstitutions())

	scanner := profanity.NewScanner(cache, whitelist, tagalog, english)
	checker := spell.NewChecker(tagalog, english)
	rules := grammar.NewEngine()

	return &Engine{
		tagalog:   tagalog,
		english:   english,
		whitelist: whitelist,
		cache:     cache,
		scanner:   scanner,
		spell:     checker,
		grammar:   rules,
		quality:   quality.NewAnalyzer(scanner, checker, rules),
		corrector: correct.NewCorrector(tagalog.Corrections, english.Corrections),
	}
}

// SetMask overrides the censor mask character. Call before sharing the
// engine across goroutines.
func (e *Engine) SetMask(mask rune) {
	e.scanner.SetMask(mask)
}

// ScanProfanity reports every profane fragment found in text.
func (e *Engine) ScanProfanity(text string) profanity.Result {
	return e.scanner.Scan(text)
}

// Censor masks recognized profane spans. Note the documented asymmetry
// with ScanProfanity: the whitelist is not consulted here.
func (e *Engine) Censor(text string) string {
	return e.scanner.Censor(text)
}

// Severity grades the profanity level of text.
func (e *Engine) Severity(text string) profanity.Level {
	return e.scanner.Severity(text)
}

// CheckText runs the full quality analysis over a title and content pair.
func (e *Engine) CheckText(title, content string) report.AnalysisReport {
	return e.quality.Analyze(title, content)
}

// AutoCorrect applies the safe deterministic fixes to text.
func (e *Engine) AutoCorrect(text string) correct.Result {
	return e.corrector.Apply(text)
}

// Stats returns dictionary and cache sizes, mostly for the CLI and the
// server's health output.
func (e *Engine) Stats() map[string]int {
	return map[string]int{
		"tagalogWords":       e.tagalog.Words.Len(),
		"tagalogCorrections": e.tagalog.Corrections.Len(),
		"tagalogRoots":       len(e.tagalog.Roots),
		"englishWords":       e.english.Words.Len(),
		"englishCorrections": e.english.Corrections.Len(),
		"englishRoots":       len(e.english.Roots),
		"whitelist":          e.whitelist.Len(),
		"compiledPatterns":   e.cache.Len(),
	}
}
