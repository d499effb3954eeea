/*
Package correct applies the engine's safe, deterministic fixes to a text:
known misspellings, doubled articles, whitespace runs, and "of" after a
modal verb. Rules run in that fixed order and each runs to a fixed point,
so re-correcting already-corrected text changes nothing.
*/
package correct

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/campuslink/textguard/pkg/dict"
)

// Change records one applied fix.
type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// Fix types.
const (
	ChangeSpelling   = "spelling"
	ChangeGrammar    = "grammar"
	ChangeWhitespace = "whitespace"
)

// Result is the outcome of one correction pass.
type Result struct {
	Original   string   `json:"original"`
	Corrected  string   `json:"corrected"`
	HasChanges bool     `json:"has_changes"`
	Changes    []Change `json:"changes"`
}

var (
	tokenRe         = regexp.MustCompile(`[A-Za-z0-9']+`)
	doubleArticleRe = regexp.MustCompile(`(?i)\b(?:the|an?)(\s+)((?:the|an?))\b`)
	whitespaceRe    = regexp.MustCompile(`\s\s+`)
	modalOfRe       = regexp.MustCompile(`(?i)\b(would|could|should|must|might)(\s+)of\b`)
)

// Corrector owns the misspelling maps. Stateless; safe for concurrent use.
type Corrector struct {
	tagalog *dict.CorrectionMap
	english *dict.CorrectionMap
}

// NewCorrector wires a corrector from both languages' misspelling maps.
func NewCorrector(tagalog, english *dict.CorrectionMap) *Corrector {
	return &Corrector{tagalog: tagalog, english: english}
}

// Apply runs every fix over text. Empty or blank input comes back
// unchanged.
func (c *Corrector) Apply(text string) Result {
	res := Result{Original: text, Corrected: text, Changes: []Change{}}
	if strings.TrimSpace(text) == "" {
		return res
	}

	out := c.fixMisspellings(text, &res.Changes)
	out = fixToFixedPoint(out, &res.Changes, collapseArticles)
	out = normalizeWhitespace(out, &res.Changes)
	out = fixToFixedPoint(out, &res.Changes, fixModalOf)

	res.Corrected = out
	res.HasChanges = out != text
	return res
}

// fixMisspellings rewrites each known wrong form to its canonical form,
// Tagalog map first, preserving leading-capital and all-caps casing.
func (c *Corrector) fixMisspellings(text string, changes *[]Change) string {
	return tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		lower := strings.ToLower(tok)
		canon, ok := c.tagalog.Lookup(lower)
		if !ok {
			canon, ok = c.english.Lookup(lower)
		}
		if !ok || canon == lower {
			return tok
		}
		fixed := matchCase(tok, canon)
		*changes = append(*changes, Change{From: tok, To: fixed, Type: ChangeSpelling})
		return fixed
	})
}

// fixToFixedPoint reapplies a rule until the text stops changing, so one
// Apply call is already idempotent even for stacked defects
// ("the the the").
func fixToFixedPoint(text string, changes *[]Change, rule func(string, *[]Change) string) string {
	for {
		next := rule(text, changes)
		if next == text {
			return next
		}
		text = next
	}
}

func collapseArticles(text string, changes *[]Change) string {
	return doubleArticleRe.ReplaceAllStringFunc(text, func(frag string) string {
		kept := doubleArticleRe.ReplaceAllString(frag, "$2")
		*changes = append(*changes, Change{From: frag, To: kept, Type: ChangeGrammar})
		return kept
	})
}

func fixModalOf(text string, changes *[]Change) string {
	return modalOfRe.ReplaceAllStringFunc(text, func(frag string) string {
		fixed := modalOfRe.ReplaceAllString(frag, "$1 have")
		*changes = append(*changes, Change{From: frag, To: fixed, Type: ChangeGrammar})
		return fixed
	})
}

// normalizeWhitespace trims the edges and collapses inner whitespace runs
// to a single space. Only actual changes are recorded.
func normalizeWhitespace(text string, changes *[]Change) string {
	out := strings.TrimSpace(text)
	out = whitespaceRe.ReplaceAllString(out, " ")
	if out != text {
		*changes = append(*changes, Change{From: text, To: out, Type: ChangeWhitespace})
	}
	return out
}

// matchCase reshapes canon to follow tok's casing: all-caps stays all-caps,
// a leading capital survives the fix.
func matchCase(tok, canon string) string {
	if tok == strings.ToUpper(tok) && strings.ContainsFunc(tok, unicode.IsLetter) && len([]rune(tok)) > 1 {
		return strings.ToUpper(canon)
	}
	first := []rune(tok)[0]
	if unicode.IsUpper(first) {
		cr := []rune(canon)
		cr[0] = unicode.ToUpper(cr[0])
		return string(cr)
	}
	return canon
}
