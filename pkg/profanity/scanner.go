/*
Package profanity detects and censors obfuscated profanity across the
Tagalog and English root lists.

The scanner runs three nets over the raw text, cheapest first: a whitelist
fast path that clears obviously benign short text, the compiled tolerant
patterns (plain and separator variants), and a normalization fallback that
undoes leetspeak and compares whole words against the roots.

Censor deliberately does not re-check the whitelist before masking, so a
whitelisted word containing a flagged root scans clean but can still be
partially masked. Scan and Censor have disagreed on this since the first
release and downstream tests pin the behavior.
*/
package profanity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/campuslink/textguard/pkg/dict"
	"github.com/campuslink/textguard/pkg/pattern"
)

// Level classifies how much profanity one text carries.
type Level string

const (
	LevelNone     Level = "none"
	LevelMild     Level = "mild"
	LevelModerate Level = "moderate"
	LevelSevere   Level = "severe"
)

// Result is the outcome of one scan.
type Result struct {
	HasMatch bool
	// Matches holds the deduplicated matched fragments, lowercased, in
	// first-encountered order.
	Matches []string
	// Language is tagalog, english or mixed; empty when nothing matched.
	Language dict.Language
}

// Scanner owns the compiled-pattern cache and the root dictionaries.
// All methods are pure over their input and safe for concurrent use.
type Scanner struct {
	cache     *pattern.Cache
	corpora   []*dict.Corpus
	whitelist *dict.WordSet
	mask      rune
}

// NewScanner wires a scanner from its dependencies. The cache is injected
// so the caller controls its lifetime; corpora are scanned in the order
// given (Tagalog first matches the rest of the engine).
func NewScanner(cache *pattern.Cache, whitelist *dict.WordSet, corpora ...*dict.Corpus) *Scanner {
	return &Scanner{
		cache:     cache,
		corpora:   corpora,
		whitelist: whitelist,
		mask:      '*',
	}
}

// SetMask overrides the censor mask character.
func (s *Scanner) SetMask(mask rune) {
	if mask != 0 {
		s.mask = mask
	}
}

// Scan reports every surviving profane fragment in text.
func (s *Scanner) Scan(text string) Result {
	empty := Result{Matches: []string{}}
	if strings.TrimSpace(text) == "" {
		return empty
	}
	if s.clearlyBenign(text) {
		return empty
	}

	seen := make(map[string]struct{})
	var matches []string
	byLang := make(map[dict.Language]bool)

	add := func(frag string, lang dict.Language) {
		byLang[lang] = true
		if _, dup := seen[frag]; dup {
			return
		}
		seen[frag] = struct{}{}
		matches = append(matches, frag)
	}

	// Pattern pass over the raw text.
	for _, corpus := range s.corpora {
		for _, root := range corpus.Roots {
			m := s.cache.Get(root)
			spans := m.FindAll(text)
			spans = append(spans, m.FindAllSpaced(text)...)
			for _, sp := range spans {
				frag := strings.ToLower(text[sp[0]:sp[1]])
				if s.whitelisted(containingToken(text, sp[0], sp[1])) {
					continue
				}
				add(frag, corpus.Lang)
			}
		}
	}

	// Normalization fallback: exact whole-word comparison.
	norm := Normalize(text)
	for _, tok := range strings.Fields(norm) {
		for _, corpus := range s.corpora {
			for _, root := range corpus.Roots {
				if tok == root && !s.whitelisted(tok) {
					add(tok, corpus.Lang)
				}
			}
		}
	}

	if len(matches) == 0 {
		return empty
	}
	return Result{
		HasMatch: true,
		Matches:  matches,
		Language: languageTag(byLang),
	}
}

// Severity grades text by its deduplicated match count.
func (s *Scanner) Severity(text string) Level {
	switch n := len(s.Scan(text).Matches); {
	case n == 0:
		return LevelNone
	case n == 1:
		return LevelMild
	case n <= 3:
		return LevelModerate
	default:
		return LevelSevere
	}
}

// Censor masks every raw-text span a compiled pattern recognizes with an
// equal-length run of the mask character. The whitelist is not consulted
// here; see the package comment.
func (s *Scanner) Censor(text string) string {
	if text == "" {
		return text
	}

	var spans [][]int
	for _, corpus := range s.corpora {
		for _, root := range corpus.Roots {
			m := s.cache.Get(root)
			spans = append(spans, m.FindAll(text)...)
			spans = append(spans, m.FindAllSpaced(text)...)
		}
	}
	if len(spans) == 0 {
		return text
	}

	covered := make([]bool, len(text))
	for _, sp := range spans {
		for i := sp[0]; i < sp[1] && i < len(covered); i++ {
			covered[i] = true
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if covered[i] {
			b.WriteRune(s.mask)
		} else {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

// clearlyBenign is the fast path: whitespace tokens that are all either
// whitelisted or shorter than three characters cannot produce a match
// worth the full pattern sweep.
func (s *Scanner) clearlyBenign(text string) bool {
	for _, tok := range strings.Fields(text) {
		tok = trimEdges(strings.ToLower(tok))
		if utf8.RuneCountInString(tok) < 3 {
			continue
		}
		if !s.whitelist.Contains(tok) {
			return false
		}
	}
	return true
}

// whitelisted reports whether token is exempt: either a whitelist entry
// itself, or contained in a multiword whitelist phrase.
func (s *Scanner) whitelisted(token string) bool {
	token = strings.ToLower(token)
	if token == "" {
		return false
	}
	if s.whitelist.Contains(token) {
		return true
	}
	for _, entry := range s.whitelist.Words() {
		if strings.Contains(entry, " ") && strings.Contains(entry, token) {
			return true
		}
	}
	return false
}

// containingToken expands a matched span to its whitespace-delimited token
// and trims punctuation from the edges, so "classic," re-checks as
// "classic" and "f.u.c.k" stays intact.
func containingToken(text string, start, end int) string {
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if unicode.IsSpace(r) {
			break
		}
		end += size
	}
	return trimEdges(text[start:end])
}

// trimEdges strips non-letter, non-digit runes from both ends of a token.
func trimEdges(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func languageTag(byLang map[dict.Language]bool) dict.Language {
	switch {
	case byLang[dict.Tagalog] && byLang[dict.English]:
		return dict.Mixed
	case byLang[dict.Tagalog]:
		return dict.Tagalog
	case byLang[dict.English]:
		return dict.English
	}
	return ""
}
