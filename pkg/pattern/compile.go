package pattern

import (
	"regexp"
	"strings"

	"github.com/campuslink/textguard/pkg/dict"
	"github.com/charmbracelet/log"
)

// separatorClass is the run of characters tolerated between root characters
// by the spaced variant. Bounded so unrelated words with incidental
// punctuation between them do not bridge into a match.
const separatorClass = `[\s.\-_*]{0,2}`

// neverMatch is used if a root somehow lowers into an invalid expression;
// text cannot continue past its end, so this cannot match.
const neverMatch = `\za`

// Matcher recognizes one root word and its substitution, elongation and
// separator variants. Safe for concurrent use once built.
type Matcher struct {
	root   string
	plain  *regexp.Regexp
	spaced *regexp.Regexp
}

// Compile builds the matcher for a root word. It is pure and total: an
// unrecognized character always degrades to literal matching, never to an
// error.
func Compile(root string, subs dict.SubstitutionTable) *Matcher {
	steps := Parse(strings.ToLower(root), subs)
	return &Matcher{
		root:   strings.ToLower(root),
		plain:  mustCompile(lower(steps, false)),
		spaced: mustCompile(lower(steps, true)),
	}
}

// lower renders the step sequence as a regular expression. Every segment is
// quantified with + so repeated look-alikes ("fuuck", "shiit") collapse into
// the same match. When spaced is set, a bounded separator run is permitted
// between consecutive steps but never before the first or after the last.
func lower(steps []Step, spaced bool) string {
	var b strings.Builder
	b.WriteString(`(?i)`)
	for i, st := range steps {
		if spaced && i > 0 {
			b.WriteString(separatorClass)
		}
		b.WriteString(segment(st))
	}
	return b.String()
}

// segment renders a single step as a quantified alternation group.
func segment(st Step) string {
	if st.Kind == StepLiteral {
		return `(?:` + regexp.QuoteMeta(string(st.Literal)) + `)+`
	}
	quoted := make([]string, len(st.Alts))
	for i, alt := range st.Alts {
		quoted[i] = regexp.QuoteMeta(alt)
	}
	return `(?:` + strings.Join(quoted, `|`) + `)+`
}

func mustCompile(expr string) *regexp.Regexp {
	re, err := regexp.Compile(expr)
	if err != nil {
		// Should be unreachable: every alternative is QuoteMeta'd.
		log.Errorf("pattern: compiling %q: %v", expr, err)
		return regexp.MustCompile(neverMatch)
	}
	return re
}

// Root returns the root word this matcher was compiled from.
func (m *Matcher) Root() string {
	return m.root
}

// FindAll returns all non-overlapping byte spans the plain variant matches
// in text, in one pass.
func (m *Matcher) FindAll(text string) [][]int {
	return m.plain.FindAllStringIndex(text, -1)
}

// FindAllSpaced returns all non-overlapping byte spans the
// separator-tolerant variant matches in text.
func (m *Matcher) FindAllSpaced(text string) [][]int {
	return m.spaced.FindAllStringIndex(text, -1)
}

// Matches reports whether either variant matches anywhere in text.
func (m *Matcher) Matches(text string) bool {
	return m.plain.MatchString(text) || m.spaced.MatchString(text)
}
