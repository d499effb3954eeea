package profanity

import (
	"strings"
	"unicode"

	"github.com/campuslink/textguard/pkg/dict"
)

// Normalize lowers obfuscated text back toward its plain spelling so a cheap
// exact whole-word comparison can act as a second recall net behind the
// compiled patterns. The passes run in a fixed order: lowercase, collapse
// elongation runs, undo leetspeak, strip separators, strip punctuation.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = collapseRuns(s)
	s = undoLeet(s)
	return stripNonLetters(s)
}

// collapseRuns shortens any run of three or more identical characters to
// two, which is as much elongation as legitimate spelling ever needs.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var last rune
	run := 0
	for _, r := range s {
		if r == last {
			run++
		} else {
			last = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func undoLeet(s string) string {
	table := dict.LeetToLetter()
	return strings.Map(func(r rune) rune {
		if letter, ok := table[r]; ok {
			return letter
		}
		return r
	}, s)
}

// stripNonLetters removes separators and punctuation, keeping letters and
// whitespace so word boundaries survive.
func stripNonLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
