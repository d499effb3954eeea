package quality

import (
	"strings"
	"unicode"

	"github.com/campuslink/textguard/pkg/report"
)

// Flesch reading-ease coefficients.
const (
	fleschBase      = 206.835
	fleschPerWord   = 1.015
	fleschPerSyllab = 84.6
)

// readabilityLevels buckets a clamped score into seven human labels, from
// hardest to easiest. Thresholds are inclusive lower bounds.
var readabilityLevels = []struct {
	min   float64
	label string
}{
	{90, "Very Easy"},
	{80, "Easy"},
	{70, "Fairly Easy"},
	{60, "Standard"},
	{50, "Fairly Difficult"},
	{30, "Difficult"},
	{0, "Very Difficult"},
}

// EstimateReadability computes a Flesch-style reading-ease score over the
// content text. Empty content reads as trivially easy: the clamped formula
// with zero averages tops out at 100.
func EstimateReadability(content string) report.Readability {
	words := countWords(content)
	sentences := countSentences(content)
	syllables := countSyllables(content)

	var wps, spw float64
	if sentences > 0 {
		wps = float64(words) / float64(sentences)
	}
	if words > 0 {
		spw = float64(syllables) / float64(words)
	}

	score := clamp(fleschBase-fleschPerWord*wps-fleschPerSyllab*spw, 0, 100)

	return report.Readability{
		Score:               score,
		Level:               levelFor(score),
		Sentences:           sentences,
		Words:               words,
		Syllables:           syllables,
		AvgWordsPerSentence: wps,
		AvgSyllablesPerWord: spw,
	}
}

func levelFor(score float64) string {
	for _, lv := range readabilityLevels {
		if score >= lv.min {
			return lv.label
		}
	}
	return readabilityLevels[len(readabilityLevels)-1].label
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func countSentences(text string) int {
	n := 0
	inRun := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inRun {
				n++
			}
			inRun = true
		} else {
			inRun = false
		}
	}
	// An unterminated trailing fragment still counts as a sentence.
	if strings.TrimSpace(text) != "" && !endsWithTerminator(text) {
		n++
	}
	return n
}

func endsWithTerminator(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	last := []rune(trimmed)[len([]rune(trimmed))-1]
	return last == '.' || last == '!' || last == '?'
}

// countSyllables approximates syllables as vowel groups, at least one per
// word that carries letters.
func countSyllables(text string) int {
	total := 0
	for _, word := range strings.Fields(text) {
		total += syllablesIn(word)
	}
	return total
}

func syllablesIn(word string) int {
	groups := 0
	inVowelGroup := false
	hasLetter := false
	for _, r := range word {
		if !unicode.IsLetter(r) {
			inVowelGroup = false
			continue
		}
		hasLetter = true
		if isVowel(r) {
			if !inVowelGroup {
				groups++
			}
			inVowelGroup = true
		} else {
			inVowelGroup = false
		}
	}
	if hasLetter && groups == 0 {
		return 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
