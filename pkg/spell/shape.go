package spell

import "strings"

// shapeProfile holds one language's word-shape plausibility limits. A token
// violating any limit cannot be a word of that language, whatever the
// dictionary says.
type shapeProfile struct {
	vowels            string
	longNoVowelLen    int // words at least this long must carry a vowel
	maxRepeat         int // identical letters in a row
	maxConsonantRun   int
	maxVowelRun       int
	maxLeadingConsRun int
	rarePairs         []string
}

var englishShape = shapeProfile{
	vowels:            "aeiou",
	longNoVowelLen:    5,
	maxRepeat:         2,
	maxConsonantRun:   4,
	maxVowelRun:       3,
	maxLeadingConsRun: 3,
	rarePairs:         []string{"qx", "xq", "qz", "zq", "jq", "qj", "vq", "jx", "xj", "vx"},
}

// Tagalog is vowel-heavy; consonant clusters beyond ng/ts digraphs are rare,
// so the consonant-run bound is one tighter than English.
var tagalogShape = shapeProfile{
	vowels:            "aeiou",
	longNoVowelLen:    4,
	maxRepeat:         2,
	maxConsonantRun:   3,
	maxVowelRun:       3,
	maxLeadingConsRun: 3,
	rarePairs:         []string{"qx", "xq", "qz", "zq", "jq", "qj", "vq", "jx", "xj", "fj", "zv"},
}

// implausible reports whether the lowercase word breaks any of the
// profile's impossibility patterns.
func implausible(word string, p shapeProfile) bool {
	if word == "" {
		return false
	}
	runes := []rune(word)

	if len(runes) >= p.longNoVowelLen && !strings.ContainsAny(word, p.vowels) {
		return true
	}

	for _, pair := range p.rarePairs {
		if strings.Contains(word, pair) {
			return true
		}
	}

	repeat, consRun, vowelRun := 1, 0, 0
	leading := true
	leadingRun := 0
	var prev rune
	for i, r := range runes {
		if i > 0 && r == prev {
			repeat++
			if repeat > p.maxRepeat {
				return true
			}
		} else {
			repeat = 1
		}
		prev = r

		isVowel := strings.ContainsRune(p.vowels, r)
		if isVowel {
			vowelRun++
			consRun = 0
			leading = false
			if vowelRun > p.maxVowelRun {
				return true
			}
		} else {
			consRun++
			vowelRun = 0
			if consRun > p.maxConsonantRun {
				return true
			}
			if leading {
				leadingRun++
				if leadingRun > p.maxLeadingConsRun {
					return true
				}
			}
		}
	}
	return false
}
