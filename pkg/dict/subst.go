package dict

// SubstitutionTable maps a base letter to the ordered set of look-alike
// characters (or short sequences) that may stand in for it in obfuscated
// text. Shared process-wide and never mutated.
type SubstitutionTable map[rune][]string

// DefaultSubstitutions returns the leetspeak table used by the profanity
// pattern compiler. The base letter itself is always the first alternative.
func DefaultSubstitutions() SubstitutionTable {
	return SubstitutionTable{
		'a': {"a", "4", "@"},
		'b': {"b", "8"},
		'e': {"e", "3"},
		'g': {"g", "9", "6"},
		'i': {"i", "1", "!", "|"},
		'l': {"l", "1"},
		'o': {"o", "0", "()"},
		's': {"s", "5", "$", "z"},
		't': {"t", "7", "+"},
		'u': {"u", "v"},
	}
}

// LeetToLetter is the reverse mapping used by the scanner's normalization
// fallback. Multi-character stand-ins are intentionally absent; those only
// matter to the compiled patterns.
func LeetToLetter() map[rune]rune {
	return map[rune]rune{
		'4': 'a', '@': 'a',
		'8': 'b',
		'3': 'e',
		'9': 'g', '6': 'g',
		'1': 'i', '!': 'i', '|': 'i',
		'0': 'o',
		'5': 's', '$': 's',
		'7': 't', '+': 't',
	}
}
