package dict

// Corpus bundles everything the analyzers know about one language: its
// common-word set, its misspelling map, and its profane root words.
type Corpus struct {
	Lang        Language
	Words       *WordSet
	Corrections *CorrectionMap
	Roots       []string
}

// NewEnglishCorpus builds the English corpus from the compiled-in data.
func NewEnglishCorpus() *Corpus {
	return &Corpus{
		Lang:        English,
		Words:       NewWordSet(englishWords...),
		Corrections: NewCorrectionMap(englishCorrections),
		Roots:       englishRoots,
	}
}

// NewTagalogCorpus builds the Tagalog corpus from the compiled-in data.
func NewTagalogCorpus() *Corpus {
	return &Corpus{
		Lang:        Tagalog,
		Words:       NewWordSet(tagalogWords...),
		Corrections: NewCorrectionMap(tagalogCorrections),
		Roots:       tagalogRoots,
	}
}

// NewWhitelist builds the set of words and phrases that must never be
// treated as profanity, even when they structurally contain a flagged root.
func NewWhitelist() *WordSet {
	return NewWordSet(whitelistEntries...)
}
