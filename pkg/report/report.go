// Package report defines the issue and report values produced by the text
// analyzers. Issues are plain values: they are created by one analysis call
// and carry no history or backing state.
package report

// Category tells which analyzer produced an issue.
type Category string

const (
	CategorySpelling    Category = "spelling"
	CategoryGrammar     Category = "grammar"
	CategoryReadability Category = "readability"
)

// Severity ranks how strongly an issue should be surfaced.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Weight returns the scoring cost of a severity. Unknown severities cost
// nothing so a malformed issue can never push the quality score below zero
// on its own.
func (s Severity) Weight() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeveritySuggestion:
		return 1
	}
	return 0
}

// Issue is a single defect found in the analyzed text.
// Suggestion and Language are empty when the analyzer has nothing
// confident to offer.
type Issue struct {
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Word       string   `json:"word,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Language   string   `json:"language,omitempty"`
	Rule       string   `json:"rule,omitempty"`
}

// Readability summarizes the Flesch-style estimate over the content text.
type Readability struct {
	Score               float64 `json:"score"`
	Level               string  `json:"level"`
	Sentences           int     `json:"sentences"`
	Words               int     `json:"words"`
	Syllables           int     `json:"syllables"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
}

// AnalysisReport aggregates every issue found in one input together with the
// bounded quality score. QualityScore is always within [0,100] and only moves
// down as the weighted issue count grows.
type AnalysisReport struct {
	Issues       []Issue     `json:"issues"`
	QualityScore int         `json:"quality_score"`
	Readability  Readability `json:"readability"`
	HasProfanity bool        `json:"has_profanity"`
	Status       string      `json:"status"`
}

// TotalWeight sums the severity weights of all issues in the report.
func (r *AnalysisReport) TotalWeight() int {
	total := 0
	for _, is := range r.Issues {
		total += is.Severity.Weight()
	}
	return total
}
