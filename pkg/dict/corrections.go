package dict

import "strings"

// Correction is one known wrong-form to canonical-form pair.
type Correction struct {
	Wrong     string
	Canonical string
}

// CorrectionMap is an immutable, ordered misspelling map for one language.
// Many wrong forms may share a canonical form. Pair order follows the
// compiled-in data so iteration stays reproducible.
type CorrectionMap struct {
	m     map[string]string
	pairs []Correction
}

// NewCorrectionMap builds an ordered map from pairs. Lookups are
// case-insensitive; the first pair wins when a wrong form repeats.
func NewCorrectionMap(pairs []Correction) *CorrectionMap {
	c := &CorrectionMap{
		m:     make(map[string]string, len(pairs)),
		pairs: make([]Correction, 0, len(pairs)),
	}
	for _, p := range pairs {
		wrong := strings.ToLower(strings.TrimSpace(p.Wrong))
		if wrong == "" {
			continue
		}
		if _, dup := c.m[wrong]; dup {
			continue
		}
		c.m[wrong] = p.Canonical
		c.pairs = append(c.pairs, Correction{Wrong: wrong, Canonical: p.Canonical})
	}
	return c
}

// Lookup returns the canonical form for a known misspelling.
func (c *CorrectionMap) Lookup(word string) (string, bool) {
	if c == nil || word == "" {
		return "", false
	}
	canon, ok := c.m[strings.ToLower(word)]
	return canon, ok
}

// Pairs returns all pairs in their compiled-in order. The returned slice is
// shared; callers must not modify it.
func (c *CorrectionMap) Pairs() []Correction {
	if c == nil {
		return nil
	}
	return c.pairs
}

// Len returns the number of known misspellings.
func (c *CorrectionMap) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pairs)
}
