/*
Package pattern compiles profane root words into tolerant matchers.

A root is first parsed into a small AST: one step per root character, where
a step is either a literal or a class of look-alike alternatives from the
substitution table. The compiler then lowers the steps into two regular
expressions: a plain variant that absorbs leetspeak substitution and
stylistic elongation, and a separator-tolerant variant that additionally
permits a short run of separator characters between consecutive root
characters ("f.u.c.k", "s h i t").

Compilation never fails: characters the table does not know are matched
literally.
*/
package pattern

import "github.com/campuslink/textguard/pkg/dict"

// StepKind discriminates the AST step variants.
type StepKind int

const (
	// StepLiteral matches one root character with no tolerated stand-ins.
	StepLiteral StepKind = iota
	// StepClass matches any of the alternatives for one root character.
	StepClass
)

// Step is one position of a parsed root word.
type Step struct {
	Kind    StepKind
	Literal rune
	Alts    []string
}

// Parse turns a root word into its step sequence using the given
// substitution table. Characters absent from the table become literal steps.
func Parse(root string, subs dict.SubstitutionTable) []Step {
	steps := make([]Step, 0, len(root))
	for _, r := range root {
		if alts, ok := subs[r]; ok && len(alts) > 0 {
			steps = append(steps, Step{Kind: StepClass, Literal: r, Alts: alts})
			continue
		}
		steps = append(steps, Step{Kind: StepLiteral, Literal: r})
	}
	return steps
}
