// Package tags implements the tag expression language used for snippet
// auto-matching: bare words, (a|b) OR-groups, [a,b] AND-groups, and
// position-sensitive a->b sequences.
package tags

import "strings"

// Tag is the closed variant set of tag expressions. Exactly four shapes
// implement it: Word, OrGroup, AndGroup and Sequence.
type Tag interface {
	isTag()
}

// Word matches when the word occurs as a whole word in content. The text may
// itself be a |-delimited set of literal alternatives.
type Word struct {
	Text string
}

// OrGroup matches when any alternative occurs as a whole word
type OrGroup struct {
	Alternatives []string
}

// AndGroup matches when every item occurs somewhere in content, in any order
type AndGroup struct {
	Items []string
}

// Sequence matches when its steps occur at strictly increasing positions,
// left to right
type Sequence struct {
	Steps []Step
}

// StepKind discriminates the shapes a sequence step can take
type StepKind int

const (
	StepWord StepKind = iota
	StepOr
	StepAnd
)

// Step is one element of a Sequence
type Step struct {
	Kind  StepKind
	Words []string
}

func (Word) isTag()     {}
func (OrGroup) isTag()  {}
func (AndGroup) isTag() {}
func (Sequence) isTag() {}

// IsGroup reports whether a tag counts as a "group" for auto-match scoring:
// an AndGroup or Sequence carries enough signal on its own, a bare Word or
// OrGroup does not.
func IsGroup(t Tag) bool {
	switch t.(type) {
	case AndGroup, Sequence:
		return true
	}
	return false
}

// Parse turns one tag string into its Tag variant:
//
//	"debug"                     -> Word
//	"fix|repair"                -> Word with inline alternatives
//	"(fix|repair)"              -> OrGroup
//	"[inspect,changes]"         -> AndGroup
//	"inspect->[changes,staged]" -> Sequence
func Parse(s string) Tag {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "->") {
		return parseSequence(s)
	}

	if inner, ok := unwrap(s, "[", "]"); ok {
		return AndGroup{Items: splitParts(inner, ",")}
	}

	if inner, ok := unwrap(s, "(", ")"); ok {
		return OrGroup{Alternatives: splitParts(inner, "|")}
	}

	return Word{Text: strings.ToLower(s)}
}

// parseSequence splits on -> and classifies each step
func parseSequence(s string) Sequence {
	var steps []Step
	for _, raw := range strings.Split(s, "->") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if inner, ok := unwrap(raw, "[", "]"); ok {
			steps = append(steps, Step{Kind: StepAnd, Words: splitParts(inner, ",")})
			continue
		}
		if inner, ok := unwrap(raw, "(", ")"); ok {
			steps = append(steps, Step{Kind: StepOr, Words: splitParts(inner, "|")})
			continue
		}
		// a bare step with pipes behaves like an OR-step
		if strings.Contains(raw, "|") {
			steps = append(steps, Step{Kind: StepOr, Words: splitParts(raw, "|")})
			continue
		}
		steps = append(steps, Step{Kind: StepWord, Words: []string{strings.ToLower(raw)}})
	}
	return Sequence{Steps: steps}
}

func unwrap(s, open, close string) (string, bool) {
	if strings.HasPrefix(s, open) && strings.HasSuffix(s, close) && len(s) >= len(open)+len(close) {
		return s[len(open) : len(s)-len(close)], true
	}
	return "", false
}

// splitParts splits on sep, trimming and lowercasing each part and dropping
// empties
func splitParts(s, sep string) []string {
	var parts []string
	for _, p := range strings.Split(s, sep) {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
