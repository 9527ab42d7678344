package tags

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordChar reports whether r is part of a word. Letters and digits of any
// width count, as does underscore; hyphen does not, so "re-run" contains the
// word "run".
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// indexWordAfter returns the byte offset of the first whole-word occurrence
// of word in content that starts strictly after the given offset, or -1.
// Both strings must already be lowercased.
func indexWordAfter(content, word string, after int) int {
	if word == "" {
		return -1
	}

	from := 0
	for {
		i := strings.Index(content[from:], word)
		if i < 0 {
			return -1
		}
		pos := from + i

		if pos > after && boundaryBefore(content, pos) && boundaryAfter(content, pos+len(word)) {
			return pos
		}
		from = pos + 1
	}
}

func boundaryBefore(content string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(content[:pos])
	return !isWordChar(r)
}

func boundaryAfter(content string, end int) bool {
	if end >= len(content) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(content[end:])
	return !isWordChar(r)
}

// MatchesWord reports whether word occurs in content as a whole word,
// case-insensitively. Substring containment is not enough: "debug" does not
// match "debugger".
func MatchesWord(content, word string) bool {
	return indexWordAfter(strings.ToLower(content), strings.ToLower(word), -1) >= 0
}

// matchesItem matches one group item against lowercased content. An item
// containing pipes is an inline OR of its trimmed parts.
func matchesItem(lower, item string) bool {
	if strings.Contains(item, "|") {
		for _, alt := range splitParts(item, "|") {
			if indexWordAfter(lower, alt, -1) >= 0 {
				return true
			}
		}
		return false
	}
	return indexWordAfter(lower, strings.ToLower(strings.TrimSpace(item)), -1) >= 0
}

// Matches evaluates a tag against content
func Matches(content string, t Tag) bool {
	lower := strings.ToLower(content)

	switch tag := t.(type) {
	case Word:
		return matchesItem(lower, tag.Text)
	case OrGroup:
		for _, alt := range tag.Alternatives {
			if matchesItem(lower, alt) {
				return true
			}
		}
		return false
	case AndGroup:
		if len(tag.Items) == 0 {
			return false
		}
		for _, item := range tag.Items {
			if !matchesItem(lower, item) {
				return false
			}
		}
		return true
	case Sequence:
		ok, _ := MatchSequence(content, tag)
		return ok
	}
	return false
}

// MatchSequence walks the steps left to right with a "last found position"
// cursor. Each step must match strictly after the cursor; an AND-step
// requires every word after the cursor and advances it to the furthest one.
// On success it returns the concrete keyword matched per step (AND-steps
// report their words comma-joined) for highlighting and diagnostics.
func MatchSequence(content string, seq Sequence) (bool, []string) {
	if len(seq.Steps) == 0 {
		return false, nil
	}

	lower := strings.ToLower(content)
	cursor := -1
	matched := make([]string, 0, len(seq.Steps))

	for _, step := range seq.Steps {
		switch step.Kind {
		case StepWord:
			pos := indexWordAfter(lower, step.Words[0], cursor)
			if pos < 0 {
				return false, nil
			}
			cursor = pos
			matched = append(matched, step.Words[0])

		case StepOr:
			// earliest alternative after the cursor wins
			best := -1
			bestWord := ""
			for _, w := range step.Words {
				pos := indexWordAfter(lower, w, cursor)
				if pos >= 0 && (best < 0 || pos < best) {
					best = pos
					bestWord = w
				}
			}
			if best < 0 {
				return false, nil
			}
			cursor = best
			matched = append(matched, bestWord)

		case StepAnd:
			if len(step.Words) == 0 {
				return false, nil
			}
			// every word must occur after the cursor; the new cursor is the
			// furthest of them so a following step lands after all
			max := cursor
			for _, w := range step.Words {
				pos := indexWordAfter(lower, w, cursor)
				if pos < 0 {
					return false, nil
				}
				if pos > max {
					max = pos
				}
			}
			cursor = max
			matched = append(matched, strings.Join(step.Words, ","))
		}
	}

	return true, matched
}
