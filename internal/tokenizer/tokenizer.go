// Package tokenizer scans chat text for //name(args)! mentions. The scanner
// tracks lexical state so mentions inside inline code, fenced code, or
// already-expanded snippet blocks are never picked up again.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/snipmux/snipmux/internal/models"
)

// Markers for expanded snippet blocks. The open/close pair drives the
// tokenizer's nesting counter; the engine uses the same pair when wrapping
// injected content.
const (
	BlockOpenPrefix = "<snippet "
	BlockClose      = "</snippet>"
)

const fence = "```"

// Occurrence is one mention occurrence with its position in the source text
type Occurrence struct {
	Mention models.Mention
	Start   int
	End     int
	Literal string
}

// Scan returns every mention occurrence in order of appearance, including
// repeats of the same name. Most callers want DetectMentions; the expansion
// engine needs the raw occurrences for placeholder substitution.
func Scan(text string) []Occurrence {
	var occs []Occurrence

	inFence := false
	inInline := false
	blockDepth := 0

	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], fence) {
			inFence = !inFence
			i += len(fence)
			continue
		}
		if inFence {
			i++
			continue
		}

		if text[i] == '`' {
			inInline = !inInline
			i++
			continue
		}
		if inInline {
			i++
			continue
		}

		if strings.HasPrefix(text[i:], BlockOpenPrefix) {
			blockDepth++
			i += len(BlockOpenPrefix)
			continue
		}
		if strings.HasPrefix(text[i:], BlockClose) {
			if blockDepth > 0 {
				blockDepth--
			}
			i += len(BlockClose)
			continue
		}
		if blockDepth > 0 {
			i++
			continue
		}

		if strings.HasPrefix(text[i:], "//") && startBoundaryOK(text, i) {
			if occ, next, ok := parseMention(text, i); ok {
				occs = append(occs, occ)
				i = next
				continue
			}
			i += 2
			continue
		}

		i++
	}

	return occs
}

// DetectMentions returns the mentions in text, deduplicated by name as typed.
// The first occurrence wins; downstream expansion decides how repeats are
// handled.
func DetectMentions(text string) []models.Mention {
	occs := Scan(text)
	seen := make(map[string]struct{}, len(occs))
	var mentions []models.Mention
	for _, occ := range occs {
		if _, ok := seen[occ.Mention.Name]; ok {
			continue
		}
		seen[occ.Mention.Name] = struct{}{}
		mentions = append(mentions, occ.Mention)
	}
	return mentions
}

// startBoundaryOK rejects // that is part of a URL or path: the preceding
// rune must not be a colon, a word character, or another slash.
func startBoundaryOK(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	if r == ':' || r == '/' {
		return false
	}
	return !isNameRune(r)
}

// isNameRune reports whether r may appear in a mention name
func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// parseMention parses one mention starting at the // at offset i. Returns
// the occurrence, the offset just past it, and whether a well-formed mention
// was found.
func parseMention(text string, i int) (Occurrence, int, bool) {
	j := i + 2

	// the name is the longest run of letters/digits/underscore/hyphen
	// starting with a letter or digit
	start := j
	for j < len(text) {
		r, size := utf8.DecodeRuneInString(text[j:])
		if !isNameRune(r) {
			break
		}
		j += size
	}
	name := text[start:j]
	if name == "" {
		return Occurrence{}, 0, false
	}
	if first, _ := utf8.DecodeRuneInString(name); first == '_' || first == '-' {
		return Occurrence{}, 0, false
	}

	mention := models.Mention{Name: name}

	// optional parenthesized argument list, immediately after the name;
	// an unterminated list degrades to a mention with no arguments
	if j < len(text) && text[j] == '(' {
		if close, ok := findArgsEnd(text, j); ok {
			mention.Args = ParseArgs(text[j+1 : close])
			j = close + 1
		}
	}

	// optional trailing ! forces re-injection
	if j < len(text) && text[j] == '!' {
		mention.Forced = true
		j++
	}

	return Occurrence{
		Mention: mention,
		Start:   i,
		End:     j,
		Literal: text[i:j],
	}, j, true
}

// findArgsEnd locates the close paren matching the open paren at offset
// open, honoring single/double quotes and nested parens. Returns false when
// the list is unterminated (including an unbalanced quote running to the end
// of text).
func findArgsEnd(text string, open int) (int, bool) {
	depth := 0
	var quote byte

	for k := open; k < len(text); k++ {
		c := text[k]

		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k, true
			}
		}
	}

	return 0, false
}
