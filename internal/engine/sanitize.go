package engine

import (
	"regexp"
	"strings"
)

// hintMarker opens an injected hint line
const hintMarker = "[snippet-hint:"

var highlightRe = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// AppendHint appends one hint line to text
func AppendHint(text, hint string) string {
	return text + "\n" + hintMarker + " " + hint + "]"
}

// StripHints removes every injected hint line. Safe no-op on clean text, so
// hosts can run it before re-processing previously processed messages.
func StripHints(text string) string {
	if !strings.Contains(text, hintMarker) {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, hintMarker) && strings.HasSuffix(trimmed, "]") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// StripHighlights unwraps [[keyword]] highlight brackets. Idempotent.
func StripHighlights(text string) string {
	return highlightRe.ReplaceAllString(text, "$1")
}

// HighlightKeywords wraps the first whole-word occurrence of each keyword in
// highlight brackets, for showing a user why a snippet matched. Keywords
// reported comma-joined (AND-steps) are highlighted individually.
func HighlightKeywords(text string, keywords []string) string {
	for _, kw := range keywords {
		for _, word := range strings.Split(kw, ",") {
			text = highlightWord(text, word)
		}
	}
	return text
}

func highlightWord(text, word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return text
	}

	lower := strings.ToLower(text)
	word = strings.ToLower(word)

	from := 0
	for {
		i := strings.Index(lower[from:], word)
		if i < 0 {
			return text
		}
		pos := from + i
		end := pos + len(word)
		if wordBoundary(lower, pos, end) {
			return text[:pos] + "[[" + text[pos:end] + "]]" + text[end:]
		}
		from = pos + 1
	}
}

func wordBoundary(lower string, pos, end int) bool {
	boundary := func(c byte) bool {
		return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c >= 0x80)
	}
	if pos > 0 && !boundary(lower[pos-1]) {
		return false
	}
	if end < len(lower) && !boundary(lower[end]) {
		return false
	}
	return true
}
