package tokenizer

import (
	"strings"

	"github.com/snipmux/snipmux/internal/models"
)

// ParseArgs parses the text between a mention's parentheses. When it
// contains key=value pairs those become named arguments; otherwise the whole
// text (with one layer of surrounding quotes unwrapped) is a single
// positional argument under models.PositionalArgKey.
func ParseArgs(s string) map[string]string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	named := make(map[string]string)
	for _, seg := range splitArgs(s) {
		key, value, ok := splitKeyValue(seg)
		if !ok {
			continue
		}
		named[key] = unquote(value)
	}
	if len(named) > 0 {
		return named
	}

	return map[string]string{
		models.PositionalArgKey: unquote(strings.TrimSpace(s)),
	}
}

// splitArgs splits on top-level commas, leaving quoted commas alone
func splitArgs(s string) []string {
	var segs []string
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"':
			quote = c
		case ',':
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	segs = append(segs, s[start:])

	return segs
}

// splitKeyValue recognizes one key=value segment. The key must be a plain
// name; anything else makes the segment invalid.
func splitKeyValue(seg string) (string, string, bool) {
	eq := strings.IndexByte(seg, '=')
	if eq < 0 {
		return "", "", false
	}

	key := strings.TrimSpace(seg[:eq])
	if key == "" {
		return "", "", false
	}
	for _, r := range key {
		if !isNameRune(r) {
			return "", "", false
		}
	}

	return key, strings.TrimSpace(seg[eq+1:]), true
}

// unquote strips one layer of matching single or double quotes
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
