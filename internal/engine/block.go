package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/snipmux/snipmux/internal/tokenizer"
)

var (
	// [ref:name-id]: the name may itself contain hyphens, so the greedy
	// first group runs to the last hyphen and the rest is the id
	refTagRe = regexp.MustCompile(`\[ref:([A-Za-z0-9][A-Za-z0-9_-]*)-([a-z0-9]+)\]`)

	// opening tag of a full injection block
	blockOpenRe = regexp.MustCompile(`<snippet name="([^"]+)" id="([a-z0-9]+)">`)

	// bare ref:name outside tag syntax
	literalRefRe = regexp.MustCompile(`\bref:([A-Za-z0-9][A-Za-z0-9_-]*)`)
)

// FullBlock wraps expanded snippet content in its tagged block. The tag pair
// doubles as the tokenizer's already-expanded region marker.
func FullBlock(name, id, content string) string {
	return fmt.Sprintf("%sname=%q id=%q>\n%s\n%s",
		tokenizer.BlockOpenPrefix, name, id, content, tokenizer.BlockClose)
}

// RefTag is the short placeholder pointing at an already injected block
func RefTag(name, id string) string {
	return fmt.Sprintf("[ref:%s-%s]", name, id)
}

// hasFullBlock reports whether text contains a full injection block for name
func hasFullBlock(text, name string) bool {
	return strings.Contains(text, tokenizer.BlockOpenPrefix+fmt.Sprintf("name=%q", name))
}

// referenceForm is one syntax that marks a snippet as already referenced in
// text. The forms are an ordered, extensible list: collect pulls names out,
// strip removes the form's regions so tag matching never sees them.
type referenceForm struct {
	name    string
	collect func(text string, add func(string))
	strip   func(text string) string
}

var referenceForms = []referenceForm{
	{
		name: "expanded-block",
		collect: func(text string, add func(string)) {
			for _, m := range blockOpenRe.FindAllStringSubmatch(text, -1) {
				add(m[1])
			}
		},
		strip: stripExpandedBlocks,
	},
	{
		name: "reference-tag",
		collect: func(text string, add func(string)) {
			for _, m := range refTagRe.FindAllStringSubmatch(text, -1) {
				add(m[1])
			}
		},
		strip: func(text string) string {
			return refTagRe.ReplaceAllString(text, "")
		},
	},
	{
		name: "literal-ref",
		collect: func(text string, add func(string)) {
			for _, m := range literalRefRe.FindAllStringSubmatch(text, -1) {
				add(m[1])
			}
		},
		strip: func(text string) string {
			return literalRefRe.ReplaceAllString(text, "")
		},
	},
}

// ExtractEmbeddedReferences returns the snippet names already referenced in
// text through any known reference form, in first-seen order.
func ExtractEmbeddedReferences(text string) []string {
	names, _ := extractReferences(text)
	return names
}

// extractReferences collects referenced names and returns the text with
// every reference region removed. Forms run in order: blocks first, so a
// reference tag inside a block is not double-counted with a stale name.
func extractReferences(text string) ([]string, string) {
	var names []string
	seen := make(map[string]struct{})
	add := func(n string) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}

	for _, form := range referenceForms {
		form.collect(text, add)
		text = form.strip(text)
	}

	return names, text
}

// stripExpandedBlocks removes every full injection block, including nested
// ones, leaving the surrounding text intact
func stripExpandedBlocks(text string) string {
	if !strings.Contains(text, tokenizer.BlockOpenPrefix) {
		return text
	}

	var sb strings.Builder
	depth := 0
	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], tokenizer.BlockOpenPrefix) {
			depth++
			i += len(tokenizer.BlockOpenPrefix)
			continue
		}
		if strings.HasPrefix(text[i:], tokenizer.BlockClose) {
			if depth > 0 {
				depth--
			}
			i += len(tokenizer.BlockClose)
			continue
		}
		if depth == 0 {
			sb.WriteByte(text[i])
		}
		i++
	}
	return sb.String()
}
