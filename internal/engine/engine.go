// Package engine implements snippet expansion and auto-matching. The engine
// is pure with respect to its inputs: the session store is only read, and
// new or updated references come back as a delta the caller merges.
package engine

import (
	"fmt"
	"strings"

	"github.com/snipmux/snipmux/internal/catalog"
	"github.com/snipmux/snipmux/internal/matcher"
	"github.com/snipmux/snipmux/internal/models"
	"github.com/snipmux/snipmux/internal/session"
	"github.com/snipmux/snipmux/internal/tokenizer"
)

// suggestionLimit caps ranked suggestions per unresolved name
const suggestionLimit = 3

// Config carries the host-supplied expansion knobs
type Config struct {
	// Deduplicate collapses repeats of a mention within one message into
	// short reference tags
	Deduplicate bool
	// MaxNestingDepth limits nested expansion independently of cycle
	// detection
	MaxNestingDepth int
}

// Expand processes one message: every well-formed mention is resolved and
// replaced by a full injection block or a short reference tag, nested
// mentions are expanded depth-first, and orphan reference tags are resolved
// in place. Failures degrade per mention; the rest of the message always
// survives.
func Expand(text string, cat *catalog.Catalog, store *session.Store, messageID string, vars VarResolver, cfg Config) *models.ExpansionResult {
	e := &expander{
		cat:       cat,
		store:     store,
		messageID: messageID,
		vars:      vars,
		cfg:       cfg,
		res: &models.ExpansionResult{
			Suggestions: make(map[string][]string),
			NewRefs:     make(map[string]models.Reference),
		},
	}

	e.res.Text = e.run(text)
	return e.res
}

type expander struct {
	cat       *catalog.Catalog
	store     *session.Store
	messageID string
	vars      VarResolver
	cfg       Config
	res       *models.ExpansionResult
}

// lookupRef finds the current reference for a snippet name, preferring
// references created earlier in this same call
func (e *expander) lookupRef(name string) (models.Reference, bool) {
	if ref, ok := e.res.NewRefs[name]; ok {
		return ref, true
	}
	if e.store != nil {
		return e.store.Get(name)
	}
	return models.Reference{}, false
}

func (e *expander) run(text string) string {
	occs := tokenizer.Scan(text)

	// Replace every occurrence with a unique opaque placeholder up front,
	// so substituting one mention can never corrupt another that shares a
	// substring.
	var sb strings.Builder
	last := 0
	tokens := make([]string, len(occs))
	for i, occ := range occs {
		sb.WriteString(text[last:occ.Start])
		tokens[i] = fmt.Sprintf("\x00snip:%d\x00", i)
		sb.WriteString(tokens[i])
		last = occ.End
	}
	sb.WriteString(text[last:])
	working := sb.String()

	// group occurrences by name as typed, in order of first appearance
	var order []string
	byName := make(map[string][]int)
	for i, occ := range occs {
		name := occ.Mention.Name
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], i)
	}

	replacements := make(map[string]string, len(occs))
	for _, typed := range order {
		idxs := byName[typed]
		mention := occs[idxs[0]].Mention // first occurrence wins

		sn := e.cat.Resolve(typed)
		if sn == nil {
			e.res.NotFound = appendUnique(e.res.NotFound, typed)
			if _, ok := e.res.Suggestions[typed]; !ok {
				if sugg := matcher.Suggest(typed, e.cat.AllNames(), suggestionLimit); len(sugg) > 0 {
					e.res.Suggestions[typed] = sugg
				}
			}
			// restore the literal mention text
			for _, i := range idxs {
				replacements[tokens[i]] = occs[i].Literal
			}
			continue
		}

		prior, hasPrior := e.lookupRef(sn.Name)
		if hasPrior && !prior.Implicit && !mention.Forced {
			// already explicitly injected this session: reference only
			tag := RefTag(sn.Name, prior.ID)
			for _, i := range idxs {
				replacements[tokens[i]] = tag
			}
			e.res.Reused = appendUnique(e.res.Reused, sn.Name)
			continue
		}

		id := DeriveID(e.messageID, sn.Name, nil)
		if hasPrior {
			id = prior.ID
		}
		e.res.NewRefs[sn.Name] = models.Reference{ID: id, MessageID: e.messageID}
		e.res.Found = appendUnique(e.res.Found, sn.Name)

		block := e.inject(sn, mention.Args, nil, 0, id)
		for k, i := range idxs {
			if k == 0 || !e.cfg.Deduplicate {
				replacements[tokens[i]] = block
			} else {
				replacements[tokens[i]] = RefTag(sn.Name, id)
			}
		}
	}

	for token, repl := range replacements {
		working = strings.Replace(working, token, repl, 1)
	}

	return e.expandOrphanRefs(working)
}

// inject builds the full injection block for a snippet at the given nesting
// depth. chain holds the ancestors, not the snippet itself.
func (e *expander) inject(sn *models.Snippet, args map[string]string, chain []string, depth int, id string) string {
	content := substitute(sn.Content, args, e.vars)

	switch sn.Nesting {
	case models.NestingHintsOnly:
		if nested := tokenizer.DetectMentions(content); len(nested) > 0 {
			names := make([]string, len(nested))
			for i, m := range nested {
				names[i] = m.Name
			}
			e.res.Hints = append(e.res.Hints, fmt.Sprintf(
				"%s: nesting disabled, would expand: %s", sn.Name, strings.Join(names, ", ")))
		}
	case models.NestingEnabled:
		content = e.expandNested(content, append(chain, sn.Name), depth+1)
	}

	return FullBlock(sn.Name, id, content)
}

// expandNested runs the expansion algorithm on a snippet's own content,
// depth-first, carrying the ancestor chain for cycle detection and id
// derivation
func (e *expander) expandNested(text string, chain []string, depth int) string {
	occs := tokenizer.Scan(text)
	if len(occs) == 0 {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, occ := range occs {
		sb.WriteString(text[last:occ.Start])
		sb.WriteString(e.resolveNested(occ, chain, depth))
		last = occ.End
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// resolveNested handles one nested mention occurrence and returns its
// replacement text
func (e *expander) resolveNested(occ tokenizer.Occurrence, chain []string, depth int) string {
	typed := occ.Mention.Name

	sn := e.cat.Resolve(typed)
	if sn == nil {
		e.res.NotFound = appendUnique(e.res.NotFound, typed)
		if _, ok := e.res.Suggestions[typed]; !ok {
			if sugg := matcher.Suggest(typed, e.cat.AllNames(), suggestionLimit); len(sugg) > 0 {
				e.res.Suggestions[typed] = sugg
			}
		}
		return occ.Literal
	}

	// cycle: stop this branch, keep a short reference instead of looping
	if i := indexOf(chain, sn.Name); i >= 0 {
		cycle := append(append([]string{}, chain[i:]...), sn.Name)
		e.res.Warnings = append(e.res.Warnings, "circular reference: "+strings.Join(cycle, " -> "))

		id := DeriveID(e.messageID, sn.Name, chain)
		if ref, ok := e.lookupRef(sn.Name); ok {
			id = ref.ID
		}
		return RefTag(sn.Name, id)
	}

	if depth > e.cfg.MaxNestingDepth {
		e.res.Warnings = append(e.res.Warnings, fmt.Sprintf(
			"max nesting depth %d exceeded at %s", e.cfg.MaxNestingDepth, strings.Join(append(append([]string{}, chain...), sn.Name), " -> ")))
		return occ.Literal
	}

	prior, hasPrior := e.lookupRef(sn.Name)
	if hasPrior && !prior.Implicit && !occ.Mention.Forced {
		e.res.Reused = appendUnique(e.res.Reused, sn.Name)
		return RefTag(sn.Name, prior.ID)
	}

	id := DeriveID(e.messageID, sn.Name, chain)
	if hasPrior {
		id = prior.ID
	}
	e.res.NewRefs[sn.Name] = models.Reference{ID: id, MessageID: e.messageID}
	e.res.Found = appendUnique(e.res.Found, sn.Name)

	return e.inject(sn, occ.Mention.Args, chain, depth, id)
}

// expandOrphanRefs finds short reference tags with no matching full block in
// the current text and expands them in place, unless the reference belongs
// to a previous message or the snippet is marked non-expanding; those stay
// lazy pointers.
func (e *expander) expandOrphanRefs(text string) string {
	matches := refTagRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	expanded := make(map[string]bool)
	var sb strings.Builder
	last := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		name := text[m[2]:m[3]]
		tagID := text[m[4]:m[5]]

		sb.WriteString(text[last:start])
		last = end

		replacement := text[start:end]
		if !hasFullBlock(text, name) && !expanded[name] {
			if block, ok := e.orphanBlock(name, tagID); ok {
				replacement = block
				expanded[name] = true
			}
		}
		sb.WriteString(replacement)
	}
	sb.WriteString(text[last:])

	return sb.String()
}

// orphanBlock decides whether an orphan reference tag may expand in place
// and builds its block if so
func (e *expander) orphanBlock(name, tagID string) (string, bool) {
	ref, hasRef := e.lookupRef(name)
	if hasRef && ref.MessageID != e.messageID {
		// the full block lives in a previous message: stay lazy
		return "", false
	}

	sn := e.cat.Resolve(name)
	if sn == nil || !sn.Expand {
		return "", false
	}

	id := tagID
	if hasRef {
		id = ref.ID
	} else {
		e.res.NewRefs[sn.Name] = models.Reference{ID: id, MessageID: e.messageID, Implicit: true}
		e.res.Found = appendUnique(e.res.Found, sn.Name)
	}

	return e.inject(sn, nil, nil, 0, id), true
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
