package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/snipmux/snipmux/internal/catalog"
	"github.com/snipmux/snipmux/internal/models"
	"github.com/snipmux/snipmux/internal/tags"
	"github.com/snipmux/snipmux/internal/tokenizer"
)

// descriptionLead is how many leading characters of a snippet description
// must appear verbatim in text to count as a match
const descriptionLead = 20

// AutoMatch decides which snippets are relevant to free text that carries no
// explicit mention. Snippets already referenced (by mention, reference tag,
// expanded block, or literal ref) never re-trigger. A single loose word
// match is deliberately not enough: one group match, two single matches, or
// a description match is required.
func AutoMatch(text string, cat *catalog.Catalog, activeContext string, explicitlyMentioned []string) *models.AutoMatchResult {
	res := &models.AutoMatchResult{}

	referenced := make(map[string]struct{})
	mark := func(name string) {
		referenced[name] = struct{}{}
		if sn := cat.Resolve(name); sn != nil {
			referenced[sn.Name] = struct{}{}
		}
	}

	for _, name := range explicitlyMentioned {
		mark(name)
	}
	for _, m := range tokenizer.DetectMentions(text) {
		mark(m.Name)
	}

	embedded, stripped := extractReferences(text)
	for _, name := range embedded {
		mark(name)
	}
	stripped = StripHints(stripped)

	chosen := make(map[string]struct{})
	for _, name := range cat.Names() {
		sn := cat.Get(name)

		if sn.Automention == models.AutomentionNever {
			continue
		}
		if len(sn.OnlyFor) > 0 && !contains(sn.OnlyFor, activeContext) {
			continue
		}
		if _, ok := referenced[name]; ok {
			continue
		}
		if !snippetMatches(stripped, sn) {
			continue
		}

		chosen[name] = struct{}{}
		switch sn.Automention {
		case models.AutomentionAlways:
			res.AutoApply = append(res.AutoApply, name)
		case models.AutomentionAlwaysExpanded:
			res.AutoApplyExpanded = append(res.AutoApplyExpanded, name)
		}
	}

	// activation suggestions are keyed by the active context alone, not by
	// tag matching
	if activeContext != "" {
		for _, name := range cat.Names() {
			sn := cat.Get(name)

			if sn.Activation == models.ActivationNone {
				continue
			}
			if !contains(sn.OnlyFor, activeContext) {
				continue
			}
			if _, ok := referenced[name]; ok {
				continue
			}
			if _, ok := chosen[name]; ok {
				continue
			}

			switch sn.Activation {
			case models.ActivationHint:
				res.HintOnly = append(res.HintOnly, name)
			case models.ActivationExpanded:
				res.AutoApplyExpanded = append(res.AutoApplyExpanded, name)
			}
		}
	}

	return res
}

// MatchDetails reports the tag expressions of a snippet that match text and
// the concrete keywords they matched on, for diagnostics and highlighting
func MatchDetails(text string, sn *models.Snippet) (matched []string, keywords []string) {
	for _, raw := range sn.Tags {
		t := tags.Parse(raw)

		if seq, ok := t.(tags.Sequence); ok {
			if ok, kws := tags.MatchSequence(text, seq); ok {
				matched = append(matched, raw)
				keywords = append(keywords, kws...)
			}
			continue
		}

		if tags.Matches(text, t) {
			matched = append(matched, raw)
		}
	}
	return matched, keywords
}

// snippetMatches applies the auto-match threshold: one group match, two
// single matches, or a description match
func snippetMatches(text string, sn *models.Snippet) bool {
	group, single := 0, 0
	for _, raw := range sn.Tags {
		t := tags.Parse(raw)
		if !tags.Matches(text, t) {
			continue
		}
		if tags.IsGroup(t) {
			group++
		} else {
			single++
		}
	}

	if group >= 1 || single >= 2 {
		return true
	}
	return descriptionMatches(text, sn.Description)
}

// descriptionMatches checks whether the leading characters of the
// description appear verbatim, case-insensitively, in text
func descriptionMatches(text, desc string) bool {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return false
	}

	lead := desc
	if utf8.RuneCountInString(lead) > descriptionLead {
		count := 0
		for i := range lead {
			if count == descriptionLead {
				lead = lead[:i]
				break
			}
			count++
		}
	}

	return strings.Contains(strings.ToLower(text), strings.ToLower(lead))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
