package matcher

import (
	"sort"
	"strings"
)

// Normalize lowercases a name and strips hyphens and underscores, so
// "5-approaches" and "5_Approaches" share the form "5approaches".
// Resolve and Suggest must agree on this form.
func Normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}

// Resolve maps input to a candidate name. A verbatim match always wins;
// otherwise the candidate whose normalized form equals the normalized input
// is returned. Prefixes never resolve silently; that is Suggest's job.
// Returns "" when nothing matches.
func Resolve(input string, candidates []string) string {
	for _, c := range candidates {
		if c == input {
			return c
		}
	}

	normalized := Normalize(input)
	if normalized == "" {
		return ""
	}

	for _, c := range candidates {
		if Normalize(c) == normalized {
			return c
		}
	}

	return ""
}

// Suggest returns up to limit ranked suggestions for a typo. Exact
// normalized matches win outright; otherwise candidates whose normalized
// form starts with the normalized typo are returned, shortest first
// (the most specific completions).
func Suggest(typo string, candidates []string, limit int) []string {
	normalized := Normalize(typo)
	if normalized == "" || limit <= 0 {
		return nil
	}

	var exact []string
	var prefixed []string
	for _, c := range candidates {
		cn := Normalize(c)
		if cn == normalized {
			exact = append(exact, c)
		} else if strings.HasPrefix(cn, normalized) {
			prefixed = append(prefixed, c)
		}
	}

	if len(exact) > 0 {
		if len(exact) > limit {
			exact = exact[:limit]
		}
		return exact
	}

	sort.SliceStable(prefixed, func(i, j int) bool {
		return len(Normalize(prefixed[i])) < len(Normalize(prefixed[j]))
	})

	if len(prefixed) > limit {
		prefixed = prefixed[:limit]
	}
	return prefixed
}
