package engine

import "regexp"

// VarResolver maps a built-in variable name ({{TODAY}} without the braces)
// to its value. Returning an error leaves the placeholder literal.
type VarResolver func(name string) (string, error)

var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_-]+)\}\}`)

// substitute replaces {{name}} placeholders with mention arguments first,
// then resolver-supplied variables. Unknown placeholders stay literal, and
// the whole pass runs once so substituted values are never re-expanded.
func substitute(content string, args map[string]string, vars VarResolver) string {
	return placeholderRe.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-2]

		if val, ok := args[name]; ok {
			return val
		}
		if vars != nil {
			if val, err := vars(name); err == nil {
				return val
			}
		}
		return match
	})
}
