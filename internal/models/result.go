package models

// ExpansionResult is the outcome of expanding one message. NewRefs is a
// delta: the caller merges it into the session store, the engine never
// mutates the store itself.
type ExpansionResult struct {
	Text        string               `json:"text"`
	Found       []string             `json:"found,omitempty"`
	Reused      []string             `json:"reused,omitempty"`
	NotFound    []string             `json:"not_found,omitempty"`
	Suggestions map[string][]string  `json:"suggestions,omitempty"`
	Hints       []string             `json:"hints,omitempty"`
	Warnings    []string             `json:"warnings,omitempty"`
	NewRefs     map[string]Reference `json:"new_refs,omitempty"`
}

// AutoMatchResult partitions auto-matched snippets by how they should be
// surfaced: injected silently, expanded via a synthesized mention, or
// suggested to the user.
type AutoMatchResult struct {
	AutoApply         []string `json:"auto_apply,omitempty"`
	AutoApplyExpanded []string `json:"auto_apply_expanded,omitempty"`
	HintOnly          []string `json:"hint_only,omitempty"`
}
