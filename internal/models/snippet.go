package models

// AutomentionMode controls whether a snippet may be injected without an
// explicit mention
type AutomentionMode string

const (
	AutomentionAlways         AutomentionMode = "always"
	AutomentionAlwaysExpanded AutomentionMode = "always-expanded"
	AutomentionNever          AutomentionMode = "never"
)

// NestingMode controls how mentions inside a snippet's own content are handled
type NestingMode string

const (
	NestingDisabled  NestingMode = "disabled"
	NestingHintsOnly NestingMode = "hints-only"
	NestingEnabled   NestingMode = "enabled"
)

// ActivationMode controls context-keyed suggestions when an agent context
// becomes active
type ActivationMode string

const (
	ActivationNone     ActivationMode = ""
	ActivationHint     ActivationMode = "hint"
	ActivationExpanded ActivationMode = "expanded"
)

// Origin identifies which tier a snippet definition was loaded from
type Origin string

const (
	OriginProject Origin = "project"
	OriginGlobal  Origin = "global"
	OriginBundled Origin = "bundled"
)

// Snippet is a read-only catalog entry: a named, reusable block of content
// with matching metadata
type Snippet struct {
	Name        string          `json:"name"`
	Aliases     []string        `json:"aliases,omitempty"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	OnlyFor     []string        `json:"only_for,omitempty"`
	Automention AutomentionMode `json:"automention"`
	Nesting     NestingMode     `json:"nesting"`
	Expand      bool            `json:"expand"`
	Activation  ActivationMode  `json:"activation,omitempty"`
	Content     string          `json:"content"`
	Origin      Origin          `json:"origin,omitempty"`
}
