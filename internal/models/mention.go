package models

// PositionalArgKey is the reserved argument name for a single unnamed
// argument, e.g. //greet(world) stores "world" under this key
const PositionalArgKey = "input"

// Mention is one parsed //name(args)! occurrence in text
type Mention struct {
	Name   string            `json:"name"`
	Forced bool              `json:"forced,omitempty"`
	Args   map[string]string `json:"args,omitempty"`
}
