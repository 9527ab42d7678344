package models

// Reference records that a snippet was fully injected at some point in a
// session. The id stays stable for the lifetime of the session; MessageID is
// the message that last carried the full injection, and Implicit marks
// references created by an embedded lazy reference rather than an explicit
// mention.
type Reference struct {
	ID        string `json:"id"`
	MessageID string `json:"message_id"`
	Implicit  bool   `json:"implicit,omitempty"`
}
