package entity

import "time"

// ChatRole tags a chat turn as coming from the user or the assistant.
type ChatRole string

const (
	// RoleUser marks a turn typed by the user.
	RoleUser ChatRole = "user"
	// RoleAssistant marks a turn produced by the assistant.
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one entry of the bounded conversation history. The sequence is
// append-only and truncated from the front once it exceeds the configured cap.
type ChatTurn struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
