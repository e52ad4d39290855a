// Package service defines interfaces to external collaborators.
package service

import "context"

// Chat roles on the completion wire format.
const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one role-tagged message of an outbound completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient talks to the remote chat-completion endpoint. Any network
// fault, non-2xx status or malformed/empty answer surfaces as an error; the
// caller treats every error uniformly and falls back to a local answer.
type CompletionClient interface {
	// Complete sends the ordered message list (system, history, question)
	// and returns the first choice's content.
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
