package repository

import (
	"context"

	"mandoob/internal/domain/entity"
)

// ChatRepository defines access to the bounded conversation history.
type ChatRepository interface {
	// AppendExchange records a completed question/answer pair as two turns,
	// truncates the history to the configured cap (oldest first) and
	// persists it.
	AppendExchange(ctx context.Context, question, answer string) error

	// ChatHistory returns the full retained history, oldest first.
	ChatHistory(ctx context.Context) ([]entity.ChatTurn, error)

	// RecentChatTurns returns at most n of the newest turns, oldest first.
	RecentChatTurns(ctx context.Context, n int) ([]entity.ChatTurn, error)

	// ClearChatHistory drops all retained turns and removes the persisted copy.
	ClearChatHistory(ctx context.Context) error
}
