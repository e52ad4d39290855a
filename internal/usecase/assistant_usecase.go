package usecase

import (
	"context"

	"mandoob/internal/domain/entity"
)

// QuestionCategory classifies a user's question to pick the answering strategy.
type QuestionCategory string

const (
	// CategoryWork covers operational questions about invoices, drivers and stock.
	CategoryWork QuestionCategory = "work"
	// CategoryTech covers technical questions unrelated to operations.
	CategoryTech QuestionCategory = "tech"
	// CategoryGeneral covers greetings and everything else.
	CategoryGeneral QuestionCategory = "general"
)

// Answer is the result of a single assistant exchange.
type Answer struct {
	// Content is the assistant reply, always non-empty.
	Content string `json:"content"`
	// Category is the detected question category.
	Category QuestionCategory `json:"category"`
	// Fallback reports whether the reply was generated locally because
	// the completion backend was unreachable or misconfigured.
	Fallback bool `json:"fallback"`
}

// AssistantUsecase defines the interface for the chat assistant.
type AssistantUsecase interface {
	// Ask answers a question, consulting the completion backend when
	// available and falling back to a locally generated reply otherwise.
	// Only one request may be in flight at a time.
	Ask(ctx context.Context, question string) (*Answer, error)

	// History returns the retained conversation turns, oldest first.
	History(ctx context.Context) ([]entity.ChatTurn, error)

	// ClearHistory discards the retained conversation.
	ClearHistory(ctx context.Context) error
}
