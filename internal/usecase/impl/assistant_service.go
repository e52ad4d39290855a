package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"mandoob/config"
	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/domain/service"
	"mandoob/internal/errors"
	"mandoob/internal/usecase"

	"go.uber.org/fx"
)

type assistantService struct {
	chatRepo  repository.ChatRepository
	statsRepo repository.StatisticsProvider
	client    service.CompletionClient
	config    *config.Config
	logger    *slog.Logger

	// inFlight gates the remote call: at most one chat request may be
	// outstanding at a time, mirroring the single submit control.
	inFlight atomic.Bool
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	ChatRepo  repository.ChatRepository
	StatsRepo repository.StatisticsProvider
	Client    service.CompletionClient
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAssistantService creates a new assistant service instance
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		chatRepo:  params.ChatRepo,
		statsRepo: params.StatsRepo,
		client:    params.Client,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// Ask answers one question. The remote backend is consulted first; any fault
// there degrades to the deterministic local fallback. Either way the exchange
// is recorded and the caller always receives a non-empty answer.
func (s *assistantService) Ask(ctx context.Context, question string) (*usecase.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domainerrors.ErrEmptyQuestion
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, domainerrors.ErrAssistantBusy
	}
	defer s.inFlight.Store(false)

	category := classify(question)

	stats, err := s.statsRepo.Statistics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute statistics")
	}

	answer := &usecase.Answer{Category: category}
	content, err := s.complete(ctx, category, stats, question)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("completion backend unavailable, using fallback",
			slog.String("category", string(category)),
			slog.Any("error", err),
		)
		content = fallbackAnswer(category, stats)
		answer.Fallback = true
	}
	answer.Content = content

	if err := s.chatRepo.AppendExchange(ctx, question, answer.Content); err != nil {
		return nil, errors.Wrap(err, "failed to record chat exchange")
	}

	return answer, nil
}

// complete assembles the outbound message list (system preamble, recent
// history, the new question) and calls the remote backend.
func (s *assistantService) complete(ctx context.Context, category usecase.QuestionCategory, stats *entity.Statistics, question string) (string, error) {
	recent, err := s.chatRepo.RecentChatTurns(ctx, s.config.Assistant.ContextTurns)
	if err != nil {
		return "", errors.Wrap(err, "failed to load recent chat turns")
	}

	messages := make([]service.ChatMessage, 0, len(recent)+2)
	messages = append(messages, service.ChatMessage{
		Role:    service.ChatRoleSystem,
		Content: systemPreamble(category, stats),
	})
	for _, turn := range recent {
		role := service.ChatRoleUser
		if turn.Role == entity.RoleAssistant {
			role = service.ChatRoleAssistant
		}
		messages = append(messages, service.ChatMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, service.ChatMessage{Role: service.ChatRoleUser, Content: question})

	return s.client.Complete(ctx, messages)
}

// History returns the retained conversation turns, oldest first.
func (s *assistantService) History(ctx context.Context) ([]entity.ChatTurn, error) {
	turns, err := s.chatRepo.ChatHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}

	return turns, nil
}

// ClearHistory discards the retained conversation.
func (s *assistantService) ClearHistory(ctx context.Context) error {
	if err := s.chatRepo.ClearChatHistory(ctx); err != nil {
		return errors.Wrap(err, "failed to clear chat history")
	}

	return nil
}
