package impl

import (
	"context"
	"fmt"
	"testing"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/service"
	"mandoob/internal/errors"
	"mandoob/internal/infra/persistence/memory"
	"mandoob/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistantService(store *memory.Store, client service.CompletionClient) usecase.AssistantUsecase {
	return NewAssistantService(AssistantServiceParams{
		ChatRepo:  store,
		StatsRepo: store,
		Client:    client,
		Config:    testConfig(),
		Logger:    discardLogger(),
	})
}

func TestAssistantService_Ask_RemoteSuccess(t *testing.T) {
	store := newTestStore(t, testConfig())
	client := &fakeCompletionClient{reply: "لديك فاتورة واحدة قيد التوصيل"}
	svc := newTestAssistantService(store, client)
	ctx := context.Background()

	answer, err := svc.Ask(ctx, "كم فاتورة قيد التوصيل؟")
	require.NoError(t, err)

	assert.Equal(t, "لديك فاتورة واحدة قيد التوصيل", answer.Content)
	assert.Equal(t, usecase.CategoryWork, answer.Category)
	assert.False(t, answer.Fallback)

	// The outbound request is system preamble plus the question.
	require.Len(t, client.gotMessages, 2)
	assert.Equal(t, service.ChatRoleSystem, client.gotMessages[0].Role)
	assert.Contains(t, client.gotMessages[0].Content, "البيانات المتاحة")
	assert.Equal(t, service.ChatRoleUser, client.gotMessages[1].Role)
	assert.Equal(t, "كم فاتورة قيد التوصيل؟", client.gotMessages[1].Content)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.RoleUser, history[0].Role)
	assert.Equal(t, entity.RoleAssistant, history[1].Role)
}

func TestAssistantService_Ask_RemoteFailureFallsBack(t *testing.T) {
	store := newTestStore(t, testConfig())
	client := &fakeCompletionClient{err: errors.New("connection refused")}
	svc := newTestAssistantService(store, client)
	ctx := context.Background()

	_, err := store.CreateInvoice(ctx, &entity.Invoice{CustomerName: "أحمد علي"})
	require.NoError(t, err)

	answer, err := svc.Ask(ctx, "اعرض تقرير الفواتير")
	require.NoError(t, err)
	assert.True(t, answer.Fallback)
	assert.Equal(t, usecase.CategoryWork, answer.Category)
	assert.Contains(t, answer.Content, "إجمالي الفواتير: 1")

	// The fallback embeds live numbers, so a new invoice changes the text.
	_, err = store.CreateInvoice(ctx, &entity.Invoice{CustomerName: "سارة محمد"})
	require.NoError(t, err)

	answer, err = svc.Ask(ctx, "اعرض تقرير الفواتير")
	require.NoError(t, err)
	assert.Contains(t, answer.Content, "إجمالي الفواتير: 2")

	// Failed remote calls still record the exchange.
	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestAssistantService_Ask_NonWorkFallbackIsStatic(t *testing.T) {
	store := newTestStore(t, testConfig())
	client := &fakeCompletionClient{err: errors.New("connection refused")}
	svc := newTestAssistantService(store, client)

	answer, err := svc.Ask(context.Background(), "صباح الخير")
	require.NoError(t, err)
	assert.True(t, answer.Fallback)
	assert.Equal(t, usecase.CategoryGeneral, answer.Category)
	assert.Equal(t, unavailableAnswer, answer.Content)
}

func TestAssistantService_Ask_EmptyQuestion(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestAssistantService(store, &fakeCompletionClient{reply: "ok"})

	_, err := svc.Ask(context.Background(), "   ")
	require.ErrorIs(t, err, domainerrors.ErrEmptyQuestion)
}

func TestAssistantService_Ask_RejectsConcurrentRequests(t *testing.T) {
	store := newTestStore(t, testConfig())
	client := &fakeCompletionClient{
		reply:   "تمام",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newTestAssistantService(store, client)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Ask(ctx, "صباح الخير")
		done <- err
	}()

	<-client.entered
	_, err := svc.Ask(ctx, "مساء الخير")
	require.ErrorIs(t, err, domainerrors.ErrAssistantBusy)

	close(client.release)
	require.NoError(t, <-done)

	// The gate reopens once the first request resolves.
	_, err = svc.Ask(ctx, "كيف حالك؟")
	require.NoError(t, err)
}

func TestAssistantService_Ask_HistoryCapDropsOldestFirst(t *testing.T) {
	store := newTestStore(t, testConfig())
	client := &fakeCompletionClient{err: errors.New("connection refused")}
	svc := newTestAssistantService(store, client)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		_, err := svc.Ask(ctx, fmt.Sprintf("استفسار %d", i))
		require.NoError(t, err)
	}

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 20)

	// 15 exchanges is 30 turns; the first 5 exchanges fall off the front.
	assert.Equal(t, "استفسار 6", history[0].Content)
	assert.Equal(t, entity.RoleUser, history[0].Role)
}

func TestAssistantService_Ask_ContextWindowIsBounded(t *testing.T) {
	store := newTestStore(t, testConfig())
	client := &fakeCompletionClient{reply: "تمام"}
	svc := newTestAssistantService(store, client)
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		_, err := svc.Ask(ctx, fmt.Sprintf("استفسار %d", i))
		require.NoError(t, err)
	}

	_, err := svc.Ask(ctx, "استفسار أخير")
	require.NoError(t, err)

	// One system message, the ten newest turns, then the question.
	require.Len(t, client.gotMessages, 12)
	assert.Equal(t, service.ChatRoleSystem, client.gotMessages[0].Role)
	assert.Equal(t, "استفسار أخير", client.gotMessages[len(client.gotMessages)-1].Content)
}

func TestAssistantService_ClearHistory(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestAssistantService(store, &fakeCompletionClient{reply: "تمام"})
	ctx := context.Background()

	_, err := svc.Ask(ctx, "صباح الخير")
	require.NoError(t, err)

	require.NoError(t, svc.ClearHistory(ctx))

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
