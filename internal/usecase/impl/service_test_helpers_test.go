package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mandoob/config"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/persistence/memory"
	"mandoob/internal/infra/slot"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: &config.StoreConfig{
			KeyPrefix:        "mandoob_test",
			DelayedAfter:     24 * time.Hour,
			ChatHistoryLimit: 20,
		},
		Assistant: &config.AssistantConfig{
			Model:        "deepseek-chat",
			MaxTokens:    1000,
			Temperature:  0.7,
			ContextTurns: 10,
			Timeout:      time.Second,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore builds a store backed by an in-memory slot. The store doubles
// as every repository the services consume.
func newTestStore(t *testing.T, cfg *config.Config) *memory.Store {
	t.Helper()

	return memory.New(cfg.Store, slot.NewMemorySlot(), nil, discardLogger())
}

// fakeCompletionClient is a scripted stand-in for the remote backend.
type fakeCompletionClient struct {
	reply string
	err   error

	// entered is closed when the first call reaches the client; release
	// blocks the call until closed. Both optional.
	entered chan struct{}
	release chan struct{}

	calls       int
	gotMessages []service.ChatMessage
}

func (c *fakeCompletionClient) Complete(_ context.Context, messages []service.ChatMessage) (string, error) {
	c.calls++
	c.gotMessages = messages
	if c.entered != nil {
		close(c.entered)
		c.entered = nil
	}
	if c.release != nil {
		<-c.release
	}

	return c.reply, c.err
}

// fakePublisher records published invoice events.
type fakePublisher struct {
	events []*service.InvoiceEvent
	err    error
}

func (p *fakePublisher) PublishInvoiceEvent(_ context.Context, event *service.InvoiceEvent) error {
	p.events = append(p.events, event)

	return p.err
}

func (p *fakePublisher) Close() error { return nil }
