package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"mandoob/config"
	"mandoob/internal/delivery"
	"mandoob/internal/delivery/http"
	"mandoob/internal/delivery/http/middleware"
	"mandoob/internal/delivery/http/router/handler"
	deliverymiddleware "mandoob/internal/delivery/middleware"
	"mandoob/internal/domain/repository"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/assistant"
	logs "mandoob/internal/infra/log"
	"mandoob/internal/infra/persistence/memory"
	"mandoob/internal/infra/pubsub"
	"mandoob/internal/infra/seed"
	"mandoob/internal/infra/slot"
	"mandoob/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerStoreLifecycle,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		slot.New,
		newSeedData,
	)
}

// newSeedData loads the optional seed directory. A missing directory simply
// means the store starts empty when the slot holds no snapshot.
func newSeedData(cfg *config.Config, logger *slog.Logger) *seed.Data {
	return seed.Load(cfg.Store.SeedPath, logger)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStore,
			func(s *memory.Store) repository.InvoiceRepository { return s },
			func(s *memory.Store) repository.DriverRepository { return s },
			func(s *memory.Store) repository.StockRepository { return s },
			func(s *memory.Store) repository.ChatRepository { return s },
			func(s *memory.Store) repository.StatisticsProvider { return s },
			func(s *memory.Store) repository.Snapshotter { return s },
		),
	)
}

// newStore creates the entity store with dependency injection
func newStore(cfg *config.Config, durable repository.Slot, seedData *seed.Data, logger *slog.Logger) *memory.Store {
	return memory.New(cfg.Store, durable, seedData, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCompletionClient,
			pubsub.NewEventPublisher,
		),
	)
}

// newCompletionClient creates the remote completion client with dependency injection
func newCompletionClient(cfg *config.Config) service.CompletionClient {
	return assistant.NewClient(cfg.Assistant)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInvoiceService,
			impl.NewDriverService,
			impl.NewStockService,
			impl.NewAssistantService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewInvoiceHandler,
			handler.NewDriverHandler,
			handler.NewStockHandler,
			handler.NewAssistantHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type storeLifecycleParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Snapshotter repository.Snapshotter
	Logger      *slog.Logger
}

// registerStoreLifecycle restores the store before serving, runs the periodic
// snapshot ticker and persists one final time on shutdown.
func registerStoreLifecycle(params storeLifecycleParams) {
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Snapshotter.Restore(ctx); err != nil {
				return err
			}

			if interval := params.Config.Store.SnapshotInterval; interval > 0 {
				go runSnapshotTicker(params.Snapshotter, params.Logger, interval, done)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)

			return params.Snapshotter.Persist(ctx)
		},
	})
}

func runSnapshotTicker(snapshotter repository.Snapshotter, logger *slog.Logger, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := snapshotter.Persist(context.Background()); err != nil {
				logger.Error("periodic snapshot failed", slog.Any("error", err))
			}
		case <-done:
			return
		}
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
