// Package slot provides the durable key-value implementations the entity
// store snapshots into: in-memory for tests, file-backed for single-node
// deployments and a postgres table for shared ones.
package slot

import (
	"log/slog"

	"mandoob/config"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the slot provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Slot based on configuration. An unconfigured provider falls
// back to the in-memory slot, which keeps the store fully functional for the
// session but persists nothing across restarts.
func New(params Params) (repository.Slot, error) {
	cfg := params.Config.Slot
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.SlotProviderMemory {
		logger.Info("using in-memory slot; snapshots will not survive a restart")

		return NewMemorySlot(), nil
	}

	switch cfg.Provider {
	case constants.SlotProviderFile:
		if cfg.Path == "" {
			return nil, errors.New("path is required for file slot provider")
		}
		logger.Info("using file slot", slog.String("path", cfg.Path))

		return NewFileSlot(cfg.Path)

	case constants.SlotProviderPostgres:
		if cfg.DSN == "" {
			return nil, errors.New("dsn is required for postgres slot provider")
		}
		logger.Info("using postgres slot")

		return NewPostgresSlot(cfg.DSN)

	default:
		return nil, errors.Errorf("unknown slot provider: %s", cfg.Provider)
	}
}
