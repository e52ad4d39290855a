package impl

import (
	"context"

	"mandoob/config"
	"mandoob/internal/domain/constants"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/errors"
	"mandoob/internal/usecase"

	"go.uber.org/fx"
)

const themeKeySuffix = "theme"

type settingsService struct {
	slot   repository.Slot
	config *config.Config
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	Slot   repository.Slot
	Config *config.Config
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		slot:   params.Slot,
		config: params.Config,
	}
}

func (s *settingsService) themeKey() string {
	return s.config.Store.KeyPrefix + ":" + themeKeySuffix
}

// Theme returns the active UI theme, defaulting to light when nothing has
// been stored yet.
func (s *settingsService) Theme(ctx context.Context) (string, error) {
	theme, err := s.slot.Get(ctx, s.themeKey())
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return constants.ThemeLight, nil
		}

		return "", errors.Wrap(err, "failed to read theme")
	}
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		return constants.ThemeLight, nil
	}

	return theme, nil
}

// SetTheme switches the UI theme. Unknown themes are rejected.
func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		return domainerrors.ErrUnknownTheme
	}

	if err := s.slot.Set(ctx, s.themeKey(), theme); err != nil {
		return errors.Wrap(err, "failed to store theme")
	}

	return nil
}
