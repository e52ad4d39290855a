package usecase

import "context"

// SettingsUsecase manages user-facing preferences persisted across restarts.
type SettingsUsecase interface {
	// Theme returns the active UI theme, defaulting to light.
	Theme(ctx context.Context) (string, error)

	// SetTheme switches the UI theme. Unknown themes are rejected.
	SetTheme(ctx context.Context, theme string) error
}
