// Package constants holds shared provider names and fixed business values.
package constants

// Durable slot providers.
const (
	SlotProviderMemory   = "memory"
	SlotProviderFile     = "file"
	SlotProviderPostgres = "postgres"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// UI themes persisted in the durable slot under the "theme" key.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
