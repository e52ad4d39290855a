package repository

import (
	"context"

	"mandoob/internal/domain/entity"
)

// StatisticsProvider computes a snapshot of the collections. Implementations
// must recompute from live state on every call rather than keep counters.
type StatisticsProvider interface {
	Statistics(ctx context.Context) (*entity.Statistics, error)
}

// Snapshotter exposes the persistence round-trip of the entity store,
// used by the application lifecycle and the periodic snapshot ticker.
type Snapshotter interface {
	// Persist serialises every collection plus the chat history into the
	// durable slot. Serialisation or quota faults are logged, not returned;
	// the in-memory state stays authoritative and the next mutation retries.
	Persist(ctx context.Context) error

	// Restore rebuilds the collections from the durable slot. Missing or
	// corrupt values fall back to seed data or empty collections; Restore
	// never fails the application start.
	Restore(ctx context.Context) error
}
