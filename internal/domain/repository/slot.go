package repository

import (
	"context"

	"mandoob/internal/errors"
)

// ErrKeyNotFound is returned by Slot.Get when the key holds no value.
// Absence of a key is not a fault; callers decide how to default.
var ErrKeyNotFound = errors.New("slot key not found")

// Slot is the durable key-value facility the entity store snapshots into.
// Keys map to UTF-8 serialised collection snapshots; the slot only ever holds
// serialised copies, never live references.
type Slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
