package slot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mandoob/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlot_RoundTrip(t *testing.T) {
	s := NewMemorySlot()
	ctx := context.Background()

	_, err := s.Get(ctx, "mandoob:invoices")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "mandoob:invoices", `[{"id":"INV001"}]`))

	value, err := s.Get(ctx, "mandoob:invoices")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"INV001"}]`, value)

	require.NoError(t, s.Delete(ctx, "mandoob:invoices"))
	_, err = s.Get(ctx, "mandoob:invoices")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestFileSlot_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSlot(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "mandoob:chat_history", `[{"role":"user"}]`))

	value, err := s.Get(ctx, "mandoob:chat_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"role":"user"}]`, value)

	// The key's colon is not part of the file name.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mandoob_chat_history.json", entries[0].Name())

	require.NoError(t, s.Delete(ctx, "mandoob:chat_history"))
	_, err = s.Get(ctx, "mandoob:chat_history")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestFileSlot_OverwriteReplacesValue(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSlot(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "mandoob:theme", "light"))
	require.NoError(t, s.Set(ctx, "mandoob:theme", "dark"))

	value, err := s.Get(ctx, "mandoob:theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	// No leftover temp files from the atomic write.
	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileSlot_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileSlot(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "mandoob:drivers", `[]`))

	second, err := NewFileSlot(dir)
	require.NoError(t, err)
	value, err := second.Get(ctx, "mandoob:drivers")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}
