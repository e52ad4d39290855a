package seed

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyDirConfigured(t *testing.T) {
	assert.Nil(t, Load("", slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestLoad_MissingFilesAreNotAnError(t *testing.T) {
	data := Load(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, data)
	assert.Empty(t, data.Invoices)
	assert.Empty(t, data.Drivers)
	assert.Empty(t, data.Stock)
}

func TestLoad_DecodesDocumentsAndSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drivers.json"),
		[]byte(`[{"id":"DRV001","name":"خالد","availability":"متاح"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stock.json"),
		[]byte(`{broken`), 0o644))

	data := Load(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, data)
	require.Len(t, data.Drivers, 1)
	assert.Equal(t, "خالد", data.Drivers[0].Name)
	assert.Empty(t, data.Stock)
}
